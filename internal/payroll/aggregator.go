package payroll

import (
	"context"
	"time"

	"go-sweldo/internal/compensation"
	"go-sweldo/internal/employee"
	"go-sweldo/internal/holiday"
)

// PeriodTotals is the fold of every day-level record inside one period.
type PeriodTotals struct {
	DaysWorked              int     `json:"daysWorked"`
	Absences                int     `json:"absences"`
	TotalBasicPay           float64 `json:"totalBasicPay"`
	TotalOvertime           float64 `json:"totalOvertime"`
	TotalOvertimeMinutes    float64 `json:"totalOvertimeMinutes"`
	TotalUndertimeDeduction float64 `json:"totalUndertimeDeduction"`
	TotalUndertimeMinutes   float64 `json:"totalUndertimeMinutes"`
	TotalLateDeduction      float64 `json:"totalLateDeduction"`
	TotalLateMinutes        float64 `json:"totalLateMinutes"`
	TotalHolidayBonus       float64 `json:"totalHolidayBonus"`
	TotalLeavePay           float64 `json:"totalLeavePay"`
	TotalDeductions         float64 `json:"totalDeductions"`
	TotalNightDiffHours     float64 `json:"totalNightDifferentialHours"`
	TotalNightDiffPay       float64 `json:"totalNightDifferentialPay"`
	TotalGrossPay           float64 `json:"totalGrossPay"`
	DayType                 string  `json:"dayType,omitempty"`
	LeaveType               string  `json:"leaveType,omitempty"`
}

// Aggregator folds day-level compensation and attendance across an
// arbitrary, possibly month-spanning date range.
type Aggregator struct {
	repo     compensation.Repository
	holidays holiday.Service
}

func NewAggregator(repo compensation.Repository, holidays holiday.Service) *Aggregator {
	return &Aggregator{repo: repo, holidays: holidays}
}

func sumOpt(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.Local)
}

// periodMonths enumerates every (year, month) whose month overlaps
// [start, end], stepping month by month from start.
func periodMonths(start, end time.Time) []yearMonth {
	var months []yearMonth
	cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.Local)
	for !cursor.After(end) {
		months = append(months, yearMonth{cursor.Year(), int(cursor.Month())})
		cursor = cursor.AddDate(0, 1, 0)
	}
	return months
}

type yearMonth struct {
	year  int
	month int
}

// AggregatePeriod loads every overlapped month, filters the concatenated
// records back down to the exact [start, end] window at day granularity,
// and folds the totals. Records near month boundaries belong to the month
// of their own (year, month, day), never to the month the period started
// in, so a Jan 28 - Feb 5 run counts each day exactly once.
func (a *Aggregator) AggregatePeriod(ctx context.Context, emp *employee.Employee, start, end time.Time) (*PeriodTotals, error) {
	from := startOfDay(start)
	to := endOfDay(end)

	var comps []compensation.DayCompensation
	var attendance []compensation.AttendanceDay
	for _, ym := range periodMonths(from, to) {
		monthComps, err := a.repo.LoadCompensations(ctx, emp.ID, ym.year, ym.month)
		if err != nil {
			return nil, err
		}
		comps = append(comps, monthComps...)

		monthAtt, err := a.repo.LoadAttendance(ctx, emp.ID, ym.year, ym.month)
		if err != nil {
			return nil, err
		}
		attendance = append(attendance, monthAtt...)
	}

	totals := &PeriodTotals{}

	for _, day := range attendance {
		date := day.Date()
		if date.Before(from) || date.After(to) {
			continue
		}
		if date.Weekday() == time.Sunday {
			continue
		}
		if day.Worked() {
			totals.DaysWorked++
			continue
		}
		if !a.holidays.IsHoliday(date) {
			totals.Absences++
		}
	}

	for _, comp := range comps {
		date := comp.Date()
		if date.Before(from) || date.After(to) {
			continue
		}

		totals.TotalOvertime += sumOpt(comp.OvertimePay)
		totals.TotalOvertimeMinutes += sumOpt(comp.OvertimeMinutes)
		totals.TotalUndertimeDeduction += sumOpt(comp.UndertimeDeduction)
		totals.TotalUndertimeMinutes += sumOpt(comp.UndertimeMinutes)
		totals.TotalLateDeduction += sumOpt(comp.LateDeduction)
		totals.TotalLateMinutes += sumOpt(comp.LateMinutes)
		totals.TotalHolidayBonus += sumOpt(comp.HolidayBonus)
		totals.TotalLeavePay += sumOpt(comp.LeavePay)
		totals.TotalDeductions += sumOpt(comp.Deductions)
		totals.TotalNightDiffHours += comp.NightDifferentialHours
		totals.TotalNightDiffPay += comp.NightDifferentialPay

		if totals.DayType == "" {
			totals.DayType = comp.DayType
		}
		if totals.LeaveType == "" && comp.LeaveType != nil {
			totals.LeaveType = *comp.LeaveType
		}
	}

	totals.TotalBasicPay = emp.DailyRate * float64(totals.DaysWorked)
	totals.TotalGrossPay = totals.TotalBasicPay + totals.TotalOvertime +
		totals.TotalHolidayBonus + totals.TotalLeavePay + totals.TotalNightDiffPay

	return totals, nil
}
