package compensation

import "time"

// Day type values carried on DayCompensation.
const (
	DayTypeRegular = "Regular"
	DayTypeHoliday = "Holiday"
	DayTypeRestDay = "RestDay"
	DayTypeSpecial = "Special"
)

// DayCompensation is one employee's computed pay picture for one calendar
// day. Day is unique within an (employeeId, year, month) partition.
// Optional amounts are pointers; a missing value sums as zero.
type DayCompensation struct {
	EmployeeID             string   `json:"employeeId"`
	Year                   int      `json:"year"`
	Month                  int      `json:"month"`
	Day                    int      `json:"day"`
	DayType                string   `json:"dayType"`
	DailyRate              float64  `json:"dailyRate"`
	HoursWorked            *float64 `json:"hoursWorked,omitempty"`
	OvertimeMinutes        *float64 `json:"overtimeMinutes,omitempty"`
	OvertimePay            *float64 `json:"overtimePay,omitempty"`
	UndertimeMinutes       *float64 `json:"undertimeMinutes,omitempty"`
	UndertimeDeduction     *float64 `json:"undertimeDeduction,omitempty"`
	LateMinutes            *float64 `json:"lateMinutes,omitempty"`
	LateDeduction          *float64 `json:"lateDeduction,omitempty"`
	HolidayBonus           *float64 `json:"holidayBonus,omitempty"`
	LeaveType              *string  `json:"leaveType,omitempty"`
	LeavePay               *float64 `json:"leavePay,omitempty"`
	NightDifferentialHours float64  `json:"nightDifferentialHours"`
	NightDifferentialPay   float64  `json:"nightDifferentialPay"`
	GrossPay               *float64 `json:"grossPay,omitempty"`
	Deductions             *float64 `json:"deductions,omitempty"`
	NetPay                 *float64 `json:"netPay,omitempty"`
	ManualOverride         *bool    `json:"manualOverride,omitempty"`
	Notes                  *string  `json:"notes,omitempty"`
	Absence                *bool    `json:"absence,omitempty"`
}

// Date reconstructs the record's calendar date at start of day.
func (d DayCompensation) Date() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.Local)
}

// AttendanceDay is the raw clock record. A day counts as worked only when
// both times are present.
type AttendanceDay struct {
	EmployeeID string  `json:"employeeId"`
	Day        int     `json:"day"`
	Month      int     `json:"month"`
	Year       int     `json:"year"`
	TimeIn     *string `json:"timeIn,omitempty"`
	TimeOut    *string `json:"timeOut,omitempty"`
}

func (a AttendanceDay) Date() time.Time {
	return time.Date(a.Year, time.Month(a.Month), a.Day, 0, 0, 0, 0, time.Local)
}

// Worked reports whether both clock times are present.
func (a AttendanceDay) Worked() bool {
	return a.TimeIn != nil && *a.TimeIn != "" && a.TimeOut != nil && *a.TimeOut != ""
}

// FieldChange is one audited field mutation. OldValue is nil for wholly new
// records and for entries migrated from the legacy format, where old values
// are unrecoverable.
type FieldChange struct {
	Day      int    `json:"day"`
	Field    string `json:"field"`
	OldValue any    `json:"oldValue"`
	NewValue any    `json:"newValue"`
}

// BackupEntry groups the changes of one save batch under one timestamp.
// Entries are append-only and never compacted.
type BackupEntry struct {
	Timestamp time.Time     `json:"timestamp"`
	Changes   []FieldChange `json:"changes"`
}

// BackupMonth is the per-partition audit document.
type BackupMonth struct {
	EmployeeID string        `json:"employeeId"`
	Year       int           `json:"year"`
	Month      int           `json:"month"`
	Backups    []BackupEntry `json:"backups"`
}
