package payroll

import (
	"fmt"
	"time"
)

// Deductions is the per-summary deduction block. The statutory trio falls
// back to the employee's stored defaults when a request leaves them unset.
type Deductions struct {
	SSS                   float64 `json:"sss"`
	PhilHealth            float64 `json:"philHealth"`
	PagIbig               float64 `json:"pagIbig"`
	CashAdvanceDeductions float64 `json:"cashAdvanceDeductions"`
	ShortDeductions       float64 `json:"shortDeductions"`
	LoanDeductions        float64 `json:"loanDeductions"`
	Others                float64 `json:"others"`
}

func (d Deductions) Total() float64 {
	return d.SSS + d.PhilHealth + d.PagIbig +
		d.CashAdvanceDeductions + d.ShortDeductions + d.LoanDeductions + d.Others
}

// SourceRef records one applied deduction against one source, so deletion
// can reverse the exact amount on the exact record.
type SourceRef struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
}

// LoanDeductionRef carries the loan's own deduction-entry id alongside the
// loan id; reversal removes that exact entry.
type LoanDeductionRef struct {
	LoanID      string  `json:"loanId"`
	DeductionID string  `json:"deductionId"`
	Amount      float64 `json:"amount"`
}

// PayrollSummary is one employee's pay picture for one inclusive period.
// Cross-month summaries are always stored in the end date's (year, month)
// partition. Invariant: NetPay = GrossPay - Deductions.Total().
type PayrollSummary struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName,omitempty"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`

	DaysWorked int `json:"daysWorked"`
	Absences   int `json:"absences"`

	BasicPay             float64 `json:"basicPay"`
	Overtime             float64 `json:"overtime"`
	UndertimeDeduction   float64 `json:"undertimeDeduction"`
	LateDeduction        float64 `json:"lateDeduction"`
	HolidayBonus         float64 `json:"holidayBonus"`
	NightDifferentialPay float64 `json:"nightDifferentialPay"`
	LeavePay             float64 `json:"leavePay"`
	GrossPay             float64 `json:"grossPay"`

	Deductions Deductions `json:"deductions"`
	NetPay     float64    `json:"netPay"`

	// Exact-id tracking for reversal. The plain id lists are what legacy
	// summaries carried; the breakdown lists pair each id with its applied
	// amount and are authoritative for new summaries.
	CashAdvanceIDs       []string           `json:"cashAdvanceIDs,omitempty"`
	ShortIDs             []string           `json:"shortIDs,omitempty"`
	CashAdvanceBreakdown []SourceRef        `json:"cashAdvanceBreakdown,omitempty"`
	ShortBreakdown       []SourceRef        `json:"shortBreakdown,omitempty"`
	LoanDeductionIDs     []LoanDeductionRef `json:"loanDeductionIds,omitempty"`

	DayType     string    `json:"dayType,omitempty"`
	LeaveType   string    `json:"leaveType,omitempty"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// SummaryID builds the deterministic idempotency key for one employee and
// period. Re-generating the same period overwrites rather than duplicates.
func SummaryID(employeeID string, start, end time.Time) string {
	return fmt.Sprintf("%s_%d_%d", employeeID, start.UnixMilli(), end.UnixMilli())
}
