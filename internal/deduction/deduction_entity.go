package deduction

import (
	"math"
	"time"
)

// CashAdvance and Short share the Unpaid/Paid lifecycle; a Loan keeps its
// workflow status and only gains the terminal Completed state.
const (
	StatusUnpaid = "Unpaid"
	StatusPaid   = "Paid"

	ApprovalApproved = "Approved"

	LoanStatusApproved  = "Approved"
	LoanStatusCompleted = "Completed"

	ScheduleOneTime     = "OneTime"
	ScheduleInstallment = "Installment"
)

type InstallmentDetails struct {
	NumberOfPayments  int     `json:"numberOfPayments"`
	AmountPerPayment  float64 `json:"amountPerPayment"`
	RemainingPayments int     `json:"remainingPayments"`
}

// recompute derives RemainingPayments from the remaining balance; it is
// called on every balance change.
func (d *InstallmentDetails) recompute(remainingUnpaid float64) {
	if d.AmountPerPayment <= 0 {
		d.RemainingPayments = 0
		return
	}
	d.RemainingPayments = int(math.Ceil(remainingUnpaid / d.AmountPerPayment))
}

// CashAdvance is a balance-bearing deduction source. Amount is the
// original principal and never changes; RemainingUnpaid is drawn down by
// payroll deductions. Status is derived: Paid iff RemainingUnpaid <= 0.
type CashAdvance struct {
	ID                 string              `json:"id"`
	EmployeeID         string              `json:"employeeId"`
	Date               time.Time           `json:"date"`
	Amount             float64             `json:"amount"`
	RemainingUnpaid    float64             `json:"remainingUnpaid"`
	Status             string              `json:"status"`
	ApprovalStatus     string              `json:"approvalStatus"`
	Reason             string              `json:"reason,omitempty"`
	PaymentSchedule    string              `json:"paymentSchedule"`
	InstallmentDetails *InstallmentDetails `json:"installmentDetails,omitempty"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}

func (c *CashAdvance) recomputeStatus() {
	if c.RemainingUnpaid <= 0 {
		c.Status = StatusPaid
	} else {
		c.Status = StatusUnpaid
	}
	if c.PaymentSchedule == ScheduleInstallment && c.InstallmentDetails != nil {
		c.InstallmentDetails.recompute(c.RemainingUnpaid)
	}
}

// Short is a till shortage charged against the employee. Same lifecycle as
// a cash advance, without schedules or approval.
type Short struct {
	ID              string    `json:"id"`
	EmployeeID      string    `json:"employeeId"`
	Date            time.Time `json:"date"`
	Amount          float64   `json:"amount"`
	RemainingUnpaid float64   `json:"remainingUnpaid"`
	Status          string    `json:"status"`
	Reason          string    `json:"reason,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (s *Short) recomputeStatus() {
	if s.RemainingUnpaid <= 0 {
		s.Status = StatusPaid
	} else {
		s.Status = StatusUnpaid
	}
}

// LoanDeduction is one applied payroll deduction. The map on Loan is
// append-only; reversal removes the exact entry again.
type LoanDeduction struct {
	AmountDeducted float64   `json:"amountDeducted"`
	DateDeducted   time.Time `json:"dateDeducted"`
}

// Loan tracks every application in Deductions, keyed by deduction id.
// RemainingBalance is stored denormalized and kept consistent with the map
// on every mutation.
type Loan struct {
	ID               string                   `json:"id"`
	EmployeeID       string                   `json:"employeeId"`
	Date             time.Time                `json:"date"`
	Amount           float64                  `json:"amount"`
	RemainingBalance float64                  `json:"remainingBalance"`
	Status           string                   `json:"status"`
	Type             string                   `json:"type,omitempty"`
	Deductions       map[string]LoanDeduction `json:"deductions,omitempty"`
	UpdatedAt        time.Time                `json:"updatedAt"`
}
