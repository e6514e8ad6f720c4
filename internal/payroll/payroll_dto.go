package payroll

// SourceAmount pairs one deduction source with the amount to apply
// against it. The summarizer trusts the caller's breakdown but validates
// that the amounts sum to the declared totals.
type SourceAmount struct {
	ID     string  `json:"id" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

// GenerateRequest carries the caller-selected deductions for one run.
// Nil statutory amounts fall back to the employee's stored defaults.
type GenerateRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`

	SSS        *float64 `json:"sss"`
	PhilHealth *float64 `json:"phil_health"`
	PagIbig    *float64 `json:"pag_ibig"`
	Others     float64  `json:"others"`

	CashAdvanceDeductions float64 `json:"cash_advance_deductions"`
	ShortDeductions       float64 `json:"short_deductions"`
	LoanDeductions        float64 `json:"loan_deductions"`

	CashAdvances []SourceAmount `json:"cash_advances"`
	Shorts       []SourceAmount `json:"shorts"`
	Loans        []SourceAmount `json:"loans"`
}

type DeleteRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
}
