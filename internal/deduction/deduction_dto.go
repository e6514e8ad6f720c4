package deduction

type UnpaidSourcesResponse struct {
	EmployeeID   string        `json:"employeeId"`
	AsOf         string        `json:"asOf"`
	CashAdvances []CashAdvance `json:"cashAdvances"`
	Shorts       []Short       `json:"shorts"`
	Loans        []Loan        `json:"loans"`
}
