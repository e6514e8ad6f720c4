package employee

// Employee is the master record the summarizer reads base pay and default
// statutory deductions from. Employees live in a single global document,
// not in the month partitioning.
type Employee struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Position       string  `json:"position,omitempty"`
	DailyRate      float64 `json:"dailyRate"`
	SSS            float64 `json:"sss"`
	PhilHealth     float64 `json:"philHealth"`
	PagIbig        float64 `json:"pagIbig"`
	EmploymentType string  `json:"employmentType,omitempty"`
	Status         string  `json:"status,omitempty"`
}
