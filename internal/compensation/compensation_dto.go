package compensation

type SaveCompensationsRequest struct {
	Compensations []DayCompensation `json:"compensations" binding:"required"`
}

type RevertRequest struct {
	Day     int           `json:"day" binding:"required"`
	Changes []FieldChange `json:"changes" binding:"required"`
}

type MonthResponse struct {
	EmployeeID    string            `json:"employeeId"`
	Year          int               `json:"year"`
	Month         int               `json:"month"`
	Compensations []DayCompensation `json:"compensations"`
}
