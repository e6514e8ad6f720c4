package payrollerrors

import (
	"net/http"

	"go-sweldo/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll summary not found",
		http.StatusNotFound,
	)
	// ErrDeductionMismatch guards against silent balance corruption: the
	// per-source breakdown a caller sends must sum to the declared total.
	ErrDeductionMismatch = apperror.New(
		apperror.CodeInvalidState,
		"per-source deduction amounts do not sum to the declared total",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
