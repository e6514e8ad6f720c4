package deductionerrors

import (
	"net/http"

	"go-sweldo/internal/shared/apperror"
)

var (
	// ErrSourceNotFound is recoverable during reversal: the caller logs it
	// and skips that source so a payroll deletion can always complete.
	ErrSourceNotFound = apperror.New(
		apperror.CodeNotFound,
		"deduction source not found",
		http.StatusNotFound,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"deduction amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrDeductionEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"loan deduction entry not found",
		http.StatusNotFound,
	)
)
