package compensationerrors

import (
	"net/http"

	"go-sweldo/internal/shared/apperror"
)

var (
	ErrDayNotFound = apperror.New(
		apperror.CodeNotFound,
		"no compensation record for that day",
		http.StatusNotFound,
	)
	ErrDuplicateDay = apperror.New(
		apperror.CodeConflict,
		"duplicate day in compensation batch",
		http.StatusConflict,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be between 1 and 12",
		http.StatusBadRequest,
	)
)
