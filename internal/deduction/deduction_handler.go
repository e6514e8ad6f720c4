package deduction

import (
	"net/http"
	"strconv"
	"time"

	"go-sweldo/internal/shared/apperror"
	"go-sweldo/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	ledger Ledger
}

func NewHandler(ledger Ledger) *Handler {
	return &Handler{ledger: ledger}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetUnpaid lists the deduction candidates for one employee: approved
// unpaid cash advances, unpaid shorts, and active loans within the
// lookback window (default: the payroll window of 3 months).
func (h *Handler) GetUnpaid(c *gin.Context) {
	ctx := c.Request.Context()
	employeeID := c.Param("id")

	asOf := time.Now()
	if v := c.Query("as_of"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid as_of date, expected YYYY-MM-DD", nil)
			return
		}
		asOf = parsed
	}

	lookback := LookbackPayroll
	if v := c.Query("lookback"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid lookback", nil)
			return
		}
		lookback = parsed
	}

	advances, err := h.ledger.UnpaidCashAdvances(ctx, employeeID, asOf, lookback)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	shorts, err := h.ledger.UnpaidShorts(ctx, employeeID, asOf, lookback)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	loans, err := h.ledger.ActiveLoans(ctx, employeeID, asOf, lookback)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if advances == nil {
		advances = []CashAdvance{}
	}
	if shorts == nil {
		shorts = []Short{}
	}
	if loans == nil {
		loans = []Loan{}
	}

	response.Success(c, http.StatusOK, UnpaidSourcesResponse{
		EmployeeID:   employeeID,
		AsOf:         asOf.Format("2006-01-02"),
		CashAdvances: advances,
		Shorts:       shorts,
		Loans:        loans,
	})
}
