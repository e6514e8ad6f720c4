package payroll

import (
	"net/http"
	"strconv"
	"time"

	"go-sweldo/internal/middleware"
	payrollerrors "go-sweldo/internal/payroll/errors"
	"go-sweldo/internal/shared/apperror"
	"go-sweldo/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	lock    *middleware.PartitionLock
}

func NewHandler(service Service, lock *middleware.PartitionLock) *Handler {
	return &Handler{service: service, lock: lock}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func parseDate(v string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", v, time.Local)
	if err != nil {
		return time.Time{}, payrollerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	// the engine assumes one in-flight mutation per employee partition;
	// the host serializes here
	defer h.lock.Lock(req.EmployeeID)()

	summary, err := h.service.Generate(c.Request.Context(), start, end, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, summary)
}

func (h *Handler) GetByMonth(c *gin.Context) {
	employeeID := c.Param("id")
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid year", nil)
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid month", nil)
		return
	}

	summaries, err := h.service.GetSummaries(c.Request.Context(), employeeID, year, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if summaries == nil {
		summaries = []PayrollSummary{}
	}
	response.Success(c, http.StatusOK, summaries)
}

func (h *Handler) Delete(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	defer h.lock.Lock(req.EmployeeID)()

	if err := h.service.Delete(c.Request.Context(), req.EmployeeID, start, end); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": SummaryID(req.EmployeeID, start, end)})
}
