package compensation

import (
	"net/http"
	"strconv"

	"go-sweldo/internal/shared/apperror"
	"go-sweldo/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func monthParams(c *gin.Context) (string, int, int, bool) {
	employeeID := c.Param("id")
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid year", nil)
		return "", 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid month", nil)
		return "", 0, 0, false
	}
	return employeeID, year, month, true
}

func (h *Handler) GetMonth(c *gin.Context) {
	employeeID, year, month, ok := monthParams(c)
	if !ok {
		return
	}

	comps, err := h.service.GetMonth(c.Request.Context(), employeeID, year, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if comps == nil {
		comps = []DayCompensation{}
	}
	response.Success(c, http.StatusOK, MonthResponse{
		EmployeeID:    employeeID,
		Year:          year,
		Month:         month,
		Compensations: comps,
	})
}

func (h *Handler) Save(c *gin.Context) {
	employeeID, year, month, ok := monthParams(c)
	if !ok {
		return
	}

	var req SaveCompensationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.SaveOrUpdate(c.Request.Context(), employeeID, year, month, req.Compensations); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"saved": len(req.Compensations)})
}

func (h *Handler) GetBackups(c *gin.Context) {
	employeeID, year, month, ok := monthParams(c)
	if !ok {
		return
	}

	doc, err := h.service.GetBackups(c.Request.Context(), employeeID, year, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, doc)
}

func (h *Handler) Revert(c *gin.Context) {
	employeeID, year, month, ok := monthParams(c)
	if !ok {
		return
	}

	var req RevertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.Revert(c.Request.Context(), employeeID, year, month, req.Day, req.Changes); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reverted": req.Day})
}
