package employee

import (
	"net/http"

	employeeerrors "go-sweldo/internal/employee/errors"
	"go-sweldo/internal/shared/apperror"
	"go-sweldo/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetAll(c *gin.Context) {
	emps, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if emps == nil {
		emps = []Employee{}
	}
	response.Success(c, http.StatusOK, emps)
}

func (h *Handler) GetByID(c *gin.Context) {
	emp, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if emp == nil {
		h.writeServiceError(c, employeeerrors.ErrEmployeeNotFound)
		return
	}
	response.Success(c, http.StatusOK, emp)
}

func (h *Handler) Save(c *gin.Context) {
	var emp Employee
	if err := c.ShouldBindJSON(&emp); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	emp.ID = c.Param("id")
	if emp.ID == "" {
		h.writeServiceError(c, apperror.RequiredField("Id"))
		return
	}

	if err := h.repo.Save(c.Request.Context(), emp); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, emp)
}
