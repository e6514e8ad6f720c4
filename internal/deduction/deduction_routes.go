package deduction

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/employees/:id/deductions", handler.GetUnpaid)
}
