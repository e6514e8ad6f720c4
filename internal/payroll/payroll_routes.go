package payroll

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	payrolls := r.Group("/payrolls")
	{
		payrolls.GET("/:id", handler.GetByMonth)
		payrolls.POST("/generate", handler.Generate)
		payrolls.DELETE("", handler.Delete)
	}
}
