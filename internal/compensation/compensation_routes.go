package compensation

import (
	"go-sweldo/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, lock *middleware.PartitionLock) {
	serialize := lock.Serialize(func(c *gin.Context) string { return c.Param("id") })

	comp := r.Group("/employees/:id/compensation/:year/:month")
	{
		comp.GET("", handler.GetMonth)
		comp.PUT("", serialize, handler.Save)
		comp.GET("/backups", handler.GetBackups)
		comp.POST("/revert", serialize, handler.Revert)
	}
}
