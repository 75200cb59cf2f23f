package employee

import (
	"slices"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /employees. writeGuards run in front of POST only.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, writeGuards ...gin.HandlerFunc) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetByID)
		employees.POST("", append(slices.Clone(writeGuards), handler.Create)...)
		employees.PUT("/:id", handler.Update)
		employees.DELETE("/:id", handler.Delete)
	}
}
