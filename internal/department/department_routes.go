package department

import (
	"slices"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /departments. writeGuards run in front of POST only.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, writeGuards ...gin.HandlerFunc) {
	departments := r.Group("/departments")
	{
		departments.GET("", handler.GetAll)
		departments.GET("/:id", handler.GetByID)
		departments.POST("", append(slices.Clone(writeGuards), handler.Create)...)
		departments.PUT("/:id", handler.Update)
		departments.DELETE("/:id", handler.Delete)
	}
}
