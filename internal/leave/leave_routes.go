package leave

import (
	"slices"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /leave-requests. writeGuards run in front of POST
// only.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, writeGuards ...gin.HandlerFunc) {
	leaves := r.Group("/leave-requests")
	{
		leaves.GET("", handler.GetAll)
		leaves.GET("/stats", handler.Stats)
		leaves.GET("/:id", handler.GetByID)
		leaves.POST("", append(slices.Clone(writeGuards), handler.Create)...)
		leaves.PUT("/:id", handler.Update)
		leaves.POST("/:id/approve", handler.Approve)
		leaves.POST("/:id/reject", handler.Reject)
		leaves.DELETE("/:id", handler.Delete)
	}
}
