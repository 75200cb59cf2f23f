package document

import (
	"slices"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /documents. writeGuards run in front of POST only.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, writeGuards ...gin.HandlerFunc) {
	documents := r.Group("/documents")
	{
		documents.GET("", handler.GetAll)
		documents.GET("/stats", handler.Stats)
		documents.GET("/:id", handler.GetByID)
		documents.POST("", append(slices.Clone(writeGuards), handler.Create)...)
		documents.PUT("/:id", handler.Update)
		documents.DELETE("/:id", handler.Delete)
	}
}
