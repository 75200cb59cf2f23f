package dashboard

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/dashboard/summary", handler.Summary)
	r.GET("/departments/overview", handler.DepartmentOverview)
}
