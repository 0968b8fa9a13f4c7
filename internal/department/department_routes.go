package department

import (
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn gin.HandlerFunc) {
	departments := r.Group("/departments")
	departments.Use(authn)
	{
		departments.POST("", middleware.RequirePolicy(rbac.HROnly), handler.Create)
		departments.GET("", middleware.RequirePolicy(rbac.AnyAuthenticated), handler.List)
	}
}
