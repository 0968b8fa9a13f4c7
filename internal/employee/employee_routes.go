package employee

import (
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn gin.HandlerFunc) {
	employees := r.Group("/employees")
	employees.Use(authn)
	{
		employees.POST("", middleware.RequirePolicy(rbac.HROnly), handler.Create)
		employees.GET("", middleware.RequirePolicy(rbac.ManagerOrHR), handler.List)
		employees.PUT("/:user_id", middleware.RequirePolicy(rbac.ManagerOrHR), handler.Update)
		employees.DELETE("/:user_id", middleware.RequirePolicy(rbac.HROnly), handler.Delete)
	}
}
