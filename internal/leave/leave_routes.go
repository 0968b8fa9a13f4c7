package leave

import (
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn, idempotency gin.HandlerFunc) {
	leaves := r.Group("/leaves")
	leaves.Use(authn)
	{
		leaves.POST("", middleware.RequirePolicy(rbac.AnyAuthenticated), idempotency, handler.Submit)
		leaves.POST("/:leave_id/action", middleware.RequirePolicy(rbac.ManagerOrHR), handler.Act)
		leaves.GET("", middleware.RequirePolicy(rbac.AnyAuthenticated), handler.List)
	}
}
