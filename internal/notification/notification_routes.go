package notification

import (
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn gin.HandlerFunc) {
	r.GET("/notifications", authn, middleware.RequirePolicy(rbac.AnyAuthenticated), handler.List)
}
