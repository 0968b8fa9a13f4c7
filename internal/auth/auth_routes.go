package auth

import (
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn, loginLimiter gin.HandlerFunc) {
	r.POST("/auth/login", loginLimiter, handler.Login)
	r.POST("/seed/user", handler.SeedUser)
	r.GET("/me", authn, middleware.RequirePolicy(rbac.AnyAuthenticated), handler.Me)
}
