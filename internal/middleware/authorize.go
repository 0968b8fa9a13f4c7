package middleware

import (
	"net/http"

	"hrms-backend/internal/rbac"
	"hrms-backend/internal/shared/apperror"
	"hrms-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RequirePolicy gates a route on the caller's role. It must run after
// Authenticate.
func RequirePolicy(policy rbac.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok {
			response.AbortError(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Not authenticated", nil)
			return
		}

		if !policy.Allows(caller.Role) {
			response.AbortError(c, http.StatusForbidden, apperror.CodeForbidden, "Not enough permissions", nil)
			return
		}

		c.Next()
	}
}
