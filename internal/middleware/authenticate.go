package middleware

import (
	"context"
	"net/http"
	"strings"

	"hrms-backend/internal/rbac"
	"hrms-backend/internal/shared/apperror"
	"hrms-backend/internal/shared/contextutil"
	"hrms-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const callerKey = "caller"

// TokenResolver turns a bearer credential into the caller identity. The
// credential is the caller's account id, so resolution is a lookup rather
// than signature verification.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (rbac.Caller, error)
}

func Authenticate(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			response.AbortError(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Token not found", nil)
			return
		}

		caller, err := resolver.ResolveToken(c.Request.Context(), token)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.AbortError(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
			return
		}

		c.Set(callerKey, caller)

		ctx := contextutil.WithUserID(c.Request.Context(), caller.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetCaller returns the identity resolved by Authenticate.
func GetCaller(c *gin.Context) (rbac.Caller, bool) {
	v, exists := c.Get(callerKey)
	if !exists {
		return rbac.Caller{}, false
	}
	caller, ok := v.(rbac.Caller)
	return caller, ok
}
