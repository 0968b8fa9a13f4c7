package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorEnvelope is the uniform error body. Success responses keep the wire
// shapes of the original HRMS API, so only failures are enveloped.
type ErrorEnvelope struct {
	Ok    bool `json:"ok"`
	Error any  `json:"error"`
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ErrorEnvelope{
		Ok: false,
		Error: map[string]interface{}{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}

// AbortError writes the error body and stops the handler chain. Used by
// middleware.
func AbortError(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	Error(c, status, errorCode, message, details)
	c.Abort()
}
