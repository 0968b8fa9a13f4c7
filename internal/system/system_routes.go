package system

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/", handler.Root)
	r.GET("/test", handler.Test)
	r.GET("/schema", handler.Schema)
}
