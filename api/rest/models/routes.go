package models

import (
	"codeberg.org/pixelrave/server/internal/imagegen"
	"github.com/gin-gonic/gin"
)

// registers model listing routes
func RegisterRoutes(router *gin.RouterGroup, registry *imagegen.Registry) {
	router.GET("/models", ListHandler(registry))
}
