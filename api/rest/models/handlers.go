package models

import (
	"net/http"

	"codeberg.org/pixelrave/server/internal/imagegen"
	"github.com/gin-gonic/gin"
)

// Response lists the selectable models with their declared capabilities
type Response struct {
	Models []imagegen.Model `json:"models"`
}

// creates a handler listing the fixed model set
func ListHandler(registry *imagegen.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{Models: registry.List()})
	}
}
