package transcribe

import (
	"codeberg.org/pixelrave/server/internal/transcribe"
	"github.com/gin-gonic/gin"
)

// registers transcription routes
func RegisterRoutes(router *gin.RouterGroup, transcriber transcribe.Transcriber) {
	router.POST("/transcribe", Handler(transcriber))
}
