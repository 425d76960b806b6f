package transcribe

import (
	"io"
	"net/http"

	"codeberg.org/pixelrave/server/internal/errors"
	"codeberg.org/pixelrave/server/internal/transcribe"
	"github.com/gin-gonic/gin"
)

// audio uploads larger than this are rejected before transcription
const maxAudioBytes = 10 << 20 // 10 MiB

// creates a handler turning uploaded audio into prompt text
func Handler(transcriber transcribe.Transcriber) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, _, err := c.Request.FormFile("audio")
		if err != nil {
			errors.BadRequest(c, "audio file is required", err)
			return
		}

		defer file.Close() //nolint:errcheck

		audio, err := io.ReadAll(io.LimitReader(file, maxAudioBytes+1))
		if err != nil {
			errors.InternalError(c, "failed to read audio", err)
			return
		}

		if len(audio) > maxAudioBytes {
			errors.BadRequest(c, "audio file too large", nil)
			return
		}

		language := c.PostForm("language")

		text, err := transcriber.Transcribe(c.Request.Context(), audio, language)
		if err != nil {
			errors.InternalError(c, "transcription failed", err)
			return
		}

		c.JSON(http.StatusOK, Response{Text: text})
	}
}
