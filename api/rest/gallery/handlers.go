package gallery

import (
	"encoding/base64"
	"net/http"
	"strconv"

	"codeberg.org/pixelrave/server/internal/errors"
	"codeberg.org/pixelrave/server/internal/sessions"
	"github.com/gin-gonic/gin"
)

// creates a handler listing the session's recent generations
func ListHandler(sessionMgr *sessions.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := resolveSession(c, sessionMgr)
		if !ok {
			return
		}

		session.Lock()
		entries := session.Gallery.List()
		capacity := session.Gallery.Capacity()
		session.Unlock()

		views := make([]EntryView, 0, len(entries))
		for i, entry := range entries {
			views = append(views, EntryView{
				Index:       i,
				Prompt:      entry.Prompt,
				ModelID:     entry.ModelID,
				CreatedAt:   entry.CreatedAt,
				ImageBase64: base64.StdEncoding.EncodeToString(entry.ImageBytes),
			})
		}

		c.JSON(http.StatusOK, Response{Entries: views, Capacity: capacity})
	}
}

// creates a handler serving one gallery image as raw bytes for download
func ImageHandler(sessionMgr *sessions.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := resolveSession(c, sessionMgr)
		if !ok {
			return
		}

		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			errors.BadRequest(c, "index must be an integer", nil)
			return
		}

		session.Lock()
		entry, found := session.Gallery.Get(index)
		session.Unlock()

		if !found {
			errors.NotFound(c, "gallery entry")
			return
		}

		c.Header("Content-Disposition", `attachment; filename="generation.png"`)
		c.Data(http.StatusOK, http.DetectContentType(entry.ImageBytes), entry.ImageBytes)
	}
}

// looks up the session named in the query, responding 404 when missing
func resolveSession(c *gin.Context, sessionMgr *sessions.Manager) (*sessions.Session, bool) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		errors.BadRequest(c, "session_id is required", nil)
		return nil, false
	}

	session, exists := sessionMgr.GetSession(sessionID)
	if !exists {
		errors.SessionNotFound(c)
		return nil, false
	}

	return session, true
}
