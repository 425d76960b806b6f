package sessions

import (
	"net/http"

	"codeberg.org/pixelrave/server/internal/errors"
	"codeberg.org/pixelrave/server/internal/logger"
	"codeberg.org/pixelrave/server/internal/quota"
	"codeberg.org/pixelrave/server/internal/sessions"
	"github.com/gin-gonic/gin"
)

// creates a handler that opens a new session with a fresh quota and an
// empty gallery
func CreateHandler(sessionMgr *sessions.Manager, tracker *quota.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := sessionMgr.CreateSession()
		if err != nil {
			errors.InternalError(c, "failed to create session", err)
			return
		}

		logger.Debug("session created", "session_id", session.ID)

		c.JSON(http.StatusCreated, CreateResponse{
			SessionID:       session.ID,
			QuotaLimit:      session.Quota.Limit,
			QuotaRemaining:  tracker.Remaining(&session.Quota),
			GalleryCapacity: session.Gallery.Capacity(),
			ExpiresAt:       session.ExpiresAt,
		})
	}
}

// creates a handler that reports a session's quota and gallery state
func StatusHandler(sessionMgr *sessions.Manager, tracker *quota.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")

		session, exists := sessionMgr.GetSession(sessionID)
		if !exists {
			errors.SessionNotFound(c)
			return
		}

		session.Lock()
		resp := StatusResponse{
			SessionID:      session.ID,
			Authenticated:  session.Auth.Authenticated,
			Identity:       session.Auth.Identity,
			QuotaLimit:     session.Quota.Limit,
			QuotaRemaining: tracker.Remaining(&session.Quota),
			GalleryCount:   session.Gallery.Len(),
			ExpiresAt:      session.ExpiresAt,
		}
		session.Unlock()

		c.JSON(http.StatusOK, resp)
	}
}

// creates a handler that ends a session and discards its state
func DeleteHandler(sessionMgr *sessions.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")

		if _, exists := sessionMgr.GetSession(sessionID); !exists {
			errors.SessionNotFound(c)
			return
		}

		sessionMgr.DeleteSession(sessionID)

		c.JSON(http.StatusOK, MessageResponse{Message: "session ended"})
	}
}
