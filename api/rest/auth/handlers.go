package auth

import (
	"net/http"
	"slices"

	"codeberg.org/pixelrave/server/internal/auth"
	"codeberg.org/pixelrave/server/internal/errors"
	"codeberg.org/pixelrave/server/internal/logger"
	"codeberg.org/pixelrave/server/internal/sessions"
	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"
)

// starts the OAuth flow with the given provider
func BeginAuthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := c.Param("provider")

		if !isValidProvider(provider) {
			errors.BadRequest(c, "invalid provider", nil)
			return
		}

		// set provider in query for gothic
		q := c.Request.URL.Query()
		q.Add("provider", provider)
		c.Request.URL.RawQuery = q.Encode()

		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// completes the OAuth flow: issues a JWT and, when the caller named a
// session, marks that session authenticated
func CallbackHandler(sessionMgr *sessions.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := c.Param("provider")

		q := c.Request.URL.Query()
		q.Add("provider", provider)
		c.Request.URL.RawQuery = q.Encode()

		gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			errors.InternalError(c, "authentication failed", err)
			return
		}

		identity := gothUser.Email
		if identity == "" {
			identity = gothUser.UserID
		}

		token, err := auth.GenerateJWT(identity)
		if err != nil {
			errors.InternalError(c, "failed to generate token", err)
			return
		}

		if sessionID := c.Query("session_id"); sessionID != "" {
			if err := sessionMgr.SetAuth(sessionID, identity); err != nil {
				logger.Warn("login completed but session could not be updated",
					"session_id", sessionID,
					"error", err,
				)
			}
		}

		c.JSON(http.StatusOK, AuthResponse{
			Token:    token,
			Identity: identity,
		})
	}
}

// returns the authenticated caller's identity
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, exists := auth.GetIdentity(c)

		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		c.JSON(http.StatusOK, MeResponse{Identity: identity})
	}
}

// clears the authentication session
func LogoutHandler(sessionMgr *sessions.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := gothic.Logout(c.Writer, c.Request); err != nil {
			logger.ErrorErr(err, "failed to logout user from gothic session")
		}

		if sessionID := c.Query("session_id"); sessionID != "" {
			if err := sessionMgr.ClearAuth(sessionID); err != nil {
				logger.Warn("failed to clear session auth", "session_id", sessionID, "error", err)
			}
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "logged out successfully"})
	}
}

func isValidProvider(provider string) bool {
	validProviders := []string{"google"}
	return slices.Contains(validProviders, provider)
}
