package sessions

import (
	"codeberg.org/pixelrave/server/internal/quota"
	"codeberg.org/pixelrave/server/internal/sessions"
	"github.com/gin-gonic/gin"
)

// registers session lifecycle routes
func RegisterRoutes(router *gin.RouterGroup, sessionMgr *sessions.Manager, tracker *quota.Tracker) {
	sessionGroup := router.Group("/sessions")

	{
		sessionGroup.POST("", CreateHandler(sessionMgr, tracker))
		sessionGroup.GET("/:id", StatusHandler(sessionMgr, tracker))
		sessionGroup.DELETE("/:id", DeleteHandler(sessionMgr))
	}
}
