package auth

import (
	"codeberg.org/pixelrave/server/internal/auth"
	"codeberg.org/pixelrave/server/internal/sessions"
	"github.com/gin-gonic/gin"
)

// registers authentication routes
func RegisterRoutes(router *gin.RouterGroup, sessionMgr *sessions.Manager) {
	authGroup := router.Group("/auth")

	{
		authGroup.GET("/:provider", BeginAuthHandler())
		authGroup.GET("/:provider/callback", CallbackHandler(sessionMgr))
		authGroup.GET("/me", auth.AuthMiddleware(), MeHandler())
		authGroup.POST("/logout", LogoutHandler(sessionMgr))
	}
}
