package gallery

import (
	"codeberg.org/pixelrave/server/internal/sessions"
	"github.com/gin-gonic/gin"
)

// registers gallery routes
func RegisterRoutes(router *gin.RouterGroup, sessionMgr *sessions.Manager) {
	router.GET("/gallery", ListHandler(sessionMgr))
	router.GET("/gallery/:index/image", ImageHandler(sessionMgr))
}
