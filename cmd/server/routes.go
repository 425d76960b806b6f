package main

import (
	"os"
	"strings"
	"time"

	"codeberg.org/pixelrave/server/api/rest/auth"
	"codeberg.org/pixelrave/server/api/rest/gallery"
	"codeberg.org/pixelrave/server/api/rest/generate"
	"codeberg.org/pixelrave/server/api/rest/health"
	"codeberg.org/pixelrave/server/api/rest/models"
	"codeberg.org/pixelrave/server/api/rest/sessions"
	"codeberg.org/pixelrave/server/api/rest/transcribe"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.sessionMgr)
		generate.RegisterRoutes(v1, server.services.Studio, server.sessionMgr, server.registry)
		gallery.RegisterRoutes(v1, server.sessionMgr)
		models.RegisterRoutes(v1, server.registry)
		sessions.RegisterRoutes(v1, server.sessionMgr, server.services.Tracker)
		transcribe.RegisterRoutes(v1, server.services.Transcriber)
	}
}

// builds the CORS middleware; allowed origins come from ALLOWED_ORIGINS
// (comma-separated), defaulting to localhost dev servers
func CORSMiddleware() gin.HandlerFunc {
	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
