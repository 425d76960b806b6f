package main

import (
	"codeberg.org/pixelrave/server/internal/config"
	"codeberg.org/pixelrave/server/internal/imagegen"
	"codeberg.org/pixelrave/server/internal/quota"
	"codeberg.org/pixelrave/server/internal/sessions"
	"codeberg.org/pixelrave/server/internal/studio"
	"codeberg.org/pixelrave/server/internal/transcribe"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	config     *config.Config
	router     *gin.Engine
	sessionMgr *sessions.Manager
	registry   *imagegen.Registry
	services   *Services
}

// holds the generation pipeline and external service clients
type Services struct {
	Studio      *studio.Studio
	Tracker     *quota.Tracker
	Transcriber transcribe.Transcriber
}
