package main

import (
	"time"

	"codeberg.org/pixelrave/server/internal/config"
	"codeberg.org/pixelrave/server/internal/imagegen"
	"codeberg.org/pixelrave/server/internal/logger"
	"codeberg.org/pixelrave/server/internal/sessions"
	"github.com/gin-gonic/gin"
)

// sessions inactive for longer than this are dropped by the cleanup loop
const sessionTTL = 2 * time.Hour

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	registry := imagegen.NewRegistry()

	sessionMgr := sessions.NewManager(sessionTTL, cfg.DailyLimit, cfg.GalleryCapacity)

	services := InitializeServices(cfg, registry)

	logger.Info("generation pipeline initialized",
		"models", len(registry.List()),
		"daily_limit", cfg.DailyLimit,
		"gallery_capacity", cfg.GalleryCapacity,
		"authenticated", cfg.HubToken != "",
	)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	server := &Server{
		config:     cfg,
		router:     router,
		sessionMgr: sessionMgr,
		registry:   registry,
		services:   services,
	}

	RegisterRoutes(router, server)

	return server, nil
}
