package main

import (
	"codeberg.org/pixelrave/server/internal/config"
	"codeberg.org/pixelrave/server/internal/imagegen"
	"codeberg.org/pixelrave/server/internal/quota"
	"codeberg.org/pixelrave/server/internal/studio"
	"codeberg.org/pixelrave/server/internal/transcribe"
)

// creates and configures the generation pipeline and service clients
func InitializeServices(cfg *config.Config, registry *imagegen.Registry) *Services {
	tracker := quota.NewTracker()
	chain := imagegen.NewChain(registry, cfg.HubToken != "")

	// candidate order is fixed per request: authenticated client first
	// when a token is configured, then the unauthenticated fallback
	candidates := func(modelID string) []imagegen.Strategy {
		return imagegen.DefaultCandidates(cfg.HubToken)
	}

	transcriber := transcribe.NewWhisperClient(transcribe.WhisperConfig{
		Token: cfg.HubToken,
	})

	return &Services{
		Studio:      studio.New(tracker, chain, candidates),
		Tracker:     tracker,
		Transcriber: transcriber,
	}
}
