package config

import (
	"fmt"
	"os"
	"strconv"

	"codeberg.org/pixelrave/server/internal/gallery"
	"codeberg.org/pixelrave/server/internal/logger"
	"codeberg.org/pixelrave/server/internal/quota"
	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	// not an error - production environments may not have a .env file
	_ = godotenv.Load()

	hubToken := os.Getenv("HF_TOKEN")
	environment := os.Getenv("ENVIRONMENT")

	if environment == "" {
		environment = "development"
	}

	// the token is optional: without it only public models work and
	// gated models return the access-required guidance
	if hubToken == "" {
		logger.Warn("HF_TOKEN not set, gated models will be unavailable")
	}

	dailyLimit, err := intFromEnv("DAILY_LIMIT", quota.DefaultDailyLimit)
	if err != nil {
		return nil, err
	}

	galleryCapacity, err := intFromEnv("GALLERY_CAPACITY", gallery.DefaultCapacity)
	if err != nil {
		return nil, err
	}

	return &Config{
		HubToken:        hubToken,
		DailyLimit:      dailyLimit,
		GalleryCapacity: galleryCapacity,
		Environment:     environment,
	}, nil
}

// reads an integer variable, falling back to a default when unset
func intFromEnv(name string, fallback int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}

	return value, nil
}
