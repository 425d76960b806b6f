package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvironmentVariables_Defaults(t *testing.T) {
	t.Setenv("HF_TOKEN", "")
	t.Setenv("DAILY_LIMIT", "")
	t.Setenv("GALLERY_CAPACITY", "")
	t.Setenv("ENVIRONMENT", "")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Empty(t, cfg.HubToken)
	assert.Equal(t, 10, cfg.DailyLimit)
	assert.Equal(t, 5, cfg.GalleryCapacity)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoadEnvironmentVariables_Explicit(t *testing.T) {
	t.Setenv("HF_TOKEN", "hf_test")
	t.Setenv("DAILY_LIMIT", "25")
	t.Setenv("GALLERY_CAPACITY", "8")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "hf_test", cfg.HubToken)
	assert.Equal(t, 25, cfg.DailyLimit)
	assert.Equal(t, 8, cfg.GalleryCapacity)
	assert.Equal(t, "production", cfg.Environment)
}

func TestLoadEnvironmentVariables_BadInteger(t *testing.T) {
	t.Setenv("DAILY_LIMIT", "lots")

	_, err := LoadEnvironmentVariables()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DAILY_LIMIT")
}
