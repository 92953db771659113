package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "emotionverse.db", cfg.DatabaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.CaptureWarmup)
	assert.Equal(t, 3*time.Second, cfg.CaptureInterval)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CAPTURE_WARMUP", "500ms")
	t.Setenv("CAPTURE_INTERVAL", "5")

	cfg := Load()

	assert.Equal(t, "9999", cfg.HTTPPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 500*time.Millisecond, cfg.CaptureWarmup)
	assert.Equal(t, 5*time.Second, cfg.CaptureInterval, "bare integers are seconds")
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("CAPTURE_WARMUP", "soon")

	cfg := Load()
	assert.Equal(t, 2*time.Second, cfg.CaptureWarmup)
}

func TestLoadCredentialSeeds(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "tmdb-seed")
	t.Setenv("SPOTIFY_CLIENT_ID", "sp-id")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "")

	cfg := Load()

	assert.Equal(t, "tmdb-seed", cfg.CredentialSeeds[CredTMDBAPIKey])
	assert.Equal(t, "sp-id", cfg.CredentialSeeds[CredSpotifyClientID])
	_, seeded := cfg.CredentialSeeds[CredSpotifyClientSecret]
	assert.False(t, seeded, "empty seed values are skipped")
}
