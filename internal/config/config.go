package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort      string
	DatabaseURL   string
	LogLevel      string
	LogFormat     string
	JWTSecret     string
	AdminPassword string

	// Capture cadence. Overridable mainly for integration testing;
	// the defaults match the product behavior (2s warmup, 3s interval).
	CaptureWarmup   time.Duration
	CaptureInterval time.Duration

	// Optional credential seeds. When set, they are written into the
	// credential store at startup so a fresh deployment can be configured
	// entirely from the environment. Absence is fine: every consumer
	// degrades to its fallback tier.
	CredentialSeeds map[string]string
}

// Credential store key names, shared by config seeding and the providers.
const (
	CredFacePlusAPIKey      = "faceplus_api_key"
	CredFacePlusAPISecret   = "faceplus_api_secret"
	CredGeminiAPIKey        = "gemini_api_key"
	CredTMDBAPIKey          = "tmdb_api_key"
	CredSpotifyClientID     = "spotify_client_id"
	CredSpotifyClientSecret = "spotify_client_secret"
)

func Load() Config {
	err := godotenv.Load() // Load .env file if it exists
	if err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		DatabaseURL:     getEnv("DATABASE_URL", "emotionverse.db"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		AdminPassword:   getEnv("ADMIN_PASSWORD", ""),
		CaptureWarmup:   getEnvAsDuration("CAPTURE_WARMUP", 2*time.Second),
		CaptureInterval: getEnvAsDuration("CAPTURE_INTERVAL", 3*time.Second),
		CredentialSeeds: map[string]string{},
	}

	seeds := map[string]string{
		CredFacePlusAPIKey:      "FACEPLUS_API_KEY",
		CredFacePlusAPISecret:   "FACEPLUS_API_SECRET",
		CredGeminiAPIKey:        "GEMINI_API_KEY",
		CredTMDBAPIKey:          "TMDB_API_KEY",
		CredSpotifyClientID:     "SPOTIFY_CLIENT_ID",
		CredSpotifyClientSecret: "SPOTIFY_CLIENT_SECRET",
	}
	for name, envKey := range seeds {
		if value, exists := os.LookupEnv(envKey); exists && value != "" {
			cfg.CredentialSeeds[name] = value
		}
	}

	return cfg
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	if seconds, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}
