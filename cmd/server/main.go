package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TechMintOfficial/emotion-verse-recommend/internal/api"
	"github.com/TechMintOfficial/emotion-verse-recommend/internal/auth"
	"github.com/TechMintOfficial/emotion-verse-recommend/internal/chat"
	"github.com/TechMintOfficial/emotion-verse-recommend/internal/config"
	"github.com/TechMintOfficial/emotion-verse-recommend/internal/content"
	"github.com/TechMintOfficial/emotion-verse-recommend/internal/emotion"
	"github.com/TechMintOfficial/emotion-verse-recommend/internal/logging"
	"github.com/TechMintOfficial/emotion-verse-recommend/internal/store"
)

// frameMaxAge bounds how stale a pushed frame may be before a capture
// cycle treats the source as not ready.
const frameMaxAge = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logging
	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	// Initialize credential store
	credStore, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer credStore.Close()

	// Seed credentials supplied through the environment
	for name, value := range cfg.CredentialSeeds {
		if err := credStore.SetCredential(name, value); err != nil {
			logger.Fatal().Err(err).Str("name", name).Msg("Failed to seed credential")
		}
		logger.Info().Str("name", name).Msg("Seeded credential from environment")
	}

	// Emotion pipeline: frame source, gate, classifier tiers, scheduler
	frames := emotion.NewPushFrameSource(frameMaxAge)
	gate := emotion.NewFacePresenceGate()

	gemini := emotion.NewGeminiStrategy(credStore, logger)
	defer gemini.Close()

	classifier := emotion.NewClassifier([]emotion.Strategy{
		emotion.NewFacePlusStrategy(credStore, logger),
		gemini,
		// No local pipeline loader is bundled with the server build;
		// the tier reports unavailable until one is plugged in.
		emotion.NewLocalStrategy(nil, logger),
		emotion.NewHeuristicStrategy(nil, logger),
	}, logger)

	state := emotion.NewState()
	scheduler := emotion.NewScheduler(frames, gate, classifier, state.Set, cfg.CaptureWarmup, cfg.CaptureInterval, logger)
	defer scheduler.Stop()

	// Content resolution
	booksProvider, err := content.NewBooksProvider(logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize books provider")
	}
	resolver := content.NewResolver([]content.Provider{
		content.NewTMDBProvider(credStore, logger),
		content.NewSpotifyProvider(credStore, logger),
		booksProvider,
	}, content.DefaultCatalog(), logger)

	// Conversation engine
	engine := chat.NewEngine(nil, logger)

	// Admin login for the credential-management surface
	adminPasswordHash := ""
	if cfg.AdminPassword != "" && cfg.JWTSecret != "" {
		adminPasswordHash, err = auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to hash admin password")
		}
	} else {
		logger.Warn().Msg("ADMIN_PASSWORD or JWT_SECRET not set, credential management API is disabled")
	}

	// Initialize API Handler and Router
	apiHandler := api.NewAPIHandler(scheduler, state, frames, resolver, engine, credStore, cfg.JWTSecret, adminPasswordHash, logger)
	router := api.NewRouter(apiHandler)

	// Start HTTP server
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // Provider fan-out can take time
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown handling
	go func() {
		logger.Info().Str("addr", serverAddr).Msg("Starting server. Press Ctrl+C to quit.")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Str("addr", serverAddr).Msg("Could not listen")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("Shutting down server...")

	scheduler.Stop()

	// Give active connections time to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exiting gracefully")
}
