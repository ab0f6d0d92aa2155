// Command api is the NBA Agent Data API server: match board, dashboard
// analytics, vote and ranking endpoints for the prediction companion app.
//
// Usage:
//
//	agent-api
//	API_PORT=8080 agent-api

// @title NBA Agent Data API
// @version 1.0.0
// @description Match cards with AI win predictions, admin counter-votes, player power ranking, and accuracy analytics.
// @host localhost:8000
// @BasePath /
// @schemes http https
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/nbaiagent/agent-data/internal/api"
	"github.com/nbaiagent/agent-data/internal/api/handler"
	"github.com/nbaiagent/agent-data/internal/cache"
	"github.com/nbaiagent/agent-data/internal/config"
	"github.com/nbaiagent/agent-data/internal/db"
	"github.com/nbaiagent/agent-data/internal/maintenance"
	"github.com/nbaiagent/agent-data/internal/match"
	"github.com/nbaiagent/agent-data/internal/provider/bdl"
	"github.com/nbaiagent/agent-data/internal/ranking"

	_ "github.com/nbaiagent/agent-data/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if cfg.AdminPIN == "" {
		logger.Warn("ADMIN_PIN not set — vote and ranking writes will be rejected")
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Connect to database
	logger.Info("Connecting to database...")
	pool, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("Database connected",
		"min_conns", cfg.DBPoolMinConns,
		"max_conns", cfg.DBPoolMaxConns)

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Background refresh of official scores and standings (optional)
	if cfg.BDLAPIKey != "" {
		nba := bdl.NewNBAHandler(cfg.BDLAPIKey, logger)
		go maintenance.Start(ctx, pool.Pool, nba, maintenance.Config{
			GamesInterval:     cfg.GamesRefreshInterval,
			StandingsInterval: cfg.StandingsRefreshInterval,
		}, logger)
	} else {
		logger.Info("Background refresh disabled (no BALLDONTLIE_API_KEY)")
	}

	// Create router
	deps := handler.Deps{
		Matches:  match.NewStore(pool.Pool),
		Rankings: ranking.NewStore(pool.Pool),
		DB:       pool,
	}
	router := api.NewRouter(deps, appCache, cfg, logger)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting NBA Agent Data API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
