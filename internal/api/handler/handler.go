// Package handler provides HTTP handlers for all API endpoints. Handlers
// depend on narrow store interfaces so the vote and ranking flows can be
// exercised against fakes; the pgx-backed implementations live in
// internal/match and internal/ranking.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/nbaiagent/agent-data/internal/api/respond"
	"github.com/nbaiagent/agent-data/internal/cache"
	"github.com/nbaiagent/agent-data/internal/config"
	"github.com/nbaiagent/agent-data/internal/match"
	"github.com/nbaiagent/agent-data/internal/ranking"
)

// MatchStore is the match-side data access the handlers need.
type MatchStore interface {
	PastWindow(ctx context.Context, before string, limit int) ([]match.Match, error)
	FutureWindow(ctx context.Context, from string, limit int) ([]match.Match, error)
	OnDate(ctx context.Context, date string) ([]match.Match, error)
	History(ctx context.Context) ([]match.Match, error)
	RecordVote(ctx context.Context, matchID int64, team, reason string, confidence int) error
	OfficialGames(ctx context.Context, dates []string) ([]match.OfficialGame, error)
	Standings(ctx context.Context) ([]match.Standing, error)
}

// RankingStore is the ranking-side data access.
type RankingStore interface {
	ActivePlayers(ctx context.Context) ([]ranking.Player, error)
	Current(ctx context.Context, season string) ([]ranking.Entry, error)
	Replace(ctx context.Context, season string, entries []ranking.Entry) (int, error)
}

// HealthChecker verifies database reachability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Deps bundles the stores the handlers are constructed over.
type Deps struct {
	Matches  MatchStore
	Rankings RankingStore
	DB       HealthChecker
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	deps   Deps
	cache  *cache.Cache
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(deps Deps, c *cache.Cache, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{deps: deps, cache: c, cfg: cfg, logger: logger}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version and status.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "NBA Agent Data API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"season":  config.CurrentSeason,
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies database connectivity.
// @Summary Database health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.DB.HealthCheck(r.Context()); err != nil {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     "Database connection check failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
