// Package maintenance runs periodic background refresh as Go tickers.
// Replaces external cron — the API is already a persistent, long-running
// service, so scheduled syncs are driven from Go.
package maintenance

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nbaiagent/agent-data/internal/config"
	"github.com/nbaiagent/agent-data/internal/provider/bdl"
	"github.com/nbaiagent/agent-data/internal/seed"
)

// gamesWindowDays bounds the refresh window around today: recent games get
// their final scores, upcoming games get schedule context.
const gamesWindowDays = 7

// Config controls refresh intervals. Zero duration disables a task.
type Config struct {
	GamesInterval     time.Duration // Official scores and schedule context
	StandingsInterval time.Duration // Standings with derived form
}

// DefaultConfig returns sensible production defaults.
func DefaultConfig() Config {
	return Config{
		GamesInterval:     10 * time.Minute,
		StandingsInterval: 1 * time.Hour,
	}
}

// Start launches all configured refresh tickers. Blocks until ctx is
// cancelled. Intended to be called with `go`.
func Start(ctx context.Context, pool *pgxpool.Pool, handler *bdl.NBAHandler, cfg Config, logger *slog.Logger) {
	logger.Info("Refresh tickers started",
		"games", cfg.GamesInterval,
		"standings", cfg.StandingsInterval)

	tickers := make([]*time.Ticker, 0, 2)
	defer func() {
		for _, t := range tickers {
			t.Stop()
		}
	}()

	if cfg.GamesInterval > 0 {
		t := time.NewTicker(cfg.GamesInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, func() { refreshGames(ctx, pool, handler, logger) })
	}

	if cfg.StandingsInterval > 0 {
		t := time.NewTicker(cfg.StandingsInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, func() { refreshStandings(ctx, pool, handler, logger) })
	}

	<-ctx.Done()
	logger.Info("Refresh tickers stopped")
}

func runLoop(ctx context.Context, ch <-chan time.Time, fn func()) {
	for {
		select {
		case <-ch:
			fn()
		case <-ctx.Done():
			return
		}
	}
}

// refreshGames resyncs games around today so finals land shortly after the
// buzzer and upcoming games carry fresh rest/form context.
func refreshGames(ctx context.Context, pool *pgxpool.Pool, handler *bdl.NBAHandler, logger *slog.Logger) {
	now := time.Now().UTC()
	result := seed.SyncGames(ctx, pool, handler,
		now.AddDate(0, 0, -gamesWindowDays).Format("2006-01-02"),
		now.AddDate(0, 0, gamesWindowDays).Format("2006-01-02"),
		logger)
	for _, msg := range result.Errors {
		logger.Warn("Games refresh", "error", msg)
	}
}

func refreshStandings(ctx context.Context, pool *pgxpool.Pool, handler *bdl.NBAHandler, logger *slog.Logger) {
	result := seed.SyncStandings(ctx, pool, handler, seasonStartYear(), logger)
	for _, msg := range result.Errors {
		logger.Warn("Standings refresh", "error", msg)
	}
}

// seasonStartYear extracts the opening year from the "2025-26" season key.
func seasonStartYear() int {
	year, err := strconv.Atoi(config.CurrentSeason[:4])
	if err != nil {
		return time.Now().UTC().Year()
	}
	return year
}
