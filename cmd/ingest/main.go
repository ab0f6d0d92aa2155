// Command ingest is the agent-data ingestion CLI.
//
// Usage:
//
//	agent-ingest sync games --days 7
//	agent-ingest sync games --start 2025-12-01 --end 2025-12-15
//	agent-ingest sync standings --season 2025
//	agent-ingest sync players
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nbaiagent/agent-data/internal/config"
	"github.com/nbaiagent/agent-data/internal/db"
	"github.com/nbaiagent/agent-data/internal/provider/bdl"
	"github.com/nbaiagent/agent-data/internal/seed"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "agent-ingest",
		Short: "NBA agent data ingestion CLI",
	}

	root.AddCommand(syncCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// sync command
// --------------------------------------------------------------------------

func syncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync data from BallDontLie",
	}
	cmd.AddCommand(syncGamesCmd())
	cmd.AddCommand(syncStandingsCmd())
	cmd.AddCommand(syncPlayersCmd())
	return cmd
}

func syncGamesCmd() *cobra.Command {
	var days int
	var startDate, endDate string
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Sync official games with schedule context",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(func(ctx context.Context, handler *bdl.NBAHandler, pool *db.Pool) error {
				start, end := startDate, endDate
				if start == "" || end == "" {
					now := time.Now().UTC()
					start = now.AddDate(0, 0, -days).Format("2006-01-02")
					end = now.AddDate(0, 0, days).Format("2006-01-02")
				}
				t := time.Now()
				result := seed.SyncGames(ctx, pool.Pool, handler, start, end, logger)
				report("Games sync finished", result, t)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "Window around today when --start/--end are not set")
	cmd.Flags().StringVar(&startDate, "start", "", "Window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "Window end (YYYY-MM-DD)")
	return cmd
}

func syncStandingsCmd() *cobra.Command {
	var season int
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Sync standings with derived streak and last-10 form",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(func(ctx context.Context, handler *bdl.NBAHandler, pool *db.Pool) error {
				t := time.Now()
				result := seed.SyncStandings(ctx, pool.Pool, handler, season, logger)
				report("Standings sync finished", result, t)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&season, "season", defaultSeason(), "Season start year")
	return cmd
}

func syncPlayersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "Sync the active roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(func(ctx context.Context, handler *bdl.NBAHandler, pool *db.Pool) error {
				t := time.Now()
				result := seed.SyncPlayers(ctx, pool.Pool, handler, logger)
				report("Players sync finished", result, t)
				return nil
			})
		},
	}
}

func report(msg string, result seed.Result, started time.Time) {
	logger.Info(msg,
		"duration", time.Since(started).Round(time.Second),
		"summary", result.Summary())
	for _, e := range result.Errors {
		logger.Error("sync error", "error", e)
	}
}

// defaultSeason derives the season start year from the "2025-26" season key.
func defaultSeason() int {
	year, err := strconv.Atoi(config.CurrentSeason[:4])
	if err != nil {
		return time.Now().UTC().Year()
	}
	return year
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runSync handles config loading, DB connection, and context cancellation.
func runSync(fn func(ctx context.Context, handler *bdl.NBAHandler, pool *db.Pool) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.BDLAPIKey == "" {
		return fmt.Errorf("BALLDONTLIE_API_KEY is required")
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, bdl.NewNBAHandler(cfg.BDLAPIKey, logger), pool)
}
