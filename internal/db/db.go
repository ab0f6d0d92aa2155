// Package db provides a pgxpool-based connection pool with prepared statement
// registration and health checking.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nbaiagent/agent-data/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

const matchColumns = `id, game_date::text, home_team, away_team,
		predicted_winner, confidence, ai_explanation, risk_level, badges,
		real_winner, user_prediction, user_reason, user_confidence`

const gameColumns = `id, game_date::text, home_team, away_team,
		home_score, away_score, status,
		rest_days_home, rest_days_away, is_b2b_home, is_b2b_away,
		last10_home_wins, last10_away_wins,
		home_win_rate_specific, away_win_rate_specific`

const standingColumns = `team_id, team_name, wins, losses, win_pct,
		conference, rank, record, streak, last_10, home_record, road_record`

// registerPreparedStatements registers all statements the API and ingestion
// layers use. Prepared statements eliminate parse overhead on every request.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		"health_check": "SELECT 1",

		// Match windows (bets history)
		"matches_before": "SELECT " + matchColumns + " FROM " + config.MatchesTable +
			" WHERE game_date < $1 ORDER BY game_date DESC LIMIT $2",
		"matches_from": "SELECT " + matchColumns + " FROM " + config.MatchesTable +
			" WHERE game_date >= $1 ORDER BY game_date ASC LIMIT $2",
		"matches_on": "SELECT " + matchColumns + " FROM " + config.MatchesTable +
			" WHERE game_date::date = $1::date ORDER BY game_date ASC",
		"matches_all": "SELECT " + matchColumns + " FROM " + config.MatchesTable +
			" ORDER BY game_date DESC",

		// Vote (single-row user annotation update)
		"record_vote": "UPDATE " + config.MatchesTable +
			" SET user_prediction = $2, user_reason = $3, user_confidence = $4 WHERE id = $1",

		// Official games & standings
		"games_on_dates": "SELECT " + gameColumns + " FROM " + config.GamesTable +
			" WHERE game_date::date = ANY($1::date[])",
		"standings_all": "SELECT " + standingColumns + " FROM " + config.StandingsTable +
			" ORDER BY rank ASC",

		// Roster & ranking
		"players_active": "SELECT id, full_name, team_id, position FROM " + config.PlayersTable +
			" WHERE is_active = true ORDER BY full_name ASC",
		"ranking_for_season": "SELECT player_id, rank FROM " + config.RankingTable +
			" WHERE season = $1 ORDER BY rank ASC",
		"ranking_clear": "DELETE FROM " + config.RankingTable + " WHERE season = $1",
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
