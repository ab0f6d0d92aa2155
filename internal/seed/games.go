package seed

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nbaiagent/agent-data/internal/config"
	"github.com/nbaiagent/agent-data/internal/provider/bdl"
)

// contextLookbackDays is how far before the sync window we fetch extra games
// so rest days, back-to-backs and last-10 form can be derived for the first
// games of the window.
const contextLookbackDays = 25

// SyncGames fetches official games between startDate and endDate inclusive
// and upserts them with per-team schedule context.
func SyncGames(ctx context.Context, pool *pgxpool.Pool, handler *bdl.NBAHandler, startDate, endDate string, logger *slog.Logger) Result {
	var result Result

	fetchStart := startDate
	if t, err := time.Parse("2006-01-02", startDate); err == nil {
		fetchStart = t.AddDate(0, 0, -contextLookbackDays).Format("2006-01-02")
	}

	logger.Info("Syncing NBA games...", "start", startDate, "end", endDate)
	games, err := handler.GetGames(ctx, fetchStart, endDate)
	if err != nil {
		result.AddErrorf("fetch NBA games: %v", err)
		return result
	}

	byTeam := schedules(games)
	for _, g := range games {
		if g.Date < startDate {
			continue // lookback context only
		}
		if err := upsertGame(ctx, pool, g, byTeam); err != nil {
			result.AddErrorf("upsert game %d: %v", g.ID, err)
		} else {
			result.GamesUpserted++
		}
	}
	logger.Info("NBA games done", "count", result.GamesUpserted, "errors", len(result.Errors))
	return result
}

func upsertGame(ctx context.Context, pool *pgxpool.Pool, g bdl.Game, byTeam map[string][]appearance) error {
	home, away := byTeam[g.HomeTeam], byTeam[g.AwayTeam]

	restHome := restDays(home, g.Date)
	restAway := restDays(away, g.Date)
	b2bHome := restHome != nil && *restHome == 1
	b2bAway := restAway != nil && *restAway == 1

	var homeScore, awayScore *int
	if g.Final {
		homeScore, awayScore = &g.HomeScore, &g.AwayScore
	}

	_, err := pool.Exec(ctx, `
		INSERT INTO `+config.GamesTable+` (
			id, game_date, home_team, away_team, home_score, away_score, status,
			rest_days_home, rest_days_away, is_b2b_home, is_b2b_away,
			last10_home_wins, last10_away_wins,
			home_win_rate_specific, away_win_rate_specific
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		ON CONFLICT (id) DO UPDATE SET
			game_date = EXCLUDED.game_date,
			home_team = EXCLUDED.home_team,
			away_team = EXCLUDED.away_team,
			home_score = EXCLUDED.home_score,
			away_score = EXCLUDED.away_score,
			status = EXCLUDED.status,
			rest_days_home = EXCLUDED.rest_days_home,
			rest_days_away = EXCLUDED.rest_days_away,
			is_b2b_home = EXCLUDED.is_b2b_home,
			is_b2b_away = EXCLUDED.is_b2b_away,
			last10_home_wins = EXCLUDED.last10_home_wins,
			last10_away_wins = EXCLUDED.last10_away_wins,
			home_win_rate_specific = EXCLUDED.home_win_rate_specific,
			away_win_rate_specific = EXCLUDED.away_win_rate_specific,
			updated_at = NOW()`,
		g.ID, g.Date, g.HomeTeam, g.AwayTeam, homeScore, awayScore, g.Status,
		restHome, restAway, b2bHome, b2bAway,
		lastNWins(home, g.Date, 10), lastNWins(away, g.Date, 10),
		venueWinRate(home, g.Date, true), venueWinRate(away, g.Date, false),
	)
	return err
}
