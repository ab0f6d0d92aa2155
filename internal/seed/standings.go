package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nbaiagent/agent-data/internal/config"
	"github.com/nbaiagent/agent-data/internal/provider/bdl"
	"github.com/nbaiagent/agent-data/internal/team"
)

// formWindowDays is how far back we look for finished games when deriving
// each team's streak and last-10 record, which BDL standings do not carry.
const formWindowDays = 30

// SyncStandings fetches the season standings and upserts them, deriving
// streak and last-10 form from recent finished games.
func SyncStandings(ctx context.Context, pool *pgxpool.Pool, handler *bdl.NBAHandler, season int, logger *slog.Logger) Result {
	var result Result

	logger.Info("Syncing NBA standings...", "season", season)
	standings, err := handler.GetStandings(ctx, season)
	if err != nil {
		result.AddErrorf("fetch NBA standings: %v", err)
		return result
	}

	now := time.Now().UTC()
	games, err := handler.GetGames(ctx,
		now.AddDate(0, 0, -formWindowDays).Format("2006-01-02"),
		now.Format("2006-01-02"))
	if err != nil {
		// Standings remain useful without form; record and carry on.
		result.AddErrorf("fetch recent games for form: %v", err)
	}
	byTeam := schedules(games)

	for _, s := range standings {
		apps := byTeam[team.Abbrev(s.TeamName)]
		if err := upsertStanding(ctx, pool, s, streakOf(apps), last10Of(apps)); err != nil {
			result.AddErrorf("upsert standing %d: %v", s.TeamID, err)
		} else {
			result.StandingsUpserted++
		}
	}
	logger.Info("NBA standings done", "count", result.StandingsUpserted, "errors", len(result.Errors))
	return result
}

func upsertStanding(ctx context.Context, pool *pgxpool.Pool, s bdl.Standing, streak, last10 string) error {
	winPct := 0.0
	if s.Wins+s.Losses > 0 {
		winPct = float64(s.Wins) / float64(s.Wins+s.Losses)
	}

	_, err := pool.Exec(ctx, `
		INSERT INTO `+config.StandingsTable+` (
			team_id, team_name, wins, losses, win_pct, conference, rank,
			record, streak, last_10, home_record, road_record
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (team_id) DO UPDATE SET
			team_name = EXCLUDED.team_name,
			wins = EXCLUDED.wins,
			losses = EXCLUDED.losses,
			win_pct = EXCLUDED.win_pct,
			conference = EXCLUDED.conference,
			rank = EXCLUDED.rank,
			record = EXCLUDED.record,
			streak = EXCLUDED.streak,
			last_10 = EXCLUDED.last_10,
			home_record = EXCLUDED.home_record,
			road_record = EXCLUDED.road_record,
			updated_at = NOW()`,
		s.TeamID, s.TeamName, s.Wins, s.Losses, winPct, s.Conference, s.Rank,
		fmt.Sprintf("%d-%d", s.Wins, s.Losses), nilEmpty(streak), nilEmpty(last10),
		nilEmpty(s.HomeRecord), nilEmpty(s.RoadRecord),
	)
	return err
}

// nilEmpty converts empty strings to nil so the column stays NULL instead
// of storing "".
func nilEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
