package match

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store reads and writes match data through pgx prepared statements
// (registered in internal/db).
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a Store over the shared pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// PastWindow returns up to limit matches strictly before the given date,
// newest first.
func (s *Store) PastWindow(ctx context.Context, before string, limit int) ([]Match, error) {
	rows, err := s.pool.Query(ctx, "matches_before", before, limit)
	if err != nil {
		return nil, fmt.Errorf("past matches: %w", err)
	}
	return scanMatches(rows)
}

// FutureWindow returns up to limit matches on or after the given date,
// oldest first.
func (s *Store) FutureWindow(ctx context.Context, from string, limit int) ([]Match, error) {
	rows, err := s.pool.Query(ctx, "matches_from", from, limit)
	if err != nil {
		return nil, fmt.Errorf("future matches: %w", err)
	}
	return scanMatches(rows)
}

// OnDate returns all matches scheduled on one calendar date.
func (s *Store) OnDate(ctx context.Context, date string) ([]Match, error) {
	rows, err := s.pool.Query(ctx, "matches_on", date)
	if err != nil {
		return nil, fmt.Errorf("matches on %s: %w", date, err)
	}
	return scanMatches(rows)
}

// History returns the full bets history, newest first. Used by the
// dashboard aggregates.
func (s *Store) History(ctx context.Context) ([]Match, error) {
	rows, err := s.pool.Query(ctx, "matches_all")
	if err != nil {
		return nil, fmt.Errorf("match history: %w", err)
	}
	return scanMatches(rows)
}

// RecordVote updates the user-annotation fields of a single match.
func (s *Store) RecordVote(ctx context.Context, matchID int64, team, reason string, confidence int) error {
	tag, err := s.pool.Exec(ctx, "record_vote", matchID, team, reason, confidence)
	if err != nil {
		return fmt.Errorf("record vote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("record vote: match %d not found", matchID)
	}
	return nil
}

// OfficialGames returns the official results for the given set of dates.
func (s *Store) OfficialGames(ctx context.Context, dates []string) ([]OfficialGame, error) {
	if len(dates) == 0 {
		return nil, nil
	}
	rows, err := s.pool.Query(ctx, "games_on_dates", dates)
	if err != nil {
		return nil, fmt.Errorf("official games: %w", err)
	}
	defer rows.Close()

	var games []OfficialGame
	for rows.Next() {
		var g OfficialGame
		var status *string
		if err := rows.Scan(
			&g.ID, &g.GameDate, &g.HomeTeam, &g.AwayTeam,
			&g.HomeScore, &g.AwayScore, &status,
			&g.RestDaysHome, &g.RestDaysAway, &g.B2BHome, &g.B2BAway,
			&g.Last10HomeWins, &g.Last10AwayWins,
			&g.HomeWinRateSpecific, &g.AwayWinRateSpecific,
		); err != nil {
			return nil, fmt.Errorf("scan official game: %w", err)
		}
		if status != nil {
			g.Status = Status(*status)
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// Standings returns all franchise standings ordered by rank.
func (s *Store) Standings(ctx context.Context) ([]Standing, error) {
	rows, err := s.pool.Query(ctx, "standings_all")
	if err != nil {
		return nil, fmt.Errorf("standings: %w", err)
	}
	defer rows.Close()

	var standings []Standing
	for rows.Next() {
		var st Standing
		var last10, homeRec, roadRec *string
		if err := rows.Scan(
			&st.TeamID, &st.TeamName, &st.Wins, &st.Losses, &st.WinPct,
			&st.Conference, &st.Rank, &st.Record, &st.Streak,
			&last10, &homeRec, &roadRec,
		); err != nil {
			return nil, fmt.Errorf("scan standing: %w", err)
		}
		st.Last10 = deref(last10)
		st.HomeRecord = deref(homeRec)
		st.RoadRecord = deref(roadRec)
		standings = append(standings, st)
	}
	return standings, rows.Err()
}

func scanMatches(rows pgx.Rows) ([]Match, error) {
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(
			&m.ID, &m.GameDate, &m.HomeTeam, &m.AwayTeam,
			&m.PredictedWinner, &m.Confidence, &m.AIExplanation, &m.RiskLevel, &m.Badges,
			&m.RealWinner, &m.UserPrediction, &m.UserReason, &m.UserConfidence,
		); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
