package ranking

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nbaiagent/agent-data/internal/config"
)

// Store persists the ranking through pgx prepared statements.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a Store over the shared pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// ActivePlayers returns the active roster, alphabetical.
func (s *Store) ActivePlayers(ctx context.Context) ([]Player, error) {
	rows, err := s.pool.Query(ctx, "players_active")
	if err != nil {
		return nil, fmt.Errorf("active players: %w", err)
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.FullName, &p.TeamID, &p.Position); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// Current returns the persisted ranking entries for a season, rank ascending.
func (s *Store) Current(ctx context.Context, season string) ([]Entry, error) {
	rows, err := s.pool.Query(ctx, "ranking_for_season", season)
	if err != nil {
		return nil, fmt.Errorf("ranking for %s: %w", season, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.PlayerID, &e.Rank); err != nil {
			return nil, fmt.Errorf("scan ranking entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Replace wholly replaces the season's ranking: delete every existing row,
// then bulk-insert the submitted entries, all in one transaction. Returns
// the inserted count. No partial update, no history retained.
func (s *Store) Replace(ctx context.Context, season string, entries []Entry) (int, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("begin ranking replace: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "ranking_clear", season); err != nil {
		return 0, fmt.Errorf("clear ranking: %w", err)
	}

	if len(entries) > 0 {
		rowsData := make([][]interface{}, len(entries))
		for i, e := range entries {
			rowsData[i] = []interface{}{e.PlayerID, e.Rank, season}
		}
		if _, err := tx.CopyFrom(ctx,
			pgx.Identifier{config.RankingTable},
			[]string{"player_id", "rank", "season"},
			pgx.CopyFromRows(rowsData),
		); err != nil {
			return 0, fmt.Errorf("insert ranking: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit ranking replace: %w", err)
	}
	return len(entries), nil
}
