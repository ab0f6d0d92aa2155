package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nbaiagent/agent-data/internal/config"
	"github.com/nbaiagent/agent-data/internal/provider/bdl"
)

// SyncPlayers refreshes the roster: every player currently on an NBA roster
// is upserted as active, everyone else is flagged inactive. Runs in a single
// transaction so readers never see a half-deactivated roster.
func SyncPlayers(ctx context.Context, pool *pgxpool.Pool, handler *bdl.NBAHandler, logger *slog.Logger) Result {
	var result Result

	logger.Info("Syncing NBA players...")
	tx, err := pool.Begin(ctx)
	if err != nil {
		result.AddErrorf("begin roster tx: %v", err)
		return result
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "UPDATE "+config.PlayersTable+" SET is_active = false"); err != nil {
		result.AddErrorf("deactivate roster: %v", err)
		return result
	}

	count := 0
	err = handler.GetActivePlayers(ctx, func(p bdl.Player) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO `+config.PlayersTable+` (id, full_name, team_id, position, is_active)
			VALUES ($1,$2,$3,$4,true)
			ON CONFLICT (id) DO UPDATE SET
				full_name = EXCLUDED.full_name,
				team_id = EXCLUDED.team_id,
				position = EXCLUDED.position,
				is_active = true,
				updated_at = NOW()`,
			p.ID, p.FullName, p.TeamID, nilEmpty(p.Position),
		)
		if err != nil {
			return fmt.Errorf("upsert player %d: %w", p.ID, err)
		}
		count++
		if count%100 == 0 {
			logger.Info("NBA players progress", "processed", count)
		}
		return nil
	})
	if err != nil {
		result.AddErrorf("fetch NBA players: %v", err)
		return result
	}

	if err := tx.Commit(ctx); err != nil {
		result.AddErrorf("commit roster tx: %v", err)
		return result
	}
	result.PlayersUpserted = count
	logger.Info("NBA players done", "count", count)
	return result
}
