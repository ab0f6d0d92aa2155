package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nbaiagent/agent-data/internal/api/respond"
	"github.com/nbaiagent/agent-data/internal/cache"
	"github.com/nbaiagent/agent-data/internal/config"
	"github.com/nbaiagent/agent-data/internal/ranking"
)

// rankingView is the partitioned editor state served to the frontend.
type rankingView struct {
	Season string                 `json:"season"`
	Ranked []ranking.RankedPlayer `json:"ranked"`
	Pool   []ranking.Player       `json:"pool"`
}

// rankingSaveRequest is the full-replace save payload. Entries arrive in
// display order; the server assigns rank = position + 1.
type rankingSaveRequest struct {
	Entries []ranking.Entry `json:"entries"`
	PIN     string          `json:"pin"`
}

// GetRanking returns the roster partitioned into ranked and pool sets.
// @Summary Ranking editor state
// @Tags ranking
// @Produce json
// @Success 200 {object} rankingView
// @Router /api/v1/ranking [get]
func (h *Handler) GetRanking(w http.ResponseWriter, r *http.Request) {
	const cacheKey = "ranking"

	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, cache.TTLRoster, true)
		return
	}

	ctx := r.Context()

	players, err := h.deps.Rankings.ActivePlayers(ctx)
	if err != nil {
		h.logger.Error("roster fetch failed", "error", err)
		players = nil
	}
	entries, err := h.deps.Rankings.Current(ctx, config.CurrentSeason)
	if err != nil {
		h.logger.Error("ranking fetch failed", "error", err)
		entries = nil
	}

	ranked, pool := ranking.Partition(players, entries)
	if ranked == nil {
		ranked = []ranking.RankedPlayer{}
	}
	if pool == nil {
		pool = []ranking.Player{}
	}
	h.writeCached(w, r, cacheKey, cache.TTLRoster, rankingView{
		Season: config.CurrentSeason,
		Ranked: ranked,
		Pool:   pool,
	})
}

// PostRanking wholly replaces the season's ranking.
// @Summary Save ranking
// @Description Deletes every ranking row for the current season and bulk-inserts the submitted entries. Last write wins under the single-admin model.
// @Tags ranking
// @Accept json
// @Produce json
// @Param body body rankingSaveRequest true "Ordered ranking entries"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 401 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /api/v1/ranking [post]
func (h *Handler) PostRanking(w http.ResponseWriter, r *http.Request) {
	var req rankingSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
		return
	}

	if !h.authorize(w, req.PIN) {
		return
	}

	if len(req.Entries) > ranking.MaxRanked {
		respond.WriteError(w, http.StatusBadRequest, "RANKING_TOO_LARGE",
			fmt.Sprintf("ranking holds at most %d players", ranking.MaxRanked))
		return
	}

	// Ranks are authoritative by submitted order: entry i gets rank i+1.
	seen := make(map[int64]struct{}, len(req.Entries))
	entries := make([]ranking.Entry, len(req.Entries))
	for i, e := range req.Entries {
		if e.PlayerID == 0 {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_ENTRY", "every entry needs a player_id")
			return
		}
		if _, dup := seen[e.PlayerID]; dup {
			respond.WriteError(w, http.StatusBadRequest, "DUPLICATE_PLAYER",
				fmt.Sprintf("player %d appears twice", e.PlayerID))
			return
		}
		seen[e.PlayerID] = struct{}{}
		entries[i] = ranking.Entry{PlayerID: e.PlayerID, Rank: i + 1}
	}

	count, err := h.deps.Rankings.Replace(r.Context(), config.CurrentSeason, entries)
	if err != nil {
		h.logger.Error("ranking save failed", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "SAVE_FAILED", "Failed to save ranking")
		return
	}

	h.cache.Invalidate("ranking")
	h.logger.Info("ranking saved", "season", config.CurrentSeason, "count", count)
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"saved":   count,
	})
}
