package handler

import (
	"net/http"

	"github.com/nbaiagent/agent-data/internal/analytics"
	"github.com/nbaiagent/agent-data/internal/api/respond"
	"github.com/nbaiagent/agent-data/internal/cache"
)

// GetDashboard returns the full-history analytics bundle.
// @Summary Dashboard analytics
// @Description Bankroll simulation, confusion matrix, team and reason performance over the whole bets history.
// @Tags dashboard
// @Produce json
// @Success 200 {object} analytics.Dashboard
// @Router /api/v1/dashboard [get]
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	const cacheKey = "dashboard"

	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, cache.TTLDashboard, true)
		return
	}

	history, err := h.deps.Matches.History(r.Context())
	if err != nil {
		h.logger.Error("dashboard: history fetch failed", "error", err)
		history = nil
	}

	h.writeCached(w, r, cacheKey, cache.TTLDashboard, analytics.Compute(history))
}
