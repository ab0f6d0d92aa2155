package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/nbaiagent/agent-data/internal/api/respond"
	"github.com/nbaiagent/agent-data/internal/cache"
	"github.com/nbaiagent/agent-data/internal/match"
	"github.com/nbaiagent/agent-data/internal/reason"
)

// matchWindow caps each side of the board, mirroring the upstream query limit.
const matchWindow = 50

// boardResponse is the home view: the latest finished day, the next
// scheduled day, and the AI-vs-user tally for the results day.
type boardResponse struct {
	Results      []match.Match  `json:"results"`
	Upcoming     []match.Match  `json:"upcoming"`
	ResultsDate  string         `json:"results_date,omitempty"`
	UpcomingDate string         `json:"upcoming_date,omitempty"`
	Stats        match.DayTally `json:"stats"`
}

// GetBoard returns the enriched match board.
// @Summary Match board
// @Description Latest results day and next upcoming day, enriched with official scores and standings, plus the AI-vs-user tally.
// @Tags board
// @Produce json
// @Success 200 {object} boardResponse
// @Router /api/v1/board [get]
func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	const cacheKey = "board"

	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, cache.TTLBoard, true)
		return
	}

	ctx := r.Context()
	today := time.Now().UTC().Format("2006-01-02")

	// Each fetch degrades to an empty set on failure: a broken upstream
	// hides one section, never the whole board.
	past, err := h.deps.Matches.PastWindow(ctx, today, matchWindow)
	if err != nil {
		h.logger.Error("board: past window fetch failed", "error", err)
		past = nil
	}
	future, err := h.deps.Matches.FutureWindow(ctx, today, matchWindow)
	if err != nil {
		h.logger.Error("board: future window fetch failed", "error", err)
		future = nil
	}

	official, standings := h.lookups(ctx, append(datesOf(past), datesOf(future)...))

	enrichedPast := match.Enrich(past, official, standings)
	enrichedFuture := match.Enrich(future, official, standings)

	pastGrouped := match.GroupByDate(enrichedPast)
	futureGrouped := match.GroupByDate(enrichedFuture)

	resp := boardResponse{
		Results:  []match.Match{},
		Upcoming: []match.Match{},
	}
	if date, ok := match.LatestDate(pastGrouped); ok {
		resp.ResultsDate = date
		resp.Results = pastGrouped[date]
	}
	if date, ok := match.NextDate(futureGrouped); ok {
		resp.UpcomingDate = date
		resp.Upcoming = futureGrouped[date]
	}
	resp.Stats = match.Tally(resp.Results)

	h.writeCached(w, r, cacheKey, cache.TTLBoard, resp)
}

// GetMatchesByDate returns the enriched matches for one calendar date.
// @Summary Matches for a date
// @Tags board
// @Produce json
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {array} match.Match
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/v1/matches [get]
func (h *Handler) GetMatchesByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if len(date) != 10 {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_DATE", "date query parameter must be YYYY-MM-DD")
		return
	}

	ctx := r.Context()
	matches, err := h.deps.Matches.OnDate(ctx, date)
	if err != nil {
		h.logger.Error("matches by date fetch failed", "date", date, "error", err)
		matches = nil
	}

	official, standings := h.lookups(ctx, []string{date})
	enriched := match.Enrich(matches, official, standings)
	if enriched == nil {
		enriched = []match.Match{}
	}
	respond.WriteJSONObject(w, http.StatusOK, enriched)
}

// GetStandings returns the full standings table.
// @Summary Team standings
// @Tags board
// @Produce json
// @Success 200 {array} match.Standing
// @Router /api/v1/standings [get]
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	const cacheKey = "standings"

	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, cache.TTLStandings, true)
		return
	}

	standings, err := h.deps.Matches.Standings(r.Context())
	if err != nil {
		h.logger.Error("standings fetch failed", "error", err)
		standings = nil
	}
	if standings == nil {
		standings = []match.Standing{}
	}
	h.writeCached(w, r, cacheKey, cache.TTLStandings, standings)
}

// GetReasons returns the pick-reason taxonomy.
// @Summary Reason taxonomy
// @Tags board
// @Produce json
// @Success 200 {array} reason.Reason
// @Router /api/v1/reasons [get]
func (h *Handler) GetReasons(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, reason.All())
}

// lookups fetches the official-game and standings lookup tables for the
// given dates, each degrading to empty on failure.
func (h *Handler) lookups(ctx context.Context, dates []string) (map[match.GameKey]match.OfficialGame, map[string]match.Standing) {
	games, err := h.deps.Matches.OfficialGames(ctx, uniqueDates(dates))
	if err != nil {
		h.logger.Error("official games fetch failed", "error", err)
		games = nil
	}
	standings, err := h.deps.Matches.Standings(ctx)
	if err != nil {
		h.logger.Error("standings fetch failed", "error", err)
		standings = nil
	}
	return match.GamesByKey(games), match.StandingsByTeam(standings)
}

// writeCached marshals v, stores it under key, and writes it with ETag and
// cache headers.
func (h *Handler) writeCached(w http.ResponseWriter, r *http.Request, key string, ttl time.Duration, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODING_ERROR", "Failed to encode response")
		return
	}
	etag := h.cache.Set(key, data, ttl)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, ttl, false)
}

func datesOf(matches []match.Match) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.DateKey())
	}
	return out
}

func uniqueDates(dates []string) []string {
	seen := make(map[string]struct{}, len(dates))
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}
