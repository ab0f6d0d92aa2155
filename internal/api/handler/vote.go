package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nbaiagent/agent-data/internal/api/respond"
	"github.com/nbaiagent/agent-data/internal/reason"
)

// voteRequest is the counter-prediction payload.
type voteRequest struct {
	MatchID    int64  `json:"match_id"`
	Team       string `json:"team"`
	Reason     string `json:"reason"`
	Confidence int    `json:"confidence"`
	PIN        string `json:"pin"`
}

// PostVote records the admin's counter-prediction on a match.
// @Summary Cast a vote
// @Description Records the admin's predicted winner, reason code and confidence on one match. Gated by the shared admin PIN.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body voteRequest true "Vote payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 401 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /api/v1/vote [post]
func (h *Handler) PostVote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
		return
	}

	if !h.authorize(w, req.PIN) {
		return
	}

	if req.MatchID == 0 {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_MATCH_ID", "match_id is required")
		return
	}
	if req.Team == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_TEAM", "team is required")
		return
	}
	if req.Reason != "" && !reason.Valid(req.Reason) {
		respond.WriteError(w, http.StatusBadRequest, "UNKNOWN_REASON", "reason is not part of the taxonomy")
		return
	}
	if req.Confidence < 1 || req.Confidence > 3 {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_CONFIDENCE", "confidence must be 1, 2 or 3")
		return
	}

	if err := h.deps.Matches.RecordVote(r.Context(), req.MatchID, req.Team, req.Reason, req.Confidence); err != nil {
		h.logger.Error("vote update failed", "match_id", req.MatchID, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "VOTE_FAILED", "Failed to record vote")
		return
	}

	// The board and dashboard both render the vote; drop their cached views.
	h.cache.Invalidate("board")
	h.cache.Invalidate("dashboard")

	h.logger.Info("vote recorded", "match_id", req.MatchID, "team", req.Team, "reason", req.Reason)
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{"success": true})
}

// authorize enforces the shared-PIN gate. A missing server-side PIN is a
// configuration error, not an open door.
func (h *Handler) authorize(w http.ResponseWriter, pin string) bool {
	if h.cfg.AdminPIN == "" {
		h.logger.Error("ADMIN_PIN is not configured; rejecting write")
		respond.WriteError(w, http.StatusInternalServerError, "CONFIG_ERROR", "Server configuration error")
		return false
	}
	if pin != h.cfg.AdminPIN {
		respond.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid admin PIN")
		return false
	}
	return true
}
