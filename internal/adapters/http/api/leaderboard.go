// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/mkarimi/roadboard/internal/domain/ranking"
)

// LeaderboardDependencies defines the interface for leaderboard operations.
type LeaderboardDependencies interface {
	Top(ctx context.Context, n int) ([]Entry, error)
	AddPoints(ctx context.Context, displayName string, points int) error
}

// LeaderboardHandler handles leaderboard requests.
type LeaderboardHandler struct {
	deps     LeaderboardDependencies
	maxLimit int
}

// NewLeaderboardHandler creates a new leaderboard handler.
func NewLeaderboardHandler(deps LeaderboardDependencies, maxLimit int) *LeaderboardHandler {
	return &LeaderboardHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// HandleGetLeaderboard handles GET /leaderboard?top=N requests.
// The top parameter is optional; when absent or non-positive the ranking
// default applies. Non-integer or oversized values are rejected.
func (h *LeaderboardHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_leaderboard"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	n := 0
	if topStr := r.URL.Query().Get("top"); topStr != "" {
		parsed, err := strconv.Atoi(topStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if parsed > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
			return
		}
		n = parsed
	}
	entries, err := h.deps.Top(r.Context(), n)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// addPointsFailure echoes the submitted form values alongside the
// validation message so the dashboard can re-render the form.
type addPointsFailure struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	DisplayName string `json:"display_name"`
	Points      string `json:"points"`
}

// HandleAddPoints handles POST /leaderboard/add form submissions.
// On success the client is redirected back to the dashboard; on a
// validation failure the submitted values are echoed with status 400.
func (h *LeaderboardHandler) HandleAddPoints(w http.ResponseWriter, r *http.Request) {
	const op = "api.add_points"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	displayName := r.PostFormValue("DisplayName")
	pointsStr := r.PostFormValue("Points")

	points, err := strconv.Atoi(pointsStr)
	if err != nil {
		// Let the ranking engine produce the canonical validation error;
		// a non-numeric value behaves like a non-positive one.
		points = 0
	}

	if err := h.deps.AddPoints(r.Context(), displayName, points); err != nil {
		if v := ranking.AsValidation(err); v != nil {
			writeJSON(w, http.StatusBadRequest, addPointsFailure{
				Code:        string(v.Kind),
				Message:     v.Message,
				DisplayName: displayName,
				Points:      pointsStr,
			})
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
