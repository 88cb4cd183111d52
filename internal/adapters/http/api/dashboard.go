// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
)

// DashboardDependencies defines the interface for dashboard aggregation.
type DashboardDependencies interface {
	DashboardSummary(ctx context.Context) (Summary, error)
}

// DashboardHandler handles dashboard requests.
type DashboardHandler struct {
	deps DashboardDependencies
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(deps DashboardDependencies) *DashboardHandler {
	return &DashboardHandler{deps: deps}
}

// HandleSummary handles GET /dashboard/summary requests.
func (h *DashboardHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	const op = "api.dashboard_summary"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	summary, err := h.deps.DashboardSummary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// HandleDashboard handles GET /dashboard requests.
// Returns an HTML page that renders the leaderboard, cameras and reports
// from the JSON endpoints and subscribes to /ws/leaderboard for live awards.
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	// Serve embedded dashboard page
	http.ServeFileFS(w, r, dashboardFS, "dashboard.html")
}
