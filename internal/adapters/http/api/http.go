// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mkarimi/roadboard/internal/domain/model"
	"github.com/mkarimi/roadboard/internal/realtime"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	LeaderboardDependencies
	CameraDependencies
	ReportDependencies
	DashboardDependencies
}

// Read shapes returned by the handlers.
type (
	Entry   = model.LeaderboardEntry
	Camera  = model.RoadCamera
	Report  = model.Report
	Summary = model.DashboardSummary
)

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	leaderboardHandler *LeaderboardHandler
	camerasHandler     *CamerasHandler
	reportsHandler     *ReportsHandler
	dashboardHandler   *DashboardHandler
	streamHandler      *StreamHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, hub *realtime.Hub, maxTopLimit int) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		leaderboardHandler: NewLeaderboardHandler(deps, maxTopLimit),
		camerasHandler:     NewCamerasHandler(deps),
		reportsHandler:     NewReportsHandler(deps),
		dashboardHandler:   NewDashboardHandler(deps),
		streamHandler:      NewStreamHandler(hub),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/leaderboard/add", MetricsMiddleware(s.leaderboardHandler.HandleAddPoints, "leaderboard_add"))
	mux.HandleFunc("/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("/cameras/", MetricsMiddleware(s.camerasHandler.HandleGetCamera, "camera"))
	mux.HandleFunc("/cameras", MetricsMiddleware(s.camerasHandler.HandleGetCameras, "cameras"))
	mux.HandleFunc("/reports/latest", MetricsMiddleware(s.reportsHandler.HandleLatestReports, "reports_latest"))
	mux.HandleFunc("/reports", MetricsMiddleware(s.reportsHandler.HandleSubmitReport, "reports"))
	mux.HandleFunc("/dashboard/summary", MetricsMiddleware(s.dashboardHandler.HandleSummary, "dashboard_summary"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/ws/leaderboard", s.streamHandler.HandleStream)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
