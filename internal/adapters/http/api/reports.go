// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mkarimi/roadboard/internal/adapters/reports"
)

// ReportDependencies defines the interface for issue report operations.
type ReportDependencies interface {
	LatestReports(ctx context.Context, n int) ([]Report, error)
	SubmitReport(ctx context.Context, description string) (Report, error)
}

// ReportsHandler handles issue report requests.
type ReportsHandler struct {
	deps ReportDependencies
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(deps ReportDependencies) *ReportsHandler {
	return &ReportsHandler{deps: deps}
}

// reportRequest mirrors the OpenAPI schema for POST /reports.
type reportRequest struct {
	Description string `json:"description"`
}

// HandleSubmitReport handles POST /reports requests.
func (h *ReportsHandler) HandleSubmitReport(w http.ResponseWriter, r *http.Request) {
	const op = "api.submit_report"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	report, err := h.deps.SubmitReport(r.Context(), req.Description)
	if err != nil {
		if errors.Is(err, reports.ErrEmptyDescription) {
			writeError(w, http.StatusBadRequest, "empty_description", WrapKind(op, ErrBadRequest, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusCreated, report)
}

// HandleLatestReports handles GET /reports/latest?n=N requests.
func (h *ReportsHandler) HandleLatestReports(w http.ResponseWriter, r *http.Request) {
	const op = "api.latest_reports"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	n := 0
	if nStr := r.URL.Query().Get("n"); nStr != "" {
		parsed, err := strconv.Atoi(nStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		n = parsed
	}
	list, err := h.deps.LatestReports(r.Context(), n)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	if list == nil {
		list = []Report{}
	}
	writeJSON(w, http.StatusOK, list)
}
