// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"
)

// CameraDependencies defines the interface for camera read operations.
type CameraDependencies interface {
	Cameras(ctx context.Context) []Camera
	CameraByID(ctx context.Context, id string) (Camera, bool)
}

// CamerasHandler handles road camera requests.
type CamerasHandler struct {
	deps CameraDependencies
}

// NewCamerasHandler creates a new cameras handler.
func NewCamerasHandler(deps CameraDependencies) *CamerasHandler {
	return &CamerasHandler{deps: deps}
}

// HandleGetCameras handles GET /cameras requests. The camera gateway is
// fail-soft, so this endpoint always answers 200 with a (possibly empty)
// array.
func (h *CamerasHandler) HandleGetCameras(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	cameras := h.deps.Cameras(r.Context())
	if cameras == nil {
		cameras = []Camera{}
	}
	writeJSON(w, http.StatusOK, cameras)
}

// HandleGetCamera handles GET /cameras/{id} requests.
func (h *CamerasHandler) HandleGetCamera(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_camera"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /cameras/
	id := strings.TrimPrefix(r.URL.Path, "/cameras/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	camera, ok := h.deps.CameraByID(r.Context(), id)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", NewKind(op, ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, camera)
}
