// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"time"

	gorillaws "github.com/gorilla/websocket"

	"github.com/mkarimi/roadboard/internal/realtime"
)

const streamWriteTimeout = 5 * time.Second

// StreamHandler upgrades to WebSocket and streams award events from the hub.
type StreamHandler struct {
	hub      *realtime.Hub
	upgrader gorillaws.Upgrader
}

// NewStreamHandler creates a new stream handler bound to hub.
func NewStreamHandler(hub *realtime.Hub) *StreamHandler {
	return &StreamHandler{
		hub: hub,
		upgrader: gorillaws.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleStream handles GET /ws/leaderboard requests. Each connection gets
// its own buffered subscription; slow clients drop events rather than
// blocking award processing.
func (h *StreamHandler) HandleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	id, ch := h.hub.Subscribe(256)
	defer h.hub.Unsubscribe(id)

	for ev := range ch {
		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
		if err := conn.WriteMessage(gorillaws.TextMessage, realtime.MarshalJSON(ev)); err != nil {
			return
		}
	}
}
