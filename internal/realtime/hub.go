// Package realtime fans leaderboard award events out to live subscribers.
package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/mkarimi/roadboard/pkg/metrics"
)

// Event describes a leaderboard change pushed to subscribers.
type Event struct {
	Type        string    `json:"type"`
	DisplayName string    `json:"display_name"`
	Points      int       `json:"points"`
	AwardedAt   time.Time `json:"awarded_at"`
}

// EventPointsAwarded is the only event type emitted today.
const EventPointsAwarded = "points_awarded"

// Hub is a simple pub/sub for award events. Slow subscribers drop events
// instead of blocking the broadcaster.
type Hub struct {
	mu   sync.RWMutex
	subs map[int]chan Event
	next int
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Event)}
}

// Subscribe registers a new subscriber with the given channel buffer.
func (h *Hub) Subscribe(buffer int) (int, <-chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.next++
	id := h.next
	ch := make(chan Event, buffer)
	h.subs[id] = ch

	metrics.UpdateRealtimeSubscribers(len(h.subs))
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *Hub) Unsubscribe(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
	}
	metrics.UpdateRealtimeSubscribers(len(h.subs))
}

// Broadcast delivers ev to every subscriber that has room.
func (h *Hub) Broadcast(_ context.Context, ev Event) {
	h.mu.RLock()
	// Copy so the lock is not held during sends.
	receivers := make([]chan Event, 0, len(h.subs))
	for _, ch := range h.subs {
		receivers = append(receivers, ch)
	}
	h.mu.RUnlock()

	for _, ch := range receivers {
		select {
		case ch <- ev:
		default: // drop if full
		}
	}
}

// MarshalJSON encodes an event for the websocket wire.
func MarshalJSON(ev Event) []byte {
	b, _ := json.Marshal(ev)
	return b
}
