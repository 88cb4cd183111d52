package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mkarimi/roadboard/internal/domain/model"
	"github.com/mkarimi/roadboard/pkg/metrics"
)

// MemStore is an in-memory Store keyed by display name. Upsert-add runs
// under the write lock, so two concurrent awards to the same name both
// apply.
type MemStore struct {
	mu      sync.RWMutex
	entries map[string]model.LeaderboardEntry // display name -> entry
	seq     int
}

// NewMemStore creates an empty in-memory store.
func NewMemStore(_ context.Context, opts ...Option) *MemStore {
	s := &MemStore{
		entries: make(map[string]model.LeaderboardEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetAll returns a copy of every entry; callers may reorder it freely.
func (s *MemStore) GetAll(_ context.Context) ([]model.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.LeaderboardEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	return out, nil
}

// UpsertAddPoints creates the entry at pointsToAdd or adds the delta to the
// existing total, stamping updatedAt either way.
func (s *MemStore) UpsertAddPoints(_ context.Context, displayName string, pointsToAdd int, updatedAt time.Time) error {
	if pointsToAdd <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDelta, pointsToAdd)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[displayName]
	if !ok {
		s.seq++
		e = model.LeaderboardEntry{
			UserID:      fmt.Sprintf("u%06d", s.seq),
			DisplayName: displayName,
		}
	}
	e.UserPoints += pointsToAdd
	e.UpdatedAtUTC = updatedAt
	s.entries[displayName] = e

	metrics.UpdateLeaderboardSize(len(s.entries))
	return nil
}

// SeedIfEmpty inserts entries only into a fresh store. Entries without a
// UserID get one assigned.
func (s *MemStore) SeedIfEmpty(_ context.Context, entries []model.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) > 0 {
		return nil
	}
	for _, e := range entries {
		s.seq++
		if e.UserID == "" {
			e.UserID = fmt.Sprintf("u%06d", s.seq)
		}
		s.entries[e.DisplayName] = e
	}

	metrics.UpdateLeaderboardSize(len(s.entries))
	return nil
}

// Count returns the number of tracked entries.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
