// Package repository defines the leaderboard store interface and errors.
package repository

import (
	"context"
	"time"

	"github.com/mkarimi/roadboard/internal/domain/model"
)

// Store provides access to persisted leaderboard entries. Ordering is not a
// store concern; callers receive the full entry set and rank it themselves.
type Store interface {
	// GetAll returns a snapshot of every leaderboard entry. The returned
	// slice is owned by the caller and safe to reorder.
	GetAll(ctx context.Context) ([]model.LeaderboardEntry, error)

	// UpsertAddPoints creates an entry at pointsToAdd for an unseen display
	// name, or adds the delta to the existing total. Concurrent calls for
	// the same name must both apply; implementations guarantee this.
	UpsertAddPoints(ctx context.Context, displayName string, pointsToAdd int, updatedAt time.Time) error

	// SeedIfEmpty inserts the given entries only when the store holds none.
	SeedIfEmpty(ctx context.Context, entries []model.LeaderboardEntry) error

	// Count returns the number of tracked entries.
	Count(ctx context.Context) int
}
