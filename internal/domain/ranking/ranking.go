// Package ranking turns unordered leaderboard entries into a deterministic
// top-N view and validates point awards before they reach the store.
package ranking

import (
	"context"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mkarimi/roadboard/internal/adapters/repository"
	"github.com/mkarimi/roadboard/internal/domain/model"
	"github.com/mkarimi/roadboard/pkg/metrics"
)

// Ranking rule constants.
const (
	// DefaultTopN is used when a caller asks for a non-positive count.
	DefaultTopN = 25

	// MaxDisplayNameLen bounds the trimmed display name.
	MaxDisplayNameLen = 64
)

// TopN returns the first n entries of all, ordered by points descending,
// then user id ascending, then update time descending. The input is never
// mutated; the result is an independent slice. Same entry set in, same
// output out, regardless of input order.
func TopN(all []model.LeaderboardEntry, n int) []model.LeaderboardEntry {
	if n <= 0 {
		n = DefaultTopN
	}

	ordered := make([]model.LeaderboardEntry, len(all))
	copy(ordered, all)

	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.UserPoints != b.UserPoints {
			return a.UserPoints > b.UserPoints
		}
		if a.UserID != b.UserID {
			return a.UserID < b.UserID
		}
		// Only reachable when user ids collide in the input; keeps the
		// order total even then.
		return a.UpdatedAtUTC.After(b.UpdatedAtUTC)
	})

	if n < len(ordered) {
		ordered = ordered[:n]
	}
	return ordered
}

// Engine coordinates leaderboard reads and point awards against a store.
// It holds no mutable state of its own; reads always hit the store.
type Engine struct {
	store repository.Store
	now   func() time.Time
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithClock replaces the award timestamp source. Tests use this to pin
// updatedAt values.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates an engine backed by store.
func NewEngine(store repository.Store, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Top reads the full entry set from the store and ranks it.
func (e *Engine) Top(ctx context.Context, n int) ([]model.LeaderboardEntry, error) {
	all, err := e.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	metrics.RecordLeaderboardRead()
	return TopN(all, n), nil
}

// AddPoints validates the award and delegates the write to the store.
// Validation short-circuits on the first failure; each failure is a
// distinct ValidationError kind. The engine never reads back the total.
func (e *Engine) AddPoints(ctx context.Context, displayName string, pointsToAdd int) error {
	name := strings.TrimSpace(displayName)

	switch {
	case name == "":
		metrics.RecordValidationFailure(string(KindEmptyName))
		return newValidationError(KindEmptyName, "display name is required")
	case utf8.RuneCountInString(name) > MaxDisplayNameLen:
		metrics.RecordValidationFailure(string(KindNameTooLong))
		return newValidationError(KindNameTooLong, "display name must be 64 characters or fewer")
	case pointsToAdd <= 0:
		metrics.RecordValidationFailure(string(KindNonPositivePoints))
		return newValidationError(KindNonPositivePoints, "points must be greater than zero")
	}

	if err := e.store.UpsertAddPoints(ctx, name, pointsToAdd, e.now().UTC()); err != nil {
		return err
	}
	metrics.RecordAwardApplied()
	return nil
}
