// Package reports stores user-submitted infrastructure issue reports.
package reports

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mkarimi/roadboard/internal/domain/model"
	"github.com/mkarimi/roadboard/pkg/metrics"
)

// Store provides access to issue reports.
type Store interface {
	// Add creates a new open report and returns it.
	Add(ctx context.Context, description string) (model.Report, error)

	// GetByID returns the report with the given id.
	// Returns ErrNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (model.Report, error)

	// Latest returns all reports, newest first.
	Latest(ctx context.Context) ([]model.Report, error)

	// CountOpen returns the number of reports still open.
	CountOpen(ctx context.Context) int
}

// MemStore is an in-memory report store.
type MemStore struct {
	mu      sync.RWMutex
	reports map[string]model.Report
	now     func() time.Time
}

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithClock replaces the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *MemStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemStore creates an empty report store.
func NewMemStore(_ context.Context, opts ...Option) *MemStore {
	s := &MemStore{
		reports: make(map[string]model.Report),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add creates a new open report.
func (s *MemStore) Add(_ context.Context, description string) (model.Report, error) {
	desc := strings.TrimSpace(description)
	if desc == "" {
		return model.Report{}, ErrEmptyDescription
	}

	r := model.Report{
		ID:          uuid.NewString(),
		Description: desc,
		Status:      model.ReportStatusOpen,
		CreatedAt:   s.now().UTC(),
	}

	s.mu.Lock()
	s.reports[r.ID] = r
	s.mu.Unlock()

	metrics.RecordReportSubmitted()
	return r, nil
}

// GetByID returns the report with the given id.
func (s *MemStore) GetByID(_ context.Context, id string) (model.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reports[id]
	if !ok {
		return model.Report{}, ErrNotFound
	}
	return r, nil
}

// Latest returns all reports ordered newest first; ties break on id so the
// order stays stable.
func (s *MemStore) Latest(_ context.Context) ([]model.Report, error) {
	s.mu.RLock()
	out := make([]model.Report, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, r)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// CountOpen returns the number of open reports.
func (s *MemStore) CountOpen(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, r := range s.reports {
		if r.Status == model.ReportStatusOpen {
			n++
		}
	}
	return n
}
