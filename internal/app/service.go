// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/mkarimi/roadboard/internal/adapters/cameras"
	"github.com/mkarimi/roadboard/internal/adapters/reports"
	repository "github.com/mkarimi/roadboard/internal/adapters/repository"
	"github.com/mkarimi/roadboard/internal/domain/model"
	"github.com/mkarimi/roadboard/internal/domain/ranking"
	"github.com/mkarimi/roadboard/internal/realtime"
	"github.com/mkarimi/roadboard/pkg/cache"
	"github.com/mkarimi/roadboard/pkg/logger"
)

const defaultLatestReports = 20

// Service implements the API dependencies for the dashboard.
type Service struct {
	mu sync.RWMutex

	// Core components
	leaderboard repository.Store
	engine      *ranking.Engine
	cameras     *cameras.Gateway
	reports     reports.Store
	hub         *realtime.Hub

	// Configuration
	storeBackend    string
	redisAddr       string
	cameraBaseURL   string
	cameraCacheTTL  time.Duration
	cameraHTTPLimit time.Duration
	seedDemoData    bool

	// State
	started   bool
	startedAt time.Time

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithStoreBackend selects the leaderboard store backend (memory or redis).
func WithStoreBackend(backend string) Option {
	return func(s *Service) {
		if backend != "" {
			s.storeBackend = strings.ToLower(backend)
		}
	}
}

// WithRedisAddr sets the Redis address used by the redis backend.
func WithRedisAddr(addr string) Option {
	return func(s *Service) {
		if addr != "" {
			s.redisAddr = addr
		}
	}
}

// WithStore injects a pre-built leaderboard store, bypassing backend
// selection. Mostly useful for tests.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.leaderboard = store
		}
	}
}

// WithCameraBaseURL sets the base address of the external camera API.
func WithCameraBaseURL(base string) Option {
	return func(s *Service) {
		if base != "" {
			s.cameraBaseURL = base
		}
	}
}

// WithCameraCacheTTL bounds how long fetched camera data stays fresh.
func WithCameraCacheTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.cameraCacheTTL = ttl
		}
	}
}

// WithCameraHTTPTimeout bounds each outbound camera API call.
func WithCameraHTTPTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.cameraHTTPLimit = timeout
		}
	}
}

// WithCameraGateway injects a pre-built camera gateway. Mostly useful
// for tests.
func WithCameraGateway(gw *cameras.Gateway) Option {
	return func(s *Service) {
		if gw != nil {
			s.cameras = gw
		}
	}
}

// WithHub sets the realtime hub awards are broadcast to.
func WithHub(hub *realtime.Hub) Option {
	return func(s *Service) {
		if hub != nil {
			s.hub = hub
		}
	}
}

// WithSeedDemoData seeds a handful of leaderboard entries on first start.
func WithSeedDemoData(seed bool) Option {
	return func(s *Service) {
		s.seedDemoData = seed
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		storeBackend:    repositoryBackendMemory,
		redisAddr:       "localhost:6379",
		cameraCacheTTL:  5 * time.Minute,
		cameraHTTPLimit: 10 * time.Second,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

const (
	repositoryBackendMemory = "memory"
	repositoryBackendRedis  = "redis"
)

// demoEntries seed the leaderboard so the dashboard is not empty on a
// fresh install.
func demoEntries(now time.Time) []model.LeaderboardEntry {
	names := []string{"ada", "grace", "linus", "edsger", "barbara"}
	points := []int{120, 95, 80, 60, 45}
	entries := make([]model.LeaderboardEntry, len(names))
	for i, name := range names {
		entries[i] = model.LeaderboardEntry{
			DisplayName:  name,
			UserPoints:   points[i],
			UpdatedAtUTC: now,
		}
	}
	return entries
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting dashboard service...")

	if s.leaderboard == nil {
		switch s.storeBackend {
		case repositoryBackendRedis:
			store, err := repository.NewRedisStore(ctx, repository.WithRedisAddr(s.redisAddr))
			if err != nil {
				return err
			}
			s.leaderboard = store
			s.logger.Info(ctx, "using redis store", logger.String("addr", s.redisAddr))
		default:
			s.leaderboard = repository.NewMemStore(ctx)
			s.logger.Info(ctx, "using in-memory store")
		}
	}

	s.engine = ranking.NewEngine(s.leaderboard)

	if s.cameras == nil {
		s.cameras = cameras.NewGateway(
			cache.New[string, []model.RoadCamera](),
			cameras.WithBaseURL(s.cameraBaseURL),
			cameras.WithCacheTTL(s.cameraCacheTTL),
			cameras.WithHTTPClient(&http.Client{Timeout: s.cameraHTTPLimit}),
			cameras.WithLogger(s.logger),
		)
	}

	if s.reports == nil {
		s.reports = reports.NewMemStore(ctx)
	}

	if s.hub == nil {
		s.hub = realtime.NewHub()
	}

	if s.seedDemoData {
		if err := s.leaderboard.SeedIfEmpty(ctx, demoEntries(time.Now().UTC())); err != nil {
			s.logger.Warn(ctx, "seeding demo data failed", logger.Error(err))
		}
	}

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "dashboard service started",
		logger.String("storeBackend", s.storeBackend),
		logger.Duration("cameraCacheTTL", s.cameraCacheTTL),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping dashboard service...")

	if s.leaderboard != nil {
		if closer, ok := s.leaderboard.(interface{ Close() error }); ok {
			_ = closer.Close()
		}
	}

	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// Hub exposes the realtime hub for the streaming handler.
func (s *Service) Hub() *realtime.Hub {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hub
}

// Top returns the top N leaderboard entries.
func (s *Service) Top(ctx context.Context, n int) ([]model.LeaderboardEntry, error) {
	return s.engine.Top(ctx, n)
}

// AddPoints validates and applies a point award, then broadcasts it to
// live subscribers. Validation errors pass through untouched so the API
// layer can surface them.
func (s *Service) AddPoints(ctx context.Context, displayName string, points int) error {
	if err := s.engine.AddPoints(ctx, displayName, points); err != nil {
		return err
	}
	s.hub.Broadcast(ctx, realtime.Event{
		Type:        realtime.EventPointsAwarded,
		DisplayName: strings.TrimSpace(displayName),
		Points:      points,
		AwardedAt:   time.Now().UTC(),
	})
	return nil
}

// Cameras returns the cached view of road cameras. Never fails; an
// unreachable upstream yields an empty slice.
func (s *Service) Cameras(ctx context.Context) []model.RoadCamera {
	return s.cameras.GetAll(ctx)
}

// CameraByID returns a single camera from the cached view.
func (s *Service) CameraByID(ctx context.Context, id string) (model.RoadCamera, bool) {
	return s.cameras.GetByID(ctx, id)
}

// LatestReports returns the newest issue reports, newest first.
func (s *Service) LatestReports(ctx context.Context, n int) ([]model.Report, error) {
	list, err := s.reports.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = defaultLatestReports
	}
	if n < len(list) {
		list = list[:n]
	}
	return list, nil
}

// SubmitReport stores a new issue report.
func (s *Service) SubmitReport(ctx context.Context, description string) (model.Report, error) {
	return s.reports.Add(ctx, description)
}

// DashboardSummary aggregates the state shown on the dashboard.
func (s *Service) DashboardSummary(ctx context.Context) (model.DashboardSummary, error) {
	top, err := s.engine.Top(ctx, ranking.DefaultTopN)
	if err != nil {
		return model.DashboardSummary{}, err
	}
	return model.DashboardSummary{
		TotalPlayers:  s.leaderboard.Count(ctx),
		TopEntries:    top,
		CamerasCached: len(s.cameras.GetAll(ctx)),
		OpenReports:   s.reports.CountOpen(ctx),
		GeneratedAt:   time.Now().UTC(),
	}, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":      s.started,
		"storeBackend": s.storeBackend,
	}

	if s.started {
		stats["uptimeSeconds"] = int(time.Since(s.startedAt).Seconds())
		stats["totalPlayers"] = s.leaderboard.Count(ctx)
		stats["openReports"] = s.reports.CountOpen(ctx)
	}

	return stats
}
