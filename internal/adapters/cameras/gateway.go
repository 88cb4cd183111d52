// Package cameras fetches traffic camera data from the upstream roadway API
// and serves it through a TTL cache. Upstream failures degrade to an empty
// result; callers never see an error from this package.
package cameras

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mkarimi/roadboard/internal/domain/model"
	"github.com/mkarimi/roadboard/pkg/cache"
	"github.com/mkarimi/roadboard/pkg/logger"
	"github.com/mkarimi/roadboard/pkg/metrics"
)

// Default gateway configuration constants.
const (
	defaultBaseURL     = "https://api.tripcheck.example"
	defaultCacheTTL    = 5 * time.Minute
	defaultHTTPTimeout = 10 * time.Second

	camerasPath = "/Roadway/api/v1/cameras"
)

// cameraCacheKey is the single shared cache slot for the camera list. One
// key for the whole process; per-instance keys would defeat cross-request
// caching.
const cameraCacheKey = "cameras:all"

// Gateway reads cameras cache-aside from the upstream API.
type Gateway struct {
	client  *http.Client
	cache   *cache.Cache[string, []model.RoadCamera]
	baseURL string
	ttl     time.Duration
	log     logger.Logger
}

// Option applies a configuration option to the Gateway.
type Option func(*Gateway)

// WithBaseURL sets the upstream API base address.
func WithBaseURL(base string) Option {
	return func(g *Gateway) {
		if base != "" {
			g.baseURL = base
		}
	}
}

// WithCacheTTL sets how long a fetched camera list stays fresh.
func WithCacheTTL(ttl time.Duration) Option {
	return func(g *Gateway) {
		if ttl > 0 {
			g.ttl = ttl
		}
	}
}

// WithHTTPClient injects the outbound client. Its timeout bounds every
// upstream call.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Gateway) {
		if client != nil {
			g.client = client
		}
	}
}

// WithLogger sets a custom logger for the gateway.
func WithLogger(log logger.Logger) Option {
	return func(g *Gateway) {
		if log != nil {
			g.log = log
		}
	}
}

// NewGateway creates a gateway around the given cache. The cache is shared
// process state owned by the caller; the gateway is its only writer.
func NewGateway(c *cache.Cache[string, []model.RoadCamera], opts ...Option) *Gateway {
	g := &Gateway{
		client:  &http.Client{Timeout: defaultHTTPTimeout},
		cache:   c,
		baseURL: defaultBaseURL,
		ttl:     defaultCacheTTL,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = logger.Get()
	}
	return g
}

// GetAll returns the camera list, serving from cache when fresh. On any
// upstream failure it returns an empty list and leaves the cache alone, so
// the next call retries immediately.
func (g *Gateway) GetAll(ctx context.Context) []model.RoadCamera {
	if cached, ok := g.cache.Get(cameraCacheKey); ok {
		metrics.RecordCameraFetch(metrics.CameraFetchHit)
		return cached
	}

	mapped, err := g.fetch(ctx)
	if err != nil {
		switch {
		case isUpstreamStatus(err):
			metrics.RecordCameraFetch(metrics.CameraFetchUpstreamStatus)
			g.log.Warn(ctx, "camera API returned bad status", logger.Error(err))
		default:
			metrics.RecordCameraFetch(metrics.CameraFetchUpstreamError)
			g.log.Error(ctx, "camera fetch failed", logger.Error(err))
		}
		return []model.RoadCamera{}
	}

	g.cache.Set(cameraCacheKey, mapped, g.ttl)
	metrics.RecordCameraFetch(metrics.CameraFetchRefresh)
	metrics.UpdateCamerasCached(len(mapped))
	return mapped
}

// GetByID returns the camera whose id matches, out of the same set GetAll
// serves. There is no per-id cache entry.
func (g *Gateway) GetByID(ctx context.Context, id string) (model.RoadCamera, bool) {
	for _, cam := range g.GetAll(ctx) {
		if cam.CameraID == id {
			return cam, true
		}
	}
	return model.RoadCamera{}, false
}

// fetch performs one outbound call and maps the payload. Failure reasons
// stay distinguishable here (status vs transport vs decode) even though
// GetAll collapses them all to an empty result.
func (g *Gateway) fetch(ctx context.Context) ([]model.RoadCamera, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+camerasPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build camera request: %w", err)
	}

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()
	metrics.RecordCameraUpstreamLatency(float64(time.Since(start).Milliseconds()))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	var records []cameraRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamDecode, err)
	}

	mapped := make([]model.RoadCamera, len(records))
	for i, rec := range records {
		mapped[i] = rec.toModel()
	}
	return mapped, nil
}
