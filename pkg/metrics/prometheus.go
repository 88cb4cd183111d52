// Package metrics provides Prometheus metrics for the roadboard service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager holds all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Leaderboard metrics
	awardsApplied      prometheus.Counter
	validationFailures *prometheus.CounterVec
	leaderboardReads   prometheus.Counter
	leaderboardSize    prometheus.Gauge

	// Camera gateway metrics
	cameraFetches         *prometheus.CounterVec
	cameraUpstreamLatency prometheus.Histogram
	camerasCached         prometheus.Gauge

	// Report metrics
	reportsSubmitted prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Realtime metrics
	realtimeSubscribers prometheus.Gauge

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Camera fetch outcome labels.
const (
	CameraFetchHit            = "hit"
	CameraFetchRefresh        = "refresh"
	CameraFetchUpstreamStatus = "upstream_status"
	CameraFetchUpstreamError  = "upstream_error"
)

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "roadboard",
		subsystem:        "dashboard",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.awardsApplied = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "awards_applied_total",
		Help:      "Total number of point awards applied to the leaderboard",
	})

	m.validationFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "award_validation_failures_total",
			Help:      "Total number of rejected point awards by validation kind",
		},
		[]string{"kind"},
	)

	m.leaderboardReads = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "leaderboard_reads_total",
		Help:      "Total number of leaderboard top-N reads",
	})

	m.leaderboardSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "leaderboard_entries",
		Help:      "Current number of leaderboard entries",
	})

	m.cameraFetches = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "camera_fetches_total",
			Help:      "Camera reads by outcome (hit, refresh, upstream_status, upstream_error)",
		},
		[]string{"outcome"},
	)

	m.cameraUpstreamLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "camera_upstream_latency_milliseconds",
		Help:      "Latency of outbound camera API calls in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.camerasCached = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cameras_cached",
		Help:      "Number of cameras in the last cached upstream snapshot",
	})

	m.reportsSubmitted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reports_submitted_total",
		Help:      "Total number of issue reports submitted",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.realtimeSubscribers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "realtime_subscribers",
		Help:      "Current number of websocket leaderboard subscribers",
	})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_time_milliseconds",
		Help:      "GC pause time in milliseconds",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
}

// RecordAwardApplied increments the applied awards counter.
func RecordAwardApplied() {
	globalManager.awardsApplied.Inc()
}

// RecordValidationFailure increments the validation failure counter for kind.
func RecordValidationFailure(kind string) {
	globalManager.validationFailures.WithLabelValues(kind).Inc()
}

// RecordLeaderboardRead increments the leaderboard read counter.
func RecordLeaderboardRead() {
	globalManager.leaderboardReads.Inc()
}

// UpdateLeaderboardSize sets the current number of leaderboard entries.
func UpdateLeaderboardSize(count int) {
	globalManager.leaderboardSize.Set(float64(count))
}

// RecordCameraFetch records a camera read outcome.
func RecordCameraFetch(outcome string) {
	globalManager.cameraFetches.WithLabelValues(outcome).Inc()
}

// RecordCameraUpstreamLatency records outbound camera API latency.
func RecordCameraUpstreamLatency(latencyMs float64) {
	globalManager.cameraUpstreamLatency.Observe(latencyMs)
}

// UpdateCamerasCached sets the size of the cached camera snapshot.
func UpdateCamerasCached(count int) {
	globalManager.camerasCached.Set(float64(count))
}

// RecordReportSubmitted increments the submitted reports counter.
func RecordReportSubmitted() {
	globalManager.reportsSubmitted.Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// UpdateRealtimeSubscribers sets the current websocket subscriber count.
func UpdateRealtimeSubscribers(count int) {
	globalManager.realtimeSubscribers.Set(float64(count))
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
