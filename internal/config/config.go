// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers an optional YAML file and env vars on top.
// - External errors are wrapped via this package's sentinel kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// StoreBackend selects the leaderboard store: memory or redis.
	StoreBackend string `koanf:"store_backend"`

	// RedisAddr is the Redis server address when store_backend is redis.
	RedisAddr string `koanf:"redis_addr"`

	// CameraAPIBase is the base address of the external camera API.
	CameraAPIBase string `koanf:"camera_api_base"`

	// CameraCacheTTLMinutes bounds how long fetched camera data stays fresh.
	CameraCacheTTLMinutes int `koanf:"camera_cache_ttl_minutes"`

	// CameraHTTPTimeoutSeconds bounds each outbound camera API call.
	CameraHTTPTimeoutSeconds int `koanf:"camera_http_timeout_seconds"`

	// MaxTopLimit caps GET /leaderboard?top.
	MaxTopLimit int `koanf:"max_top_limit"`

	// SeedDemoData seeds a handful of leaderboard entries on first start.
	SeedDemoData bool `koanf:"seed_demo_data"`
}

// Store backend names accepted in StoreBackend.
const (
	StoreBackendMemory = "memory"
	StoreBackendRedis  = "redis"
)

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:                 "info",
		Addr:                     ":8080",
		StoreBackend:             StoreBackendMemory,
		RedisAddr:                "localhost:6379",
		CameraAPIBase:            "https://tripcheck.com",
		CameraCacheTTLMinutes:    5,
		CameraHTTPTimeoutSeconds: 10,
		MaxTopLimit:              100,
		SeedDemoData:             false,
	}
}
