package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New)
//  2. file (YAML) if ROADBOARD_CONFIG is set
//  3. env (prefix ROADBOARD_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("ROADBOARD_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: ROADBOARD_ADDR, ROADBOARD_MAX_TOP_LIMIT, ...
	// Map keys like ROADBOARD_CAMERA_API_BASE -> camera_api_base to match
	// the koanf tags on the struct.
	envProvider := env.Provider("ROADBOARD_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "roadboard_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.StoreBackend != StoreBackendMemory && c.StoreBackend != StoreBackendRedis:
		return fmt.Errorf("%w: unknown store_backend %q", ErrInvalidConfig, c.StoreBackend)
	case c.CameraAPIBase == "":
		return fmt.Errorf("%w: camera_api_base must not be empty", ErrInvalidConfig)
	case c.CameraCacheTTLMinutes <= 0:
		return fmt.Errorf("%w: camera_cache_ttl_minutes must be positive", ErrInvalidConfig)
	case c.CameraHTTPTimeoutSeconds <= 0:
		return fmt.Errorf("%w: camera_http_timeout_seconds must be positive", ErrInvalidConfig)
	case c.MaxTopLimit <= 0:
		return fmt.Errorf("%w: max_top_limit must be positive", ErrInvalidConfig)
	}
	return nil
}
