// Package repository defines the leaderboard store interface and errors.
package repository

import (
	"github.com/redis/go-redis/v9"

	"github.com/mkarimi/roadboard/internal/domain/model"
)

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithInitialCapacity pre-sizes the entry map.
func WithInitialCapacity(n int) Option {
	return func(s *MemStore) {
		if n > 0 {
			s.entries = make(map[string]model.LeaderboardEntry, n)
		}
	}
}

// RedisOption applies a configuration option to the RedisStore.
type RedisOption func(*RedisStore)

// WithRedisAddr sets the Redis server address.
func WithRedisAddr(addr string) RedisOption {
	return func(s *RedisStore) {
		if addr != "" {
			s.addr = addr
		}
	}
}

// WithRedisClient injects an existing client. Tests use this with miniredis.
func WithRedisClient(client *redis.Client) RedisOption {
	return func(s *RedisStore) {
		if client != nil {
			s.client = client
		}
	}
}

// WithKeyPrefix overrides the key prefix for entry hashes.
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.keyPrefix = prefix
		}
	}
}
