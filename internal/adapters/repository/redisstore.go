package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mkarimi/roadboard/internal/domain/model"
	"github.com/mkarimi/roadboard/pkg/metrics"
)

// Default Redis configuration constants.
const (
	defaultRedisAddr    = "localhost:6379"
	defaultKeyPrefix    = "lb:entry:"
	redisConnectTimeout = 5 * time.Second
)

const seqKeySuffix = "lb:seq"

// Timestamp format for the updated_at hash field.
const redisTimeLayout = time.RFC3339Nano

// upsertScript creates the entry hash on first award and applies the delta
// atomically, so concurrent awards to the same name both count.
var upsertScript = redis.NewScript(`
	local key = KEYS[1]
	local seqKey = KEYS[2]
	local name = ARGV[1]
	local delta = tonumber(ARGV[2])
	local ts = ARGV[3]

	if redis.call('EXISTS', key) == 0 then
		local id = redis.call('INCR', seqKey)
		redis.call('HSET', key, 'user_id', string.format('u%06d', id), 'display_name', name)
	end
	redis.call('HINCRBY', key, 'points', delta)
	redis.call('HSET', key, 'updated_at', ts)
	return redis.call('HGET', key, 'points')
`)

// RedisStore is a Store backed by Redis. Each entry lives in its own hash
// (user_id, display_name, points, updated_at) under keyPrefix + name.
type RedisStore struct {
	client    *redis.Client
	addr      string
	keyPrefix string
}

// NewRedisStore creates a store and verifies connectivity unless a client
// was injected.
func NewRedisStore(ctx context.Context, opts ...RedisOption) (*RedisStore, error) {
	s := &RedisStore{
		addr:      defaultRedisAddr,
		keyPrefix: defaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		s.client = redis.NewClient(&redis.Options{Addr: s.addr})

		pingCtx, cancel := context.WithTimeout(ctx, redisConnectTimeout)
		defer cancel()
		if err := s.client.Ping(pingCtx).Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}
	return s, nil
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) entryKey(displayName string) string {
	return s.keyPrefix + displayName
}

func (s *RedisStore) seqKey() string {
	return s.keyPrefix + seqKeySuffix
}

// UpsertAddPoints applies the delta through a Lua script in a single
// round-trip.
func (s *RedisStore) UpsertAddPoints(ctx context.Context, displayName string, pointsToAdd int, updatedAt time.Time) error {
	if pointsToAdd <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDelta, pointsToAdd)
	}

	keys := []string{s.entryKey(displayName), s.seqKey()}
	err := upsertScript.Run(ctx, s.client, keys,
		displayName, pointsToAdd, updatedAt.UTC().Format(redisTimeLayout),
	).Err()
	if err != nil {
		return fmt.Errorf("upsert points for %q: %w", displayName, err)
	}

	metrics.UpdateLeaderboardSize(s.Count(ctx))
	return nil
}

// GetAll scans every entry hash and decodes it.
func (s *RedisStore) GetAll(ctx context.Context) ([]model.LeaderboardEntry, error) {
	var out []model.LeaderboardEntry

	iter := s.client.Scan(ctx, 0, s.keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if key == s.seqKey() {
			continue
		}
		fields, err := s.client.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("read entry %q: %w", key, err)
		}
		if len(fields) == 0 {
			continue
		}
		out = append(out, decodeEntry(fields))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan entries: %w", err)
	}
	return out, nil
}

// SeedIfEmpty writes the entries only when no entry hash exists yet.
func (s *RedisStore) SeedIfEmpty(ctx context.Context, entries []model.LeaderboardEntry) error {
	if s.Count(ctx) > 0 {
		return nil
	}

	pipe := s.client.Pipeline()
	for _, e := range entries {
		id := e.UserID
		if id == "" {
			seq, err := s.client.Incr(ctx, s.seqKey()).Result()
			if err != nil {
				return fmt.Errorf("seed sequence: %w", err)
			}
			id = fmt.Sprintf("u%06d", seq)
		} else {
			pipe.Incr(ctx, s.seqKey())
		}
		pipe.HSet(ctx, s.entryKey(e.DisplayName),
			"user_id", id,
			"display_name", e.DisplayName,
			"points", e.UserPoints,
			"updated_at", e.UpdatedAtUTC.UTC().Format(redisTimeLayout),
		)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("seed entries: %w", err)
	}

	metrics.UpdateLeaderboardSize(s.Count(ctx))
	return nil
}

// Count returns the number of entry hashes. The sequence counter only grows
// on create and nothing deletes entries, so it doubles as the entry count.
func (s *RedisStore) Count(ctx context.Context) int {
	v, err := s.client.Get(ctx, s.seqKey()).Int()
	if err != nil {
		return 0
	}
	return v
}

func decodeEntry(fields map[string]string) model.LeaderboardEntry {
	e := model.LeaderboardEntry{
		UserID:      fields["user_id"],
		DisplayName: fields["display_name"],
	}
	if pts, err := strconv.Atoi(fields["points"]); err == nil {
		e.UserPoints = pts
	}
	if ts, err := time.Parse(redisTimeLayout, fields["updated_at"]); err == nil {
		e.UpdatedAtUTC = ts
	}
	return e
}
