// Package cache provides a minimal in-process TTL cache.
//
// Entries are expired lazily: a Get past the entry's deadline behaves as a
// miss and evicts the entry. The cache is safe for concurrent use and is
// meant to be constructed once and passed to its consumers explicitly.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	val       V
	expiresAt time.Time
}

// Cache is a time-bounded key/value store.
type Cache[K comparable, V any] struct {
	mu   sync.RWMutex
	data map[K]entry[V]
	now  func() time.Time
}

// Option applies a configuration option to the Cache.
type Option[K comparable, V any] func(*Cache[K, V])

// WithClock replaces the time source. Tests use this to step through
// expiry deterministically.
func WithClock[K comparable, V any](now func() time.Time) Option[K, V] {
	return func(c *Cache[K, V]) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates an empty cache.
func New[K comparable, V any](opts ...Option[K, V]) *Cache[K, V] {
	c := &Cache[K, V]{
		data: make(map[K]entry[V]),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value for k if present and not expired. An expired entry
// is treated as absent and removed.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	c.mu.RLock()
	e, ok := c.data[k]
	c.mu.RUnlock()

	if !ok {
		var zero V
		return zero, false
	}
	if !c.now().Before(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have
		// refreshed the entry in the meantime.
		if cur, still := c.data[k]; still && !c.now().Before(cur.expiresAt) {
			delete(c.data, k)
		}
		c.mu.Unlock()
		var zero V
		return zero, false
	}
	return e.val, true
}

// Set stores v under k, overwriting any prior value and its expiry.
func (c *Cache[K, V]) Set(k K, v V, ttl time.Duration) {
	c.mu.Lock()
	c.data[k] = entry[V]{val: v, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
