// file: internal/cache/cache.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"badgehub/internal/config"
)

// Cache is the provider-agnostic cache contract. Values are JSON
// encoded by the providers.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// Increment atomically adds delta to a counter key, creating it
	// with the given ttl when absent. Returns the new value.
	Increment(ctx context.Context, key string, delta int64, ttl time.Duration) (int64, error)

	Health(ctx context.Context) error
	Close() error
}

// New creates a cache for the configured provider.
func New(cfg *config.CacheConfig, logger *zap.Logger) (Cache, error) {
	switch cfg.Provider {
	case "memory":
		return NewMemoryCache(cfg.MaxEntries, logger), nil
	case "redis":
		return NewRedisCache(cfg.RedisURL, logger)
	default:
		return nil, fmt.Errorf("unknown cache provider %q", cfg.Provider)
	}
}

// ===============================
// MEMORY PROVIDER
// ===============================

type memoryEntry struct {
	data      []byte
	counter   int64
	isCounter bool
	expiresAt time.Time
}

func (e *memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

type memoryCache struct {
	mu         sync.Mutex
	entries    map[string]*memoryEntry
	maxEntries int
	logger     *zap.Logger
	stop       chan struct{}
	stopOnce   sync.Once
}

// NewMemoryCache creates an in-process cache with periodic expiry sweeps.
func NewMemoryCache(maxEntries int, logger *zap.Logger) Cache {
	if maxEntries <= 0 {
		maxEntries = 10000
	}
	c := &memoryCache{
		entries:    make(map[string]*memoryEntry),
		maxEntries: maxEntries,
		logger:     logger,
		stop:       make(chan struct{}),
	}
	go c.sweep()
	return c
}

func (c *memoryCache) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for key, entry := range c.entries {
				if entry.expired(now) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}

func (c *memoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok && entry.expired(time.Now()) {
		delete(c.entries, key)
		ok = false
	}
	var data []byte
	if ok && !entry.isCounter {
		data = entry.data
	} else {
		ok = false
	}
	c.mu.Unlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached value: %w", err)
	}
	return true, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for cache: %w", err)
	}

	entry := &memoryEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}
	c.entries[key] = entry
	return nil
}

// evictLocked removes the entry closest to expiry, or an arbitrary one
// when nothing carries a TTL.
func (c *memoryCache) evictLocked() {
	var victim string
	var soonest time.Time
	for key, entry := range c.entries {
		if victim == "" || (!entry.expiresAt.IsZero() && (soonest.IsZero() || entry.expiresAt.Before(soonest))) {
			victim = key
			soonest = entry.expiresAt
		}
	}
	if victim != "" {
		delete(c.entries, victim)
	}
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *memoryCache) Increment(ctx context.Context, key string, delta int64, ttl time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if ok && entry.expired(time.Now()) {
		ok = false
	}
	if !ok || !entry.isCounter {
		entry = &memoryEntry{isCounter: true}
		if ttl > 0 {
			entry.expiresAt = time.Now().Add(ttl)
		}
		c.entries[key] = entry
	}
	entry.counter += delta
	return entry.counter, nil
}

func (c *memoryCache) Health(ctx context.Context) error { return nil }

func (c *memoryCache) Close() error {
	c.stopOnce.Do(func() { close(c.stop) })
	return nil
}
