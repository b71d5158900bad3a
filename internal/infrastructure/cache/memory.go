package cache

import (
	"context"
	"sync"
	"time"

	"github.com/nutrilens/backend/internal/domain"
)

// cacheItem is a single stored record with its expiration
type cacheItem struct {
	value      *domain.ResolvedAdditive
	expiration time.Time
}

// MemoryCache is a thread-safe in-memory additive cache with TTL support.
// It is an explicitly constructed object, not module-level state, so tests
// can create and discard instances freely.
type MemoryCache struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
	stop  chan struct{}
}

// NewMemoryCache creates a memory cache and starts its cleanup janitor.
func NewMemoryCache() *MemoryCache {
	c := &MemoryCache{
		data: make(map[string]cacheItem),
		stop: make(chan struct{}),
	}

	go c.cleanupExpired()

	return c
}

// Get retrieves a cached record. Expired entries report a miss.
func (c *MemoryCache) Get(ctx context.Context, key string) (*domain.ResolvedAdditive, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return nil, domain.ErrCacheMiss
	}

	if time.Now().After(item.expiration) {
		return nil, domain.ErrCacheMiss
	}

	return item.value, nil
}

// Set stores a record with the given TTL.
func (c *MemoryCache) Set(ctx context.Context, key string, value *domain.ResolvedAdditive, ttl time.Duration) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	// Store a copy so later caller mutations cannot leak into the cache
	stored := *value
	c.data[key] = cacheItem{
		value:      &stored,
		expiration: time.Now().Add(ttl),
	}

	return nil
}

// Delete removes a record from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// Clear removes all records.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[string]cacheItem)
	return nil
}

// Size returns the current number of entries (for debugging/monitoring).
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// Close stops the cleanup janitor.
func (c *MemoryCache) Close() {
	close(c.stop)
}

// cleanupExpired removes expired entries every 10 minutes until Close.
func (c *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.mutex.Lock()
			now := time.Now()
			for key, item := range c.data {
				if now.After(item.expiration) {
					delete(c.data, key)
				}
			}
			c.mutex.Unlock()
		}
	}
}
