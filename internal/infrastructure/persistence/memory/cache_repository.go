package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/platewise/v1/internal/ports/outbound"
)

// ErrCacheMiss is returned when a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// cacheItem represents a cached item.
type cacheItem struct {
	value     []byte
	expiresAt time.Time
}

// CacheRepository implements the cache port in memory. It is the default
// when Redis is not configured.
type CacheRepository struct {
	mu   sync.RWMutex
	data map[string]cacheItem
}

// NewCacheRepository creates a new in-memory cache repository.
func NewCacheRepository() outbound.CacheRepository {
	repo := &CacheRepository{
		data: make(map[string]cacheItem),
	}
	go repo.cleanup()
	return repo
}

// Get retrieves a value from cache.
func (r *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	item, exists := r.data[key]
	r.mu.RUnlock()

	if !exists || time.Now().After(item.expiresAt) {
		return nil, ErrCacheMiss
	}
	return item.value, nil
}

// Set stores a value in cache with TTL. A zero TTL defaults to 24 hours.
func (r *CacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = cacheItem{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a key from cache.
func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

// Exists checks if a key exists in cache.
func (r *CacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists := r.data[key]
	if !exists || time.Now().After(item.expiresAt) {
		return false, nil
	}
	return true, nil
}

// cleanup periodically drops expired entries.
func (r *CacheRepository) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		r.mu.Lock()
		for key, item := range r.data {
			if now.After(item.expiresAt) {
				delete(r.data, key)
			}
		}
		r.mu.Unlock()
	}
}
