package catalog

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cacheEntry is one cached lookup result with its build timestamp.
type cacheEntry struct {
	value any
	built time.Time
}

// expired returns true once the entry has outlived the given TTL. A zero
// TTL disables caching entirely.
func (e *cacheEntry) expired(ttl time.Duration) bool {
	if ttl == 0 {
		return true
	}
	return time.Since(e.built) > ttl
}

// cacheStore holds catalog results keyed by endpoint and filter values.
// Singleflight collapses concurrent rebuilds of the same key.
type cacheStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]*cacheEntry
	sf      singleflight.Group
}

func newCacheStore(ttl time.Duration) *cacheStore {
	return &cacheStore{ttl: ttl, entries: make(map[string]*cacheEntry)}
}

// getOrLoad returns the cached value for key, loading and storing it when
// absent or expired.
func (s *cacheStore) getOrLoad(key string, load func() (any, error)) (any, error) {
	s.mu.RLock()
	entry, exists := s.entries[key]
	s.mu.RUnlock()

	if exists && !entry.expired(s.ttl) {
		return entry.value, nil
	}

	result, err, _ := s.sf.Do(key, func() (any, error) {
		// Double-check after acquiring the singleflight lock.
		s.mu.RLock()
		entry, exists := s.entries[key]
		s.mu.RUnlock()

		if exists && !entry.expired(s.ttl) {
			return entry.value, nil
		}

		value, err := load()
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.entries[key] = &cacheEntry{value: value, built: time.Now()}
		s.mu.Unlock()

		return value, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// invalidate drops every cached entry. Useful for tests.
func (s *cacheStore) invalidate() {
	s.mu.Lock()
	s.entries = make(map[string]*cacheEntry)
	s.mu.Unlock()
}
