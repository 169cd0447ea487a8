package sentiment

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/pscheid92/moviepulse/internal/domain"
)

type memoryCacheEntry struct {
	analysis  *domain.MovieAnalysis
	expiresAt time.Time
}

// InMemoryCache provides TTL-based caching of completed analyses for
// single-instance mode. The Redis cache is used when instances share state.
type InMemoryCache struct {
	mu      sync.RWMutex
	entries map[int]*memoryCacheEntry
	ttl     time.Duration
	clock   clockwork.Clock
}

// NewInMemoryCache creates a cache with the specified TTL.
func NewInMemoryCache(ttl time.Duration, clock clockwork.Clock) *InMemoryCache {
	return &InMemoryCache{
		entries: make(map[int]*memoryCacheEntry),
		ttl:     ttl,
		clock:   clock,
	}
}

// Get retrieves a cached analysis if present and not expired.
func (c *InMemoryCache) Get(_ context.Context, movieID int) (*domain.MovieAnalysis, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[movieID]
	if !ok {
		return nil, false, nil
	}

	// Expired entries are treated as misses and removed on the next Set.
	if c.clock.Now().After(entry.expiresAt) {
		return nil, false, nil
	}

	return entry.analysis, true, nil
}

// Set stores an analysis with current timestamp + TTL. Expired entries are
// evicted on each write; the map stays bounded by the distinct movies
// analyzed within one TTL window.
func (c *InMemoryCache) Set(_ context.Context, analysis *domain.MovieAnalysis) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	for id, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, id)
		}
	}

	c.entries[analysis.Movie.ID] = &memoryCacheEntry{
		analysis:  analysis,
		expiresAt: now.Add(c.ttl),
	}
	return nil
}

// Size returns the current number of entries (including expired).
func (c *InMemoryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
