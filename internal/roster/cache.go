// Package roster provides the client for the roster-analytics collaborator.
package roster

import (
	"fmt"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// CacheKey identifies a cached roster lookup
type CacheKey struct {
	HomeTeam string
	AwayTeam string
	Season   int
	Week     int
}

// String returns string representation of cache key
func (k CacheKey) String() string {
	return fmt.Sprintf("%s:%s:%d:%d", k.HomeTeam, k.AwayTeam, k.Season, k.Week)
}

// SignalsCache provides in-memory caching for roster signals
type SignalsCache struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewSignalsCache creates a new roster signals cache
func NewSignalsCache(ttl time.Duration) *SignalsCache {
	return &SignalsCache{
		cache: cache.New(ttl, ttl*2),
		ttl:   ttl,
	}
}

// Get retrieves cached signals, or nil on a miss
func (sc *SignalsCache) Get(key CacheKey) *models.RosterSignals {
	if v, found := sc.cache.Get(key.String()); found {
		if signals, ok := v.(*models.RosterSignals); ok {
			return signals
		}
	}
	return nil
}

// Set stores signals in the cache
func (sc *SignalsCache) Set(key CacheKey, signals *models.RosterSignals) {
	sc.cache.Set(key.String(), signals, sc.ttl)
}

// Flush clears all cached entries
func (sc *SignalsCache) Flush() {
	sc.cache.Flush()
}
