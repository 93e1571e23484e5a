package suggest

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const (
	// cacheCapacity bounds the number of memoized prefixes; the least
	// recently used entry is evicted once the bound is reached.
	cacheCapacity = 512
	cacheTTL      = 30 * time.Minute
)

// Cache memoizes completion suggestions keyed by the exact truncated
// context string. Keys are whitespace-sensitive and never normalized:
// two requests with an identical truncated prefix are the same request,
// whatever the rest of the document looks like.
//
// There is no per-key in-flight coalescing. Concurrent misses for the
// same key may each hit the remote endpoint; suggestions are idempotent,
// so the last store simply wins.
type Cache struct {
	entries *ttlcache.Cache[string, []string]
}

func NewCache() *Cache {
	entries := ttlcache.New[string, []string](
		ttlcache.WithTTL[string, []string](cacheTTL),
		ttlcache.WithCapacity[string, []string](cacheCapacity),
	)
	go entries.Start()

	return &Cache{entries: entries}
}

// Close stops the cache expiration loop.
func (c *Cache) Close() {
	c.entries.Stop()
}

// Lookup returns the stored suggestions for key, or ok=false on a miss.
func (c *Cache) Lookup(key string) ([]string, bool) {
	item := c.entries.Get(key)
	if item == nil {
		return nil, false
	}
	return item.Value(), true
}

// Store records suggestions for key, in relevance order.
func (c *Cache) Store(key string, suggestions []string) {
	c.entries.Set(key, suggestions, ttlcache.DefaultTTL)
}

// Len reports the current number of cached prefixes.
func (c *Cache) Len() int {
	return c.entries.Len()
}
