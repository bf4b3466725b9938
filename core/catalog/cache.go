package catalog

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cachedPair is a loaded catalog pair with its build time.
type cachedPair struct {
	pair  *Pair
	built time.Time
}

// Cache holds loaded catalog pairs keyed by loader configuration.
type Cache struct {
	// TTL is the time-to-live of a loaded pair. If zero, every call reloads.
	TTL time.Duration

	mu    sync.RWMutex
	pairs map[string]cachedPair
	sf    singleflight.Group
	now   func() time.Time
}

// NewCache creates an empty cache.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		TTL:   ttl,
		pairs: make(map[string]cachedPair),
		now:   time.Now,
	}
}

func (c *Cache) expired(entry cachedPair) bool {
	if c.TTL == 0 {
		return true
	}
	return c.now().Sub(entry.built) > c.TTL
}

// GetOrLoad returns the cached pair for the loader, or loads a new one if it doesn't exist
// or has expired. Uses singleflight so concurrent callers share one load.
func (c *Cache) GetOrLoad(ctx context.Context, loader *Loader) (*Pair, error) {
	key := loader.Key()

	c.mu.RLock()
	entry, exists := c.pairs[key]
	c.mu.RUnlock()

	if exists && !c.expired(entry) {
		return entry.pair, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		c.mu.RLock()
		entry, exists := c.pairs[key]
		c.mu.RUnlock()

		if exists && !c.expired(entry) {
			return entry.pair, nil
		}

		pair, err := loader.Load(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.pairs[key] = cachedPair{pair: pair, built: c.now()}
		c.mu.Unlock()

		return pair, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Pair), nil
}

// Invalidate drops the cached pair for the loader, forcing the next call to reload.
func (c *Cache) Invalidate(loader *Loader) {
	c.mu.Lock()
	delete(c.pairs, loader.Key())
	c.mu.Unlock()
}
