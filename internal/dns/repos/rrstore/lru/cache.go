package lru

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/haukened/rr-codec/internal/dns/repos/rrstore"
	"github.com/haukened/rr-codec/internal/dns/rrdata"
)

// setCache is an LRU-backed implementation of rrstore.SetCache.
// It tracks basic metrics: hits, misses, and evictions.
type setCache struct {
	lru       *lru.Cache[string, []rrdata.Record]
	hits      uint64
	misses    uint64
	evictions uint64
}

// disabledCache is a no-op SetCache used when size <= 0.
type disabledCache struct{}

// New creates a new SetCache with the given capacity. If size <= 0, a
// disabled no-op cache is returned that always misses and tracks no metrics.
func New(size int) (rrstore.SetCache, error) {
	if size <= 0 {
		return &disabledCache{}, nil
	}

	var sc setCache
	// Use NewWithEvict to observe evictions, including Purge-induced ones.
	cache, err := lru.NewWithEvict(size, func(_ string, _ []rrdata.Record) {
		atomic.AddUint64(&sc.evictions, 1)
	})
	if err != nil {
		return nil, err
	}
	sc.lru = cache
	return &sc, nil
}

// Get looks up a record set by key. When found, increments hits; otherwise
// increments misses.
func (c *setCache) Get(key string) ([]rrdata.Record, bool) {
	if val, ok := c.lru.Get(key); ok {
		atomic.AddUint64(&c.hits, 1)
		return val, true
	}
	atomic.AddUint64(&c.misses, 1)
	return nil, false
}

// Put stores a record set by key.
func (c *setCache) Put(key string, records []rrdata.Record) {
	c.lru.Add(key, records)
}

// Len returns the number of entries in the cache.
func (c *setCache) Len() int { return c.lru.Len() }

// Purge clears all entries. Evictions are counted via the eviction callback.
func (c *setCache) Purge() { c.lru.Purge() }

// Stats returns cumulative hit/miss/eviction counters.
func (c *setCache) Stats() (hits, misses, evictions uint64) {
	return atomic.LoadUint64(&c.hits), atomic.LoadUint64(&c.misses), atomic.LoadUint64(&c.evictions)
}

// disabledCache implementation

func (d *disabledCache) Get(string) ([]rrdata.Record, bool) { return nil, false }

func (d *disabledCache) Put(string, []rrdata.Record) {}

func (d *disabledCache) Len() int { return 0 }

func (d *disabledCache) Purge() {}

func (d *disabledCache) Stats() (uint64, uint64, uint64) { return 0, 0, 0 }

var _ rrstore.SetCache = (*setCache)(nil)
var _ rrstore.SetCache = (*disabledCache)(nil)
