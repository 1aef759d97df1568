package rrstore

import (
	"sync"

	"github.com/haukened/rr-codec/internal/dns/common/utils"
	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/rrdata"
)

// repository implements the Repository interface by composing a Store, a
// Bloom filter (via factory), and a SetCache. It applies a bloom, cache,
// store pipeline on reads and performs atomic snapshot rebuilds on writes.
type repository struct {
	mu      sync.RWMutex
	store   Store
	cache   SetCache
	bloom   NameFilter
	factory BloomFactory
	fpRate  float64
}

// NewRepository constructs a Repository.
// fpRate is the target false-positive rate for the Bloom filter when rebuilding.
func NewRepository(store Store, cache SetCache, factory BloomFactory, fpRate float64) Repository {
	return &repository{store: store, cache: cache, factory: factory, fpRate: fpRate}
}

// Lookup returns the record set for the name/type/class triple, or an empty
// set when the name is absent. The Bloom filter short-circuits lookups for
// names that were never compiled.
func (r *repository) Lookup(name string, rrtype domain.RRType, class domain.RRClass) ([]rrdata.Record, error) {
	cn := utils.CanonicalDNSName(name)
	if !r.checkBloom(cn) {
		return nil, nil
	}
	key := domain.Header{Name: cn, Type: rrtype, Class: class}.CacheKey()
	if set, ok := r.checkCache(key); ok {
		return set, nil
	}
	set, found, err := r.store.GetSet(key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	r.updateCache(key, set)
	return set, nil
}

// Compile performs an atomic snapshot rebuild across store, bloom, and cache.
func (r *repository) Compile(records []rrdata.Record, version uint64, updatedUnix int64) error {
	if err := r.store.RebuildAll(records, version, updatedUnix); err != nil {
		return err
	}

	// Build a fresh Bloom filter sized for the distinct owner names.
	names := make(map[string]struct{}, len(records))
	for _, rec := range records {
		names[rec.Header.Name] = struct{}{}
	}
	bf := r.factory.New(uint64(len(names)), r.fpRate)
	for name := range names {
		bf.Add([]byte(name))
	}

	// Swap bloom and purge the set cache under lock.
	r.mu.Lock()
	r.bloom = bf
	r.cache.Purge()
	r.mu.Unlock()
	return nil
}

// checkBloom returns true if we should consult the store (maybe-positive),
// or false if we can short-circuit (definitely absent). If no bloom is
// loaded, returns true to allow authoritative checking.
func (r *repository) checkBloom(cn string) bool {
	r.mu.RLock()
	bf := r.bloom
	r.mu.RUnlock()
	if bf == nil {
		return true
	}
	return bf.MightContain([]byte(cn))
}

// checkCache returns a cached record set when present.
func (r *repository) checkCache(key string) ([]rrdata.Record, bool) {
	r.mu.RLock()
	set, ok := r.cache.Get(key)
	r.mu.RUnlock()
	return set, ok
}

// updateCache stores the decoded set.
func (r *repository) updateCache(key string, set []rrdata.Record) {
	r.mu.Lock()
	r.cache.Put(key, set)
	r.mu.Unlock()
}

// RepoStats returns cache counters plus the underlying store stats.
func (r *repository) RepoStats() RepoStats {
	hits, misses, evictions := r.cache.Stats()
	return RepoStats{
		Hits:      hits,
		Misses:    misses,
		Evictions: evictions,
		Store:     r.store.Stats(),
	}
}
