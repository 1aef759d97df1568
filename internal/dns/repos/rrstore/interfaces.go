// Package rrstore is the persistence layer for compiled zone records: a
// bbolt-backed store of wire-encoded record sets, fronted by a Bloom filter
// over owner names and an LRU cache of decoded sets.
package rrstore

import (
	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/rrdata"
)

// BloomSizer computes Bloom filter parameters from capacity (n) and target
// FP rate (p). It returns m (number of bits) and k (number of hash
// functions).
type BloomSizer interface {
	Size(n uint64, p float64) (m uint64, k uint8)
}

// NameFilter is the minimal interface the repository needs from Bloom
// filters: a probabilistic presence test over canonical owner names.
type NameFilter interface {
	Add(key []byte)
	MightContain(key []byte) bool
}

// BloomFactory constructs a NameFilter sized for a dataset.
type BloomFactory interface {
	New(capacity uint64, fpRate float64) NameFilter
}

// SetCache caches decoded record sets by header cache key with basic
// metrics.
type SetCache interface {
	Get(key string) ([]rrdata.Record, bool)
	Put(key string, records []rrdata.Record)
	Len() int
	Purge()
	Stats() (hits, misses, evictions uint64)
}

// StoreStats reports lightweight store metrics and metadata.
// Values are read from the store in a cheap, read-only transaction.
type StoreStats struct {
	SetCount    uint64 // number of record-set keys
	Version     uint64 // snapshot version (0 if unknown)
	UpdatedUnix int64  // last updated unix time (0 if unknown)
}

// Store abstracts the persistent record-set index.
//   - GetSet: decoded records for a header cache key
//   - VisitNames: iterate distinct canonical owner names
//   - RebuildAll: replace the entire dataset in one transaction
//   - Stats: counts and metadata; Close: release resources
type Store interface {
	GetSet(key string) ([]rrdata.Record, bool, error)
	VisitNames(visit func(name string) bool) error
	RebuildAll(records []rrdata.Record, version uint64, updatedUnix int64) error
	Stats() StoreStats
	Close() error
}

// RepoStats exposes repository-level counters and underlying store stats.
type RepoStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Store     StoreStats
}

// Repository is the composition layer that wires cache, bloom, and store.
// Lookup returns the record set for a name/type/class triple; Compile
// rebuilds the store from freshly parsed records, refreshes the Bloom
// filter, and clears the cache.
type Repository interface {
	Lookup(name string, rrtype domain.RRType, class domain.RRClass) ([]rrdata.Record, error)
	Compile(records []rrdata.Record, version uint64, updatedUnix int64) error
	RepoStats() RepoStats
}
