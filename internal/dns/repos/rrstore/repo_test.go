package rrstore

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/rrdata"
)

// fakeStore is an in-memory Store for repository tests.
type fakeStore struct {
	sets     map[string][]rrdata.Record
	getCalls int
	getErr   error
	rebuilds int
	stats    StoreStats
}

func (f *fakeStore) GetSet(key string) ([]rrdata.Record, bool, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	set, ok := f.sets[key]
	return set, ok, nil
}

func (f *fakeStore) VisitNames(visit func(string) bool) error {
	for key := range f.sets {
		if !visit(key) {
			return nil
		}
	}
	return nil
}

func (f *fakeStore) RebuildAll(records []rrdata.Record, version uint64, updatedUnix int64) error {
	f.rebuilds++
	f.sets = make(map[string][]rrdata.Record)
	for _, r := range records {
		key := r.Header.CacheKey()
		f.sets[key] = append(f.sets[key], r)
	}
	f.stats = StoreStats{SetCount: uint64(len(f.sets)), Version: version, UpdatedUnix: updatedUnix}
	return nil
}

func (f *fakeStore) Stats() StoreStats { return f.stats }
func (f *fakeStore) Close() error      { return nil }

// fakeCache records puts and purges.
type fakeCache struct {
	entries map[string][]rrdata.Record
	puts    int
	purges  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]rrdata.Record)}
}

func (f *fakeCache) Get(key string) ([]rrdata.Record, bool) {
	set, ok := f.entries[key]
	return set, ok
}

func (f *fakeCache) Put(key string, records []rrdata.Record) {
	f.puts++
	f.entries[key] = records
}

func (f *fakeCache) Len() int { return len(f.entries) }

func (f *fakeCache) Purge() {
	f.purges++
	f.entries = make(map[string][]rrdata.Record)
}

func (f *fakeCache) Stats() (uint64, uint64, uint64) { return 3, 2, 1 }

// fakeFilter answers membership from a map, so tests control bloom behavior
// exactly.
type fakeFilter struct {
	members map[string]bool
}

func (f *fakeFilter) Add(key []byte) {
	if f.members == nil {
		f.members = make(map[string]bool)
	}
	f.members[string(key)] = true
}

func (f *fakeFilter) MightContain(key []byte) bool { return f.members[string(key)] }

type fakeFactory struct {
	built *fakeFilter
}

func (f *fakeFactory) New(capacity uint64, fpRate float64) NameFilter {
	f.built = &fakeFilter{}
	return f.built
}

func testRecord(t *testing.T, name string) rrdata.Record {
	t.Helper()
	h, err := domain.NewHeader(name, domain.RRTypeA, domain.RRClassIN, 300)
	require.NoError(t, err)
	return rrdata.Record{Header: h, Data: &rrdata.A{Addr: net.IPv4(10, 0, 0, 1).To4()}}
}

func TestRepository_LookupWithoutBloom(t *testing.T) {
	store := &fakeStore{sets: map[string][]rrdata.Record{
		"example.com|A|IN": {testRecord(t, "example.com")},
	}}
	repo := NewRepository(store, newFakeCache(), &fakeFactory{}, 0.01)

	// No Compile yet, so no bloom is loaded and the store is authoritative.
	set, err := repo.Lookup("Example.COM.", domain.RRTypeA, domain.RRClassIN)
	require.NoError(t, err)
	require.Len(t, set, 1)
	require.Equal(t, 1, store.getCalls)
}

func TestRepository_BloomShortCircuit(t *testing.T) {
	store := &fakeStore{}
	factory := &fakeFactory{}
	repo := NewRepository(store, newFakeCache(), factory, 0.01)

	require.NoError(t, repo.Compile([]rrdata.Record{testRecord(t, "example.com")}, 1, 0))

	set, err := repo.Lookup("absent.example.org", domain.RRTypeA, domain.RRClassIN)
	require.NoError(t, err)
	require.Nil(t, set)
	require.Equal(t, 0, store.getCalls, "bloom miss must not reach the store")

	set, err = repo.Lookup("example.com", domain.RRTypeA, domain.RRClassIN)
	require.NoError(t, err)
	require.Len(t, set, 1)
	require.Equal(t, 1, store.getCalls)
}

func TestRepository_LookupFillsCache(t *testing.T) {
	store := &fakeStore{sets: map[string][]rrdata.Record{
		"example.com|A|IN": {testRecord(t, "example.com")},
	}}
	cache := newFakeCache()
	repo := NewRepository(store, cache, &fakeFactory{}, 0.01)

	_, err := repo.Lookup("example.com", domain.RRTypeA, domain.RRClassIN)
	require.NoError(t, err)
	require.Equal(t, 1, cache.puts)

	// Second lookup is served from cache.
	_, err = repo.Lookup("example.com", domain.RRTypeA, domain.RRClassIN)
	require.NoError(t, err)
	require.Equal(t, 1, store.getCalls)
}

func TestRepository_LookupMissNotCached(t *testing.T) {
	store := &fakeStore{}
	cache := newFakeCache()
	repo := NewRepository(store, cache, &fakeFactory{}, 0.01)

	set, err := repo.Lookup("absent.example.com", domain.RRTypeA, domain.RRClassIN)
	require.NoError(t, err)
	require.Nil(t, set)
	require.Equal(t, 0, cache.puts)
}

func TestRepository_LookupStoreError(t *testing.T) {
	wantErr := errors.New("disk on fire")
	repo := NewRepository(&fakeStore{getErr: wantErr}, newFakeCache(), &fakeFactory{}, 0.01)

	_, err := repo.Lookup("example.com", domain.RRTypeA, domain.RRClassIN)
	require.ErrorIs(t, err, wantErr)
}

func TestRepository_CompileRefreshesEverything(t *testing.T) {
	store := &fakeStore{}
	cache := newFakeCache()
	factory := &fakeFactory{}
	repo := NewRepository(store, cache, factory, 0.01)

	cache.Put("stale|A|IN", nil)
	records := []rrdata.Record{
		testRecord(t, "example.com"),
		testRecord(t, "example.com"),
		testRecord(t, "www.example.com"),
	}
	require.NoError(t, repo.Compile(records, 9, 1756425600))

	require.Equal(t, 1, store.rebuilds)
	require.Equal(t, 1, cache.purges)
	require.NotNil(t, factory.built)
	require.True(t, factory.built.MightContain([]byte("example.com")))
	require.True(t, factory.built.MightContain([]byte("www.example.com")))
	require.False(t, factory.built.MightContain([]byte("other.example.com")))
}

func TestRepository_RepoStats(t *testing.T) {
	store := &fakeStore{stats: StoreStats{SetCount: 5, Version: 2, UpdatedUnix: 100}}
	repo := NewRepository(store, newFakeCache(), &fakeFactory{}, 0.01)

	stats := repo.RepoStats()
	require.Equal(t, uint64(3), stats.Hits)
	require.Equal(t, uint64(2), stats.Misses)
	require.Equal(t, uint64(1), stats.Evictions)
	require.Equal(t, store.stats, stats.Store)
}
