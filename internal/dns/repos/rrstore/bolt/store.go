package bolt

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/haukened/rr-codec/internal/dns/repos/rrstore"
	"github.com/haukened/rr-codec/internal/dns/rrdata"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

var (
	bucketSets = []byte("sets")
	bucketMeta = []byte("meta")
)

// boltStore implements rrstore.Store using bbolt. Keys are header cache
// keys (name|TYPE|CLASS); values are the records of the set concatenated
// in wire format, packed without name compression so each value decodes
// standalone.
type boltStore struct {
	db *bbolt.DB
}

// New opens (or creates) a Bolt database at path and ensures buckets exist.
func New(path string) (rrstore.Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketSets); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists(bucketMeta); err != nil {
			return err
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &boltStore{db: db}, nil
}

func (s *boltStore) Close() error { return s.db.Close() }

// encodeSet packs a record set as back-to-back wire-format records.
func encodeSet(records []rrdata.Record) ([]byte, error) {
	w := wire.NewWriter()
	for _, r := range records {
		if _, err := rrdata.PackRecord(w, r, false); err != nil {
			return nil, err
		}
	}
	// Copy out: the writer's buffer aliases its own storage.
	out := make([]byte, w.Len())
	copy(out, w.Bytes())
	return out, nil
}

// decodeSet is the inverse of encodeSet.
func decodeSet(value []byte) ([]rrdata.Record, error) {
	var records []rrdata.Record
	c := wire.NewCursor(value)
	for c.Remaining() > 0 {
		r, err := rrdata.UnpackRecord(c)
		if err != nil {
			return nil, fmt.Errorf("corrupt record set: %w", err)
		}
		records = append(records, r)
	}
	return records, nil
}

func (s *boltStore) GetSet(key string) ([]rrdata.Record, bool, error) {
	var records []rrdata.Record
	var found bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSets)
		if b == nil {
			return nil
		}
		v := b.Get([]byte(key))
		if v == nil {
			return nil
		}
		rs, err := decodeSet(v)
		if err != nil {
			return err
		}
		records = rs
		found = true
		return nil
	})
	return records, found, err
}

// VisitNames walks the distinct canonical owner names in key order and
// invokes visit for each. If visit returns false, iteration stops.
func (s *boltStore) VisitNames(visit func(name string) bool) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSets)
		if b == nil {
			return nil
		}
		c := b.Cursor()
		prev := ""
		seen := false
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			name, _, _ := strings.Cut(string(k), "|")
			if seen && name == prev {
				continue
			}
			if !visit(name) {
				return nil
			}
			prev = name
			seen = true
		}
		return nil
	})
}

// RebuildAll replaces the entire dataset in one transaction: the sets
// bucket is dropped and repopulated from records grouped by cache key, and
// the meta bucket records the new snapshot version and timestamp.
func (s *boltStore) RebuildAll(records []rrdata.Record, version uint64, updatedUnix int64) error {
	grouped := make(map[string][]rrdata.Record)
	for _, r := range records {
		key := r.Header.CacheKey()
		grouped[key] = append(grouped[key], r)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketSets); err != nil && err != bbolt.ErrBucketNotFound {
			return err
		}
		b, err := tx.CreateBucket(bucketSets)
		if err != nil {
			return err
		}
		for key, set := range grouped {
			value, err := encodeSet(set)
			if err != nil {
				return fmt.Errorf("encoding record set %q: %w", key, err)
			}
			if err := b.Put([]byte(key), value); err != nil {
				return err
			}
		}
		meta := tx.Bucket(bucketMeta)
		vbuf := make([]byte, 8)
		ubuf := make([]byte, 8)
		binary.BigEndian.PutUint64(vbuf, version)
		binary.BigEndian.PutUint64(ubuf, uint64(updatedUnix))
		if err := meta.Put([]byte("version"), vbuf); err != nil {
			return err
		}
		return meta.Put([]byte("updated"), ubuf)
	})
}

func (s *boltStore) Stats() rrstore.StoreStats {
	st := rrstore.StoreStats{}
	_ = s.db.View(func(tx *bbolt.Tx) error {
		if b := tx.Bucket(bucketSets); b != nil {
			st.SetCount = uint64(b.Stats().KeyN)
		}
		if b := tx.Bucket(bucketMeta); b != nil {
			if v := b.Get([]byte("version")); len(v) == 8 {
				st.Version = binary.BigEndian.Uint64(v)
			}
			if v := b.Get([]byte("updated")); len(v) == 8 {
				st.UpdatedUnix = int64(binary.BigEndian.Uint64(v))
			}
		}
		return nil
	})
	return st
}
