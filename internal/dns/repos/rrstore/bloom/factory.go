package bloom

import (
	bitsbloom "github.com/bits-and-blooms/bloom/v3"

	"github.com/haukened/rr-codec/internal/dns/repos/rrstore"
)

// factory implements rrstore.BloomFactory using internal sizing formulas.
type factory struct{}

// NewFactory returns a BloomFactory that sizes filters from capacity and FP rate.
func NewFactory() rrstore.BloomFactory { return factory{} }

// New constructs a new NameFilter instance sized for the given dataset
// capacity and target false-positive rate.
func (factory) New(capacity uint64, fpRate float64) rrstore.NameFilter {
	m, k := size(capacity, fpRate)
	return &filter{bf: bitsbloom.New(uint(m), uint(k))}
}
