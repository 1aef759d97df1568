package domain

import (
	"fmt"

	"github.com/haukened/rr-codec/internal/dns/common/utils"
)

// Header carries the fields shared by every DNS resource record: the owner
// name, record type, class, and TTL. On the wire a header is followed by a
// 16-bit RDATA length; that length is a transport detail and is not stored
// here; it must always equal the byte count the type-specific codec
// actually consumes.
type Header struct {
	Name  string // canonical owner name (lowercase, no trailing dot, "" = root)
	Type  RRType
	Class RRClass
	TTL   uint32
}

// NewHeader constructs a Header in canonical form and validates it.
// Records are only created through this constructor (or a decode path that
// calls it), so a Header in circulation is always structurally valid.
func NewHeader(name string, rrtype RRType, class RRClass, ttl uint32) (Header, error) {
	h := Header{
		Name:  utils.CanonicalDNSName(name),
		Type:  rrtype,
		Class: class,
		TTL:   ttl,
	}
	if err := h.Validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}

// Validate checks whether the Header fields are structurally valid.
func (h Header) Validate() error {
	if err := utils.ValidateDNSName(h.Name); err != nil {
		return fmt.Errorf("invalid owner name: %w", err)
	}
	return nil
}

// CacheKey returns a string key derived from the owner name, type, and class.
// Uses pipe (|) separator to avoid conflicts with colons in IPv6 addresses.
func (h Header) CacheKey() string {
	return h.Name + "|" + h.Type.String() + "|" + h.Class.String()
}
