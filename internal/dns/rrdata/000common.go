// Package rrdata implements the type-specific RDATA codecs and the registry
// that dispatches a record type code to its implementation. Every record
// type satisfies one shared capability set (binary unpack, binary pack,
// text parse, text present) so heterogeneous types flow through a single
// pipeline. Types without a registered implementation fall back to an
// opaque RFC 3597 blob.
package rrdata

import (
	"encoding/base32"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// Rdata is the capability set every record payload implements.
type Rdata interface {
	// Type returns the record type code this payload belongs to.
	Type() domain.RRType

	// Unpack decodes the payload from a cursor bounded to exactly the
	// record's RDATA region. It must consume the region entirely.
	Unpack(c *wire.Cursor) error

	// Pack encodes the payload and returns the number of bytes written.
	Pack(w *wire.Writer) (int, error)

	// Parse decodes the payload from presentation-format RDATA tokens.
	Parse(tokens []string) error

	// Present renders the payload in presentation format.
	Present() string
}

// Record is a complete resource record: the shared header plus the
// type-specific payload.
type Record struct {
	Header domain.Header
	Data   Rdata
}

// registry is the static dispatch table from type code to payload
// constructor. It is built once at package initialization and never
// mutated, so concurrent lookups need no synchronization.
var registry = map[domain.RRType]func() Rdata{
	domain.RRTypeA:          func() Rdata { return new(A) },
	domain.RRTypeNS:         func() Rdata { return new(NS) },
	domain.RRTypeCNAME:      func() Rdata { return new(CNAME) },
	domain.RRTypeSOA:        func() Rdata { return new(SOA) },
	domain.RRTypePTR:        func() Rdata { return new(PTR) },
	domain.RRTypeMX:         func() Rdata { return new(MX) },
	domain.RRTypeTXT:        func() Rdata { return new(TXT) },
	domain.RRTypeAAAA:       func() Rdata { return new(AAAA) },
	domain.RRTypeSRV:        func() Rdata { return new(SRV) },
	domain.RRTypeDS:         func() Rdata { return new(DS) },
	domain.RRTypeSSHFP:      func() Rdata { return new(SSHFP) },
	domain.RRTypeRRSIG:      func() Rdata { return new(RRSIG) },
	domain.RRTypeNSEC:       func() Rdata { return new(NSEC) },
	domain.RRTypeDNSKEY:     func() Rdata { return new(DNSKEY) },
	domain.RRTypeNSEC3:      func() Rdata { return new(NSEC3) },
	domain.RRTypeNSEC3PARAM: func() Rdata { return new(NSEC3PARAM) },
	domain.RRTypeTLSA:       func() Rdata { return new(TLSA) },
	domain.RRTypeCAA:        func() Rdata { return new(CAA) },
}

// New returns a fresh payload for the given type code, falling back to an
// opaque Unknown payload for unregistered types.
func New(t domain.RRType) Rdata {
	if fn, ok := registry[t]; ok {
		return fn()
	}
	return &Unknown{RRType: t}
}

// Supported reports whether a concrete codec is registered for t.
func Supported(t domain.RRType) bool {
	_, ok := registry[t]
	return ok
}

// base32HexNoPad is the RFC 4648 "extended hex" alphabet without padding,
// used for NSEC3 hashed owner names. Parsing is case-insensitive.
var base32HexNoPad = base32.HexEncoding.WithPadding(base32.NoPadding)

// quoteString renders a character-string in quoted presentation form:
// backslash and double-quote are escaped with a backslash, non-printable
// bytes as three-digit decimal \DDD escapes.
func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < ' ' || c > '~':
			fmt.Fprintf(&b, "\\%03d", c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// isIPv4 checks whether the provided net.IP address is an IPv4 address.
// It returns true if the IP is not nil and can be converted to IPv4 format.
func isIPv4(ip net.IP) bool {
	return ip != nil && ip.To4() != nil
}

// isIPv6 checks whether the provided net.IP is a valid IPv6 address.
// It returns true if the IP is not nil, has a valid 16-byte representation,
// and does not have a valid 4-byte IPv4 representation.
func isIPv6(ip net.IP) bool {
	return ip != nil && ip.To16() != nil && ip.To4() == nil
}

// wantTokens checks the RDATA token count against a grammar's requirement.
func wantTokens(tokens []string, n int, grammar string) error {
	if len(tokens) != n {
		return fmt.Errorf("expected %d fields (%s), got %d", n, grammar, len(tokens))
	}
	return nil
}

func parseUint8Field(tok, field string) (uint8, error) {
	v, err := strconv.ParseUint(tok, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, tok, err)
	}
	return uint8(v), nil
}

func parseUint16Field(tok, field string) (uint16, error) {
	v, err := strconv.ParseUint(tok, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, tok, err)
	}
	return uint16(v), nil
}

func parseUint32Field(tok, field string) (uint32, error) {
	v, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, tok, err)
	}
	return uint32(v), nil
}
