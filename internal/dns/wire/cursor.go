// Package wire implements the bounds-checked binary reader and writer every
// record codec is built on, including domain-name compression per RFC 1035
// section 4.1.4.
package wire

import (
	"strings"

	"github.com/haukened/rr-codec/internal/dns/domain"
)

const (
	// maxNameOctets is the limit on a name's encoded form, counting the
	// label length octets and the terminating root label (RFC 1035 §2.3.4).
	maxNameOctets = 255

	// maxNameLabels follows from maxNameOctets: each label needs at least
	// two octets (length plus one character).
	maxNameLabels = 127
)

// Cursor is a read-only view over a byte buffer plus a current offset and an
// absolute end bound. All reads are bounds-checked and fail with a
// ParseError instead of panicking, since the buffer may come from an
// untrusted peer. A Cursor is owned by the decode call that created it and
// must not be shared across goroutines.
type Cursor struct {
	msg []byte // the entire original message; compression pointers resolve against it
	off int    // absolute offset of the next unread byte
	end int    // absolute bound; reads never cross it
}

// NewCursor returns a Cursor over the full message buffer.
func NewCursor(msg []byte) *Cursor {
	return &Cursor{msg: msg, end: len(msg)}
}

// Remaining reports the number of unread bytes before the bound.
func (c *Cursor) Remaining() int {
	return c.end - c.off
}

// Offset reports the absolute offset of the next unread byte.
func (c *Cursor) Offset() int {
	return c.off
}

func (c *Cursor) need(n int) error {
	if c.end-c.off < n {
		return domain.NewWireError(c.off, "unexpected end of data: need %d bytes, have %d", n, c.end-c.off)
	}
	return nil
}

// Uint8 consumes one byte.
func (c *Cursor) Uint8() (uint8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	v := c.msg[c.off]
	c.off++
	return v, nil
}

// Uint16 consumes two bytes, big-endian.
func (c *Cursor) Uint16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := uint16(c.msg[c.off])<<8 | uint16(c.msg[c.off+1])
	c.off += 2
	return v, nil
}

// Uint32 consumes four bytes, big-endian.
func (c *Cursor) Uint32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := uint32(c.msg[c.off])<<24 | uint32(c.msg[c.off+1])<<16 |
		uint32(c.msg[c.off+2])<<8 | uint32(c.msg[c.off+3])
	c.off += 4
	return v, nil
}

// Bytes consumes the next n bytes and returns them as a copy, so the result
// stays valid after the message buffer is reused.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, domain.NewWireError(c.off, "negative read length %d", n)
	}
	if err := c.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, c.msg[c.off:c.off+n])
	c.off += n
	return out, nil
}

// Slice carves out a bounded sub-cursor over the next n bytes and advances
// past them. The sub-cursor shares the underlying message (so compression
// pointers still resolve against the whole buffer) but cannot read past its
// own bound. This is how RDATA parsing is scoped strictly to the declared
// RDATA length: a buggy type codec cannot read into the next record.
func (c *Cursor) Slice(n int) (*Cursor, error) {
	if n < 0 {
		return nil, domain.NewWireError(c.off, "negative slice length %d", n)
	}
	if err := c.need(n); err != nil {
		return nil, err
	}
	sub := &Cursor{msg: c.msg, off: c.off, end: c.off + n}
	c.off += n
	return sub, nil
}

// Name reads a possibly-compressed domain name, returning it in canonical
// dotted form (lowercase handling is left to the caller; the root is "").
//
// A compression pointer is a 2-byte field whose top two bits are set; the
// remaining 14 bits are an offset into the original message buffer. Every
// pointer must point strictly backward relative to the position it occurs
// at. That single rule forbids pointer loops and forward references without
// a visited-set: chains of pointers strictly decrease, and any labels read
// between jumps count against the 255-octet name cap, so total work is
// bounded in O(1) memory.
func (c *Cursor) Name() (string, error) {
	labels := make([]string, 0, 6)
	pos := c.off
	end := c.end
	jumped := false
	encoded := 1 // terminating root label
	for {
		if pos >= end {
			return "", domain.NewWireError(pos, "unexpected end of data in domain name")
		}
		b := c.msg[pos]
		switch {
		case b == 0x00:
			if !jumped {
				c.off = pos + 1
			}
			return strings.Join(labels, "."), nil

		case b&0xC0 == 0xC0:
			if pos+1 >= end {
				return "", domain.NewWireError(pos, "unexpected end of data in compression pointer")
			}
			ptr := int(b&0x3F)<<8 | int(c.msg[pos+1])
			if ptr >= pos {
				return "", domain.NewWireError(pos, "compression pointer to offset %d does not point backward", ptr)
			}
			if !jumped {
				c.off = pos + 2
				jumped = true
			}
			pos = ptr
			// Pointers land in the original message, outside any
			// sub-cursor bound.
			end = len(c.msg)

		case b&0xC0 != 0:
			return "", domain.NewWireError(pos, "reserved label type 0x%02x", b&0xC0)

		default:
			n := int(b)
			if pos+1+n > end {
				return "", domain.NewWireError(pos, "unexpected end of data in label of length %d", n)
			}
			encoded += 1 + n
			if encoded > maxNameOctets {
				return "", domain.NewWireError(pos, "decompressed name exceeds %d octets", maxNameOctets)
			}
			if len(labels) >= maxNameLabels {
				return "", domain.NewWireError(pos, "name has more than %d labels", maxNameLabels)
			}
			labels = append(labels, string(c.msg[pos+1:pos+1+n]))
			pos += 1 + n
		}
	}
}
