package wire

import (
	"strings"

	"github.com/haukened/rr-codec/internal/dns/common/utils"
)

// maxPointerTarget is the largest offset a 14-bit compression pointer can
// reference. Names written beyond it are never recorded as targets.
const maxPointerTarget = 0x3FFF

// Writer is an append-only growable buffer plus a dictionary mapping
// previously-written canonical name suffixes to their byte offset, used for
// domain-name compression. Each write method returns the number of bytes it
// appended; callers sum these to compute RDATA lengths after the fact, since
// many payloads have variable length. A Writer is owned by the encode call
// that created it.
type Writer struct {
	buf   []byte
	names map[string]int
}

// NewWriter returns an empty Writer with a fresh compression dictionary.
func NewWriter() *Writer {
	return &Writer{names: make(map[string]int)}
}

// Bytes returns the accumulated buffer. The slice aliases the Writer's
// storage and is only valid until the next write.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len reports the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Uint8 appends one byte.
func (w *Writer) Uint8(v uint8) int {
	w.buf = append(w.buf, v)
	return 1
}

// Uint16 appends two bytes, big-endian.
func (w *Writer) Uint16(v uint16) int {
	w.buf = append(w.buf, byte(v>>8), byte(v))
	return 2
}

// Uint32 appends four bytes, big-endian.
func (w *Writer) Uint32(v uint32) int {
	w.buf = append(w.buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	return 4
}

// Write appends b verbatim.
func (w *Writer) Write(b []byte) int {
	w.buf = append(w.buf, b...)
	return len(b)
}

// PatchUint16 overwrites two already-written bytes at off, big-endian.
// Used to backpatch an RDATA length field once the payload size is known.
func (w *Writer) PatchUint16(off int, v uint16) {
	w.buf[off] = byte(v >> 8)
	w.buf[off+1] = byte(v)
}

// Name appends a domain name as a length-prefixed label sequence.
//
// When compress is true, the longest already-written suffix of the name is
// replaced by a 2-byte pointer to its recorded offset, and any suffixes
// newly written in full are recorded for later names. When compress is
// false the full label sequence is emitted uncompressed, as required for
// RDATA that feeds a canonical-form digest or signature (e.g. an RRSIG
// signer name), where compression would make the encoding depend on message
// context and break reproducibility.
//
// Returns the number of bytes appended.
func (w *Writer) Name(name string, compress bool) (int, error) {
	name = utils.CanonicalDNSName(name)
	if err := utils.ValidateDNSName(name); err != nil {
		return 0, err
	}
	start := w.Len()
	if name == "" {
		return w.Uint8(0), nil
	}
	labels := strings.Split(name, ".")
	for i, label := range labels {
		suffix := strings.Join(labels[i:], ".")
		if compress {
			if off, ok := w.names[suffix]; ok {
				w.Uint16(0xC000 | uint16(off))
				return w.Len() - start, nil
			}
		}
		// First occurrence wins so pointers always aim backward.
		if off := w.Len(); off <= maxPointerTarget {
			if _, ok := w.names[suffix]; !ok {
				w.names[suffix] = off
			}
		}
		w.Uint8(uint8(len(label)))
		w.Write([]byte(label))
	}
	w.Uint8(0)
	return w.Len() - start, nil
}
