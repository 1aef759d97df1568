package rrdata

import (
	"slices"
	"strings"

	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// Type bitmaps (RFC 4034 section 4.1.2) encode a sparse set of record type
// codes as a sequence of (window number, block length, block bytes)
// triples. Each window covers 256 consecutive type codes; each bit in a
// block maps to code = window*256 + byteIndex*8 + bitIndex, most
// significant bit first. The wire form is canonical: windows strictly
// ascending, block length 1..32, no trailing all-zero bytes, empty windows
// omitted entirely.

// UnpackTypeBitmap decodes a type bitmap occupying the rest of the cursor's
// bounded region, returning the set as a sorted slice of type codes.
func UnpackTypeBitmap(c *wire.Cursor) ([]domain.RRType, error) {
	var types []domain.RRType
	lastWindow := -1
	for c.Remaining() > 0 {
		off := c.Offset()
		window, err := c.Uint8()
		if err != nil {
			return nil, err
		}
		length, err := c.Uint8()
		if err != nil {
			return nil, err
		}
		if int(window) <= lastWindow {
			return nil, domain.NewWireError(off,
				"type bitmap window %d not strictly above previous window %d", window, lastWindow)
		}
		if length < 1 || length > 32 {
			return nil, domain.NewWireError(off, "type bitmap block length %d outside 1..32", length)
		}
		bits, err := c.Bytes(int(length))
		if err != nil {
			return nil, err
		}
		lastWindow = int(window)
		for i, b := range bits {
			for bit := 0; bit < 8; bit++ {
				if b&(0x80>>bit) != 0 {
					types = append(types, domain.RRType(int(window)<<8|i*8|bit))
				}
			}
		}
	}
	return types, nil
}

// PackTypeBitmap encodes an arbitrary set of type codes in canonical
// minimal form: duplicates collapse, windows sort ascending, and each block
// is exactly long enough to hold its highest bit. Returns the number of
// bytes written.
func PackTypeBitmap(w *wire.Writer, types []domain.RRType) int {
	sorted := slices.Clone(types)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	n := 0
	var block [32]byte
	for i := 0; i < len(sorted); {
		window := int(sorted[i]) >> 8
		clear(block[:])
		maxByte := 0
		for ; i < len(sorted) && int(sorted[i])>>8 == window; i++ {
			idx := int(sorted[i]) & 0xFF
			block[idx/8] |= 0x80 >> (idx % 8)
			maxByte = idx / 8
		}
		n += w.Uint8(uint8(window))
		n += w.Uint8(uint8(maxByte + 1))
		n += w.Write(block[:maxByte+1])
	}
	return n
}

// parseTypeBitmap converts presentation-format type mnemonics to a set of
// type codes.
func parseTypeBitmap(tokens []string) ([]domain.RRType, error) {
	types := make([]domain.RRType, 0, len(tokens))
	for _, tok := range tokens {
		t, ok := domain.RRTypeFromString(tok)
		if !ok {
			return nil, domain.NewSemanticError("unknown record type %q in type bitmap", tok)
		}
		types = append(types, t)
	}
	return types, nil
}

// presentTypeBitmap renders a set of type codes as space-joined mnemonics.
func presentTypeBitmap(types []domain.RRType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, " ")
}
