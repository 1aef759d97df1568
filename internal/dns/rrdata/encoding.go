package rrdata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/haukened/rr-codec/internal/dns/common/utils"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// PackRecord encodes one complete resource record to the writer. The RDATA
// length field is backpatched after the payload is written, since most
// payloads have variable length. When compress is true the owner name and
// any compressible RDATA names participate in the writer's compression
// dictionary. Returns the number of bytes appended.
func PackRecord(w *wire.Writer, r Record, compress bool) (int, error) {
	start := w.Len()
	if _, err := w.Name(r.Header.Name, compress); err != nil {
		return 0, fmt.Errorf("packing owner name: %w", err)
	}
	w.Uint16(uint16(r.Header.Type))
	w.Uint16(uint16(r.Header.Class))
	w.Uint32(r.Header.TTL)
	lenOff := w.Len()
	w.Uint16(0) // RDATA length, patched below
	n, err := r.Data.Pack(w)
	if err != nil {
		return 0, fmt.Errorf("packing %s RDATA: %w", r.Header.Type, err)
	}
	if n > 0xFFFF {
		return 0, fmt.Errorf("%s RDATA too large: %d bytes", r.Header.Type, n)
	}
	w.PatchUint16(lenOff, uint16(n))
	return w.Len() - start, nil
}

// PresentRecord renders a record as one presentation-format line: the
// fully-qualified owner, an empty reserved alignment column, TTL, class,
// type, and RDATA, joined by tabs. Round-trip tests and diagnostic tooling
// depend on this exact layout.
func PresentRecord(r Record) string {
	return strings.Join([]string{
		utils.PresentationDNSName(r.Header.Name),
		"", // reserved alignment column
		strconv.FormatUint(uint64(r.Header.TTL), 10),
		r.Header.Class.String(),
		r.Header.Type.String(),
		r.Data.Present(),
	}, "\t")
}
