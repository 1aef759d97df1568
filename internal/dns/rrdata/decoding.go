package rrdata

import (
	"fmt"

	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// UnpackRecord decodes one complete resource record from wire format. The
// RDATA region is carved out as a bounded sub-cursor, so a type codec can
// never read into the following record; the codec must also consume the
// region exactly: transmitted RDATA length and bytes consumed disagreeing
// is a parse error, never a silent truncate or pad.
func UnpackRecord(c *wire.Cursor) (Record, error) {
	name, err := c.Name()
	if err != nil {
		return Record{}, fmt.Errorf("unpacking owner name: %w", err)
	}
	typ, err := c.Uint16()
	if err != nil {
		return Record{}, fmt.Errorf("unpacking record type: %w", err)
	}
	class, err := c.Uint16()
	if err != nil {
		return Record{}, fmt.Errorf("unpacking record class: %w", err)
	}
	ttl, err := c.Uint32()
	if err != nil {
		return Record{}, fmt.Errorf("unpacking record TTL: %w", err)
	}
	rdlen, err := c.Uint16()
	if err != nil {
		return Record{}, fmt.Errorf("unpacking RDATA length: %w", err)
	}
	rc, err := c.Slice(int(rdlen))
	if err != nil {
		return Record{}, fmt.Errorf("unpacking RDATA: %w", err)
	}

	rrtype := domain.RRType(typ)
	data := New(rrtype)
	if err := data.Unpack(rc); err != nil {
		return Record{}, fmt.Errorf("unpacking %s RDATA: %w", rrtype, err)
	}
	if left := rc.Remaining(); left != 0 {
		return Record{}, domain.NewWireError(rc.Offset(),
			"%s RDATA length %d does not match bytes consumed: %d left over", rrtype, rdlen, left)
	}

	header, err := domain.NewHeader(name, rrtype, domain.RRClass(class), ttl)
	if err != nil {
		return Record{}, err
	}
	return Record{Header: header, Data: data}, nil
}

// ParseRecord decodes a record's RDATA from the tokens the zonefile scanner
// produced for it, dispatching on the header's type code.
func ParseRecord(header domain.Header, tokens []string) (Record, error) {
	data := New(header.Type)
	if err := data.Parse(tokens); err != nil {
		return Record{}, fmt.Errorf("parsing %s RDATA: %w", header.Type, err)
	}
	return Record{Header: header, Data: data}, nil
}
