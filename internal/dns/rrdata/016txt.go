package rrdata

import (
	"fmt"
	"strings"

	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// TXT is a text record: one or more character-strings of at most 255 octets
// each (RFC 1035 section 3.3.14).
type TXT struct {
	Segments []string
}

func (*TXT) Type() domain.RRType { return domain.RRTypeTXT }

func (t *TXT) Unpack(c *wire.Cursor) error {
	var segments []string
	for c.Remaining() > 0 {
		n, err := c.Uint8()
		if err != nil {
			return err
		}
		seg, err := c.Bytes(int(n))
		if err != nil {
			return err
		}
		segments = append(segments, string(seg))
	}
	if len(segments) == 0 {
		return fmt.Errorf("TXT record must contain at least one segment")
	}
	t.Segments = segments
	return nil
}

func (t *TXT) Pack(w *wire.Writer) (int, error) {
	if len(t.Segments) == 0 {
		return 0, fmt.Errorf("TXT record must contain at least one segment")
	}
	n := 0
	for _, seg := range t.Segments {
		if len(seg) > 255 {
			return 0, fmt.Errorf("TXT segment too long: %d bytes", len(seg))
		}
		n += w.Uint8(uint8(len(seg)))
		n += w.Write([]byte(seg))
	}
	return n, nil
}

func (t *TXT) Parse(tokens []string) error {
	for _, tok := range tokens {
		if len(tok) > 255 {
			return fmt.Errorf("TXT segment too long: %d bytes", len(tok))
		}
	}
	t.Segments = append([]string(nil), tokens...)
	return nil
}

func (t *TXT) Present() string {
	quoted := make([]string, len(t.Segments))
	for i, seg := range t.Segments {
		quoted[i] = quoteString(seg)
	}
	return strings.Join(quoted, " ")
}
