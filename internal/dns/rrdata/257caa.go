package rrdata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// CAA restricts which certificate authorities may issue for a domain
// (RFC 8659 section 4). The tag is a short case-insensitive keyword
// like "issue" or "iodef"; the value is free-form bytes.
type CAA struct {
	Flag  uint8
	Tag   string
	Value string
}

func (*CAA) Type() domain.RRType { return domain.RRTypeCAA }

func (r *CAA) Unpack(c *wire.Cursor) error {
	var err error
	if r.Flag, err = c.Uint8(); err != nil {
		return err
	}
	tagLen, err := c.Uint8()
	if err != nil {
		return err
	}
	if tagLen == 0 {
		return fmt.Errorf("CAA record has an empty tag")
	}
	tag, err := c.Bytes(int(tagLen))
	if err != nil {
		return err
	}
	r.Tag = string(tag)
	value, err := c.Bytes(c.Remaining())
	if err != nil {
		return err
	}
	r.Value = string(value)
	return nil
}

func (r *CAA) Pack(w *wire.Writer) (int, error) {
	if len(r.Tag) == 0 || len(r.Tag) > 255 {
		return 0, fmt.Errorf("CAA tag length %d outside 1..255", len(r.Tag))
	}
	n := w.Uint8(r.Flag)
	n += w.Uint8(uint8(len(r.Tag)))
	n += w.Write([]byte(r.Tag))
	n += w.Write([]byte(r.Value))
	return n, nil
}

func (r *CAA) Parse(tokens []string) error {
	if err := wantTokens(tokens, 3, "flag tag value"); err != nil {
		return err
	}
	var err error
	if r.Flag, err = parseUint8Field(tokens[0], "CAA flag"); err != nil {
		return err
	}
	if len(tokens[1]) == 0 || len(tokens[1]) > 255 {
		return fmt.Errorf("CAA tag length %d outside 1..255", len(tokens[1]))
	}
	r.Tag = tokens[1]
	r.Value = tokens[2]
	return nil
}

func (r *CAA) Present() string {
	return strings.Join([]string{
		strconv.Itoa(int(r.Flag)),
		r.Tag,
		quoteString(r.Value),
	}, " ")
}
