package rrdata

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// DNSKEY holds a zone's public signing key (RFC 4034 section 2).
type DNSKEY struct {
	Flags     uint16
	Protocol  uint8
	Algorithm uint8
	PublicKey []byte
}

func (*DNSKEY) Type() domain.RRType { return domain.RRTypeDNSKEY }

func (d *DNSKEY) Unpack(c *wire.Cursor) error {
	var err error
	if d.Flags, err = c.Uint16(); err != nil {
		return err
	}
	if d.Protocol, err = c.Uint8(); err != nil {
		return err
	}
	if d.Algorithm, err = c.Uint8(); err != nil {
		return err
	}
	if d.PublicKey, err = c.Bytes(c.Remaining()); err != nil {
		return err
	}
	if len(d.PublicKey) == 0 {
		return fmt.Errorf("DNSKEY record has an empty public key")
	}
	return nil
}

func (d *DNSKEY) Pack(w *wire.Writer) (int, error) {
	n := w.Uint16(d.Flags)
	n += w.Uint8(d.Protocol)
	n += w.Uint8(d.Algorithm)
	n += w.Write(d.PublicKey)
	return n, nil
}

func (d *DNSKEY) Parse(tokens []string) error {
	if len(tokens) < 4 {
		return fmt.Errorf("expected at least 4 fields (flags protocol algorithm key), got %d", len(tokens))
	}
	var err error
	if d.Flags, err = parseUint16Field(tokens[0], "DNSKEY flags"); err != nil {
		return err
	}
	if d.Protocol, err = parseUint8Field(tokens[1], "DNSKEY protocol"); err != nil {
		return err
	}
	if d.Algorithm, err = parseUint8Field(tokens[2], "DNSKEY algorithm"); err != nil {
		return err
	}
	key, err := base64.StdEncoding.DecodeString(strings.Join(tokens[3:], ""))
	if err != nil {
		return fmt.Errorf("invalid DNSKEY public key base64: %w", err)
	}
	d.PublicKey = key
	return nil
}

func (d *DNSKEY) Present() string {
	return strings.Join([]string{
		strconv.Itoa(int(d.Flags)),
		strconv.Itoa(int(d.Protocol)),
		strconv.Itoa(int(d.Algorithm)),
		base64.StdEncoding.EncodeToString(d.PublicKey),
	}, " ")
}
