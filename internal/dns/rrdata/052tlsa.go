package rrdata

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// TLSA associates a TLS certificate or public key with an endpoint
// (RFC 6698 section 2).
type TLSA struct {
	Usage        uint8
	Selector     uint8
	MatchingType uint8
	Certificate  []byte
}

func (*TLSA) Type() domain.RRType { return domain.RRTypeTLSA }

func (t *TLSA) Unpack(c *wire.Cursor) error {
	var err error
	if t.Usage, err = c.Uint8(); err != nil {
		return err
	}
	if t.Selector, err = c.Uint8(); err != nil {
		return err
	}
	if t.MatchingType, err = c.Uint8(); err != nil {
		return err
	}
	if t.Certificate, err = c.Bytes(c.Remaining()); err != nil {
		return err
	}
	if len(t.Certificate) == 0 {
		return fmt.Errorf("TLSA record has empty certificate association data")
	}
	return nil
}

func (t *TLSA) Pack(w *wire.Writer) (int, error) {
	n := w.Uint8(t.Usage)
	n += w.Uint8(t.Selector)
	n += w.Uint8(t.MatchingType)
	n += w.Write(t.Certificate)
	return n, nil
}

func (t *TLSA) Parse(tokens []string) error {
	if len(tokens) < 4 {
		return fmt.Errorf("expected at least 4 fields (usage selector matching-type certificate), got %d", len(tokens))
	}
	var err error
	if t.Usage, err = parseUint8Field(tokens[0], "TLSA usage"); err != nil {
		return err
	}
	if t.Selector, err = parseUint8Field(tokens[1], "TLSA selector"); err != nil {
		return err
	}
	if t.MatchingType, err = parseUint8Field(tokens[2], "TLSA matching type"); err != nil {
		return err
	}
	cert, err := hex.DecodeString(strings.Join(tokens[3:], ""))
	if err != nil {
		return fmt.Errorf("invalid TLSA certificate association hex: %w", err)
	}
	if len(cert) == 0 {
		return fmt.Errorf("TLSA record has empty certificate association data")
	}
	t.Certificate = cert
	return nil
}

func (t *TLSA) Present() string {
	return strings.Join([]string{
		strconv.Itoa(int(t.Usage)),
		strconv.Itoa(int(t.Selector)),
		strconv.Itoa(int(t.MatchingType)),
		hex.EncodeToString(t.Certificate),
	}, " ")
}
