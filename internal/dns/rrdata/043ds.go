package rrdata

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// DS is a delegation signer record (RFC 4034 section 5).
type DS struct {
	KeyTag     uint16
	Algorithm  uint8
	DigestType uint8
	Digest     []byte
}

func (*DS) Type() domain.RRType { return domain.RRTypeDS }

func (d *DS) Unpack(c *wire.Cursor) error {
	var err error
	if d.KeyTag, err = c.Uint16(); err != nil {
		return err
	}
	if d.Algorithm, err = c.Uint8(); err != nil {
		return err
	}
	if d.DigestType, err = c.Uint8(); err != nil {
		return err
	}
	if d.Digest, err = c.Bytes(c.Remaining()); err != nil {
		return err
	}
	if len(d.Digest) == 0 {
		return fmt.Errorf("DS record has an empty digest")
	}
	return nil
}

func (d *DS) Pack(w *wire.Writer) (int, error) {
	n := w.Uint16(d.KeyTag)
	n += w.Uint8(d.Algorithm)
	n += w.Uint8(d.DigestType)
	n += w.Write(d.Digest)
	return n, nil
}

func (d *DS) Parse(tokens []string) error {
	if len(tokens) < 4 {
		return fmt.Errorf("expected at least 4 fields (keytag algorithm digesttype digest), got %d", len(tokens))
	}
	var err error
	if d.KeyTag, err = parseUint16Field(tokens[0], "DS key tag"); err != nil {
		return err
	}
	if d.Algorithm, err = parseUint8Field(tokens[1], "DS algorithm"); err != nil {
		return err
	}
	if d.DigestType, err = parseUint8Field(tokens[2], "DS digest type"); err != nil {
		return err
	}
	digest, err := hex.DecodeString(strings.Join(tokens[3:], ""))
	if err != nil {
		return fmt.Errorf("invalid DS digest hex: %w", err)
	}
	d.Digest = digest
	return nil
}

func (d *DS) Present() string {
	return fmt.Sprintf("%d %d %d %s", d.KeyTag, d.Algorithm, d.DigestType, hex.EncodeToString(d.Digest))
}
