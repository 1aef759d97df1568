package rrdata

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// NSEC3PARAM carries the NSEC3 hashing parameters at the zone apex
// (RFC 5155 section 4).
type NSEC3PARAM struct {
	Hash       uint8
	Flags      uint8
	Iterations uint16
	Salt       []byte
}

func (*NSEC3PARAM) Type() domain.RRType { return domain.RRTypeNSEC3PARAM }

func (n *NSEC3PARAM) Unpack(c *wire.Cursor) error {
	var err error
	if n.Hash, err = c.Uint8(); err != nil {
		return err
	}
	if n.Flags, err = c.Uint8(); err != nil {
		return err
	}
	if n.Iterations, err = c.Uint16(); err != nil {
		return err
	}
	saltLen, err := c.Uint8()
	if err != nil {
		return err
	}
	if n.Salt, err = c.Bytes(int(saltLen)); err != nil {
		return err
	}
	return nil
}

func (n *NSEC3PARAM) Pack(w *wire.Writer) (int, error) {
	if len(n.Salt) > 255 {
		return 0, fmt.Errorf("NSEC3PARAM salt exceeds 255 octets: %d", len(n.Salt))
	}
	written := w.Uint8(n.Hash)
	written += w.Uint8(n.Flags)
	written += w.Uint16(n.Iterations)
	written += w.Uint8(uint8(len(n.Salt)))
	written += w.Write(n.Salt)
	return written, nil
}

func (n *NSEC3PARAM) Parse(tokens []string) error {
	if err := wantTokens(tokens, 4, "hash flags iterations salt"); err != nil {
		return err
	}
	var err error
	if n.Hash, err = parseUint8Field(tokens[0], "NSEC3PARAM hash algorithm"); err != nil {
		return err
	}
	if n.Flags, err = parseUint8Field(tokens[1], "NSEC3PARAM flags"); err != nil {
		return err
	}
	if n.Iterations, err = parseUint16Field(tokens[2], "NSEC3PARAM iterations"); err != nil {
		return err
	}
	if n.Salt, err = parseNSEC3Salt(tokens[3]); err != nil {
		return err
	}
	return nil
}

func (n *NSEC3PARAM) Present() string {
	salt := "-"
	if len(n.Salt) > 0 {
		salt = hex.EncodeToString(n.Salt)
	}
	return strings.Join([]string{
		strconv.Itoa(int(n.Hash)),
		strconv.Itoa(int(n.Flags)),
		strconv.Itoa(int(n.Iterations)),
		salt,
	}, " ")
}
