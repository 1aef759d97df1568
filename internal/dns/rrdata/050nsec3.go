package rrdata

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// NSEC3 is the hashed authenticated-denial record (RFC 5155 section 3).
// The salt presents as lowercase hex or "-" when empty, and the next
// hashed owner presents as unpadded base32hex.
type NSEC3 struct {
	Hash       uint8
	Flags      uint8
	Iterations uint16
	Salt       []byte
	NextHashed []byte
	Types      []domain.RRType
}

func (*NSEC3) Type() domain.RRType { return domain.RRTypeNSEC3 }

func (n *NSEC3) Unpack(c *wire.Cursor) error {
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
	hashLen, err := c.Uint8()
	if err != nil {
		return err
	}
	if hashLen == 0 {
		return fmt.Errorf("NSEC3 record has an empty next hashed owner")
	}
	if n.NextHashed, err = c.Bytes(int(hashLen)); err != nil {
		return err
	}
	if n.Types, err = UnpackTypeBitmap(c); err != nil {
		return err
	}
	return nil
}

func (n *NSEC3) Pack(w *wire.Writer) (int, error) {
	if len(n.Salt) > 255 {
		return 0, fmt.Errorf("NSEC3 salt exceeds 255 octets: %d", len(n.Salt))
	}
	if len(n.NextHashed) == 0 || len(n.NextHashed) > 255 {
		return 0, fmt.Errorf("NSEC3 next hashed owner length %d outside 1..255", len(n.NextHashed))
	}
	written := w.Uint8(n.Hash)
	written += w.Uint8(n.Flags)
	written += w.Uint16(n.Iterations)
	written += w.Uint8(uint8(len(n.Salt)))
	written += w.Write(n.Salt)
	written += w.Uint8(uint8(len(n.NextHashed)))
	written += w.Write(n.NextHashed)
	written += PackTypeBitmap(w, n.Types)
	return written, nil
}

// parseNSEC3Salt decodes the presentation salt, where "-" means empty.
func parseNSEC3Salt(tok string) ([]byte, error) {
	if tok == "-" {
		return nil, nil
	}
	salt, err := hex.DecodeString(tok)
	if err != nil {
		return nil, fmt.Errorf("invalid NSEC3 salt hex %q: %w", tok, err)
	}
	return salt, nil
}

func (n *NSEC3) Parse(tokens []string) error {
	if len(tokens) < 5 {
		return fmt.Errorf("expected at least 5 fields (hash flags iterations salt next-hashed [types...]), got %d", len(tokens))
	}
	var err error
	if n.Hash, err = parseUint8Field(tokens[0], "NSEC3 hash algorithm"); err != nil {
		return err
	}
	if n.Flags, err = parseUint8Field(tokens[1], "NSEC3 flags"); err != nil {
		return err
	}
	if n.Iterations, err = parseUint16Field(tokens[2], "NSEC3 iterations"); err != nil {
		return err
	}
	if n.Salt, err = parseNSEC3Salt(tokens[3]); err != nil {
		return err
	}
	next, err := base32HexNoPad.DecodeString(strings.ToUpper(tokens[4]))
	if err != nil {
		return fmt.Errorf("invalid NSEC3 next hashed owner base32hex %q: %w", tokens[4], err)
	}
	if len(next) == 0 {
		return fmt.Errorf("NSEC3 record has an empty next hashed owner")
	}
	n.NextHashed = next
	if n.Types, err = parseTypeBitmap(tokens[5:]); err != nil {
		return err
	}
	return nil
}

func (n *NSEC3) Present() string {
	salt := "-"
	if len(n.Salt) > 0 {
		salt = hex.EncodeToString(n.Salt)
	}
	fields := []string{
		strconv.Itoa(int(n.Hash)),
		strconv.Itoa(int(n.Flags)),
		strconv.Itoa(int(n.Iterations)),
		salt,
		strings.ToLower(base32HexNoPad.EncodeToString(n.NextHashed)),
	}
	if bitmap := presentTypeBitmap(n.Types); bitmap != "" {
		fields = append(fields, bitmap)
	}
	return strings.Join(fields, " ")
}
