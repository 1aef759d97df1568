package rrdata

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// Unknown carries the RDATA of any type without a registered codec as
// opaque bytes, presented in the RFC 3597 generic form:
//
//	\# <length> <hex>
//
// Round trips are lossless, so a zone full of types this package has
// never heard of still survives decode, store, and re-encode intact.
type Unknown struct {
	RRType domain.RRType
	Data   []byte
}

func (u *Unknown) Type() domain.RRType { return u.RRType }

func (u *Unknown) Unpack(c *wire.Cursor) error {
	data, err := c.Bytes(c.Remaining())
	if err != nil {
		return err
	}
	u.Data = data
	return nil
}

func (u *Unknown) Pack(w *wire.Writer) (int, error) {
	return w.Write(u.Data), nil
}

func (u *Unknown) Parse(tokens []string) error {
	if len(tokens) < 2 {
		return fmt.Errorf(`expected generic RDATA form \# <length> [hex...], got %d fields`, len(tokens))
	}
	// Lexer escape processing turns \# into #, but accept the raw form
	// too for callers tokenizing by hand.
	if tokens[0] != "#" && tokens[0] != `\#` {
		return fmt.Errorf(`generic RDATA must begin with \#, got %q`, tokens[0])
	}
	length, err := strconv.ParseUint(tokens[1], 10, 16)
	if err != nil {
		return fmt.Errorf("invalid generic RDATA length %q: %w", tokens[1], err)
	}
	data, err := hex.DecodeString(strings.Join(tokens[2:], ""))
	if err != nil {
		return fmt.Errorf("invalid generic RDATA hex: %w", err)
	}
	if len(data) != int(length) {
		return fmt.Errorf("generic RDATA length %d does not match %d hex-encoded bytes", length, len(data))
	}
	u.Data = data
	return nil
}

func (u *Unknown) Present() string {
	if len(u.Data) == 0 {
		return `\# 0`
	}
	return fmt.Sprintf(`\# %d %s`, len(u.Data), hex.EncodeToString(u.Data))
}
