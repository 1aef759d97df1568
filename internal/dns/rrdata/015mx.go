package rrdata

import (
	"fmt"

	"github.com/haukened/rr-codec/internal/dns/common/utils"
	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// MX is a mail exchange record (RFC 1035 section 3.3.9).
type MX struct {
	Preference uint16
	Exchange   string
}

func (*MX) Type() domain.RRType { return domain.RRTypeMX }

func (m *MX) Unpack(c *wire.Cursor) error {
	pref, err := c.Uint16()
	if err != nil {
		return err
	}
	name, err := c.Name()
	if err != nil {
		return err
	}
	m.Preference = pref
	m.Exchange = utils.CanonicalDNSName(name)
	return nil
}

func (m *MX) Pack(w *wire.Writer) (int, error) {
	n := w.Uint16(m.Preference)
	en, err := w.Name(m.Exchange, true)
	if err != nil {
		return 0, fmt.Errorf("invalid MX exchange: %w", err)
	}
	return n + en, nil
}

func (m *MX) Parse(tokens []string) error {
	if err := wantTokens(tokens, 2, "preference exchange"); err != nil {
		return err
	}
	pref, err := parseUint16Field(tokens[0], "MX preference")
	if err != nil {
		return err
	}
	name := utils.CanonicalDNSName(tokens[1])
	if err := utils.ValidateDNSName(name); err != nil {
		return fmt.Errorf("invalid MX exchange: %w", err)
	}
	m.Preference = pref
	m.Exchange = name
	return nil
}

func (m *MX) Present() string {
	return fmt.Sprintf("%d %s", m.Preference, utils.PresentationDNSName(m.Exchange))
}
