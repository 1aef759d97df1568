package rrdata

import (
	"fmt"

	"github.com/haukened/rr-codec/internal/dns/common/utils"
	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// PTR is a domain name pointer record, used for reverse DNS
// (RFC 1035 section 3.3.12).
type PTR struct {
	Target string
}

func (*PTR) Type() domain.RRType { return domain.RRTypePTR }

func (p *PTR) Unpack(c *wire.Cursor) error {
	name, err := c.Name()
	if err != nil {
		return err
	}
	p.Target = utils.CanonicalDNSName(name)
	return nil
}

func (p *PTR) Pack(w *wire.Writer) (int, error) {
	return w.Name(p.Target, true)
}

func (p *PTR) Parse(tokens []string) error {
	if err := wantTokens(tokens, 1, "target"); err != nil {
		return err
	}
	name := utils.CanonicalDNSName(tokens[0])
	if err := utils.ValidateDNSName(name); err != nil {
		return fmt.Errorf("invalid PTR target: %w", err)
	}
	p.Target = name
	return nil
}

func (p *PTR) Present() string {
	return utils.PresentationDNSName(p.Target)
}
