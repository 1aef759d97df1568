package rrdata

import (
	"fmt"

	"github.com/haukened/rr-codec/internal/dns/common/utils"
	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// NS is an authoritative name server record (RFC 1035 section 3.3.11).
type NS struct {
	NameServer string
}

func (*NS) Type() domain.RRType { return domain.RRTypeNS }

func (ns *NS) Unpack(c *wire.Cursor) error {
	name, err := c.Name()
	if err != nil {
		return err
	}
	ns.NameServer = utils.CanonicalDNSName(name)
	return nil
}

func (ns *NS) Pack(w *wire.Writer) (int, error) {
	return w.Name(ns.NameServer, true)
}

func (ns *NS) Parse(tokens []string) error {
	if err := wantTokens(tokens, 1, "nameserver"); err != nil {
		return err
	}
	name := utils.CanonicalDNSName(tokens[0])
	if err := utils.ValidateDNSName(name); err != nil {
		return fmt.Errorf("invalid NS nameserver: %w", err)
	}
	ns.NameServer = name
	return nil
}

func (ns *NS) Present() string {
	return utils.PresentationDNSName(ns.NameServer)
}
