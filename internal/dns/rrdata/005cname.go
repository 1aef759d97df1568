package rrdata

import (
	"fmt"

	"github.com/haukened/rr-codec/internal/dns/common/utils"
	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// CNAME is a canonical name (alias) record (RFC 1035 section 3.3.1).
type CNAME struct {
	Target string
}

func (*CNAME) Type() domain.RRType { return domain.RRTypeCNAME }

func (cn *CNAME) Unpack(c *wire.Cursor) error {
	name, err := c.Name()
	if err != nil {
		return err
	}
	cn.Target = utils.CanonicalDNSName(name)
	return nil
}

func (cn *CNAME) Pack(w *wire.Writer) (int, error) {
	return w.Name(cn.Target, true)
}

func (cn *CNAME) Parse(tokens []string) error {
	if err := wantTokens(tokens, 1, "target"); err != nil {
		return err
	}
	name := utils.CanonicalDNSName(tokens[0])
	if err := utils.ValidateDNSName(name); err != nil {
		return fmt.Errorf("invalid CNAME target: %w", err)
	}
	cn.Target = name
	return nil
}

func (cn *CNAME) Present() string {
	return utils.PresentationDNSName(cn.Target)
}
