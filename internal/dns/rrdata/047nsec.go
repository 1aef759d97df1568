package rrdata

import (
	"fmt"

	"github.com/haukened/rr-codec/internal/dns/common/utils"
	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// NSEC names the next owner in canonical zone order and lists the types
// present at this owner (RFC 4034 section 4). The next domain name is
// never compressed.
type NSEC struct {
	NextDomain string
	Types      []domain.RRType
}

func (*NSEC) Type() domain.RRType { return domain.RRTypeNSEC }

func (n *NSEC) Unpack(c *wire.Cursor) error {
	next, err := c.Name()
	if err != nil {
		return fmt.Errorf("NSEC next domain name: %w", err)
	}
	n.NextDomain = utils.CanonicalDNSName(next)
	types, err := UnpackTypeBitmap(c)
	if err != nil {
		return err
	}
	n.Types = types
	return nil
}

func (n *NSEC) Pack(w *wire.Writer) (int, error) {
	written, err := w.Name(n.NextDomain, false)
	if err != nil {
		return 0, fmt.Errorf("invalid NSEC next domain name: %w", err)
	}
	written += PackTypeBitmap(w, n.Types)
	return written, nil
}

func (n *NSEC) Parse(tokens []string) error {
	if len(tokens) < 1 {
		return fmt.Errorf("expected at least 1 field (next-domain [types...]), got 0")
	}
	next := utils.CanonicalDNSName(tokens[0])
	if err := utils.ValidateDNSName(next); err != nil {
		return fmt.Errorf("invalid NSEC next domain name: %w", err)
	}
	n.NextDomain = next
	types, err := parseTypeBitmap(tokens[1:])
	if err != nil {
		return err
	}
	n.Types = types
	return nil
}

func (n *NSEC) Present() string {
	out := utils.PresentationDNSName(n.NextDomain)
	if bitmap := presentTypeBitmap(n.Types); bitmap != "" {
		out += " " + bitmap
	}
	return out
}
