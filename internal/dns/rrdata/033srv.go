package rrdata

import (
	"fmt"

	"github.com/haukened/rr-codec/internal/dns/common/utils"
	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// SRV is a service location record (RFC 2782). The target name is never
// compressed on the wire.
type SRV struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   string
}

func (*SRV) Type() domain.RRType { return domain.RRTypeSRV }

func (s *SRV) Unpack(c *wire.Cursor) error {
	for _, field := range []*uint16{&s.Priority, &s.Weight, &s.Port} {
		v, err := c.Uint16()
		if err != nil {
			return err
		}
		*field = v
	}
	name, err := c.Name()
	if err != nil {
		return err
	}
	s.Target = utils.CanonicalDNSName(name)
	return nil
}

func (s *SRV) Pack(w *wire.Writer) (int, error) {
	n := w.Uint16(s.Priority)
	n += w.Uint16(s.Weight)
	n += w.Uint16(s.Port)
	tn, err := w.Name(s.Target, false)
	if err != nil {
		return 0, fmt.Errorf("invalid SRV target: %w", err)
	}
	return n + tn, nil
}

func (s *SRV) Parse(tokens []string) error {
	if err := wantTokens(tokens, 4, "priority weight port target"); err != nil {
		return err
	}
	var err error
	if s.Priority, err = parseUint16Field(tokens[0], "SRV priority"); err != nil {
		return err
	}
	if s.Weight, err = parseUint16Field(tokens[1], "SRV weight"); err != nil {
		return err
	}
	if s.Port, err = parseUint16Field(tokens[2], "SRV port"); err != nil {
		return err
	}
	name := utils.CanonicalDNSName(tokens[3])
	if err := utils.ValidateDNSName(name); err != nil {
		return fmt.Errorf("invalid SRV target: %w", err)
	}
	s.Target = name
	return nil
}

func (s *SRV) Present() string {
	return fmt.Sprintf("%d %d %d %s", s.Priority, s.Weight, s.Port, utils.PresentationDNSName(s.Target))
}
