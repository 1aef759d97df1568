package rrdata

import (
	"fmt"
	"strings"

	"github.com/haukened/rr-codec/internal/dns/common/utils"
	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// SOA is a start-of-authority record (RFC 1035 section 3.3.13).
type SOA struct {
	MName   string // primary name server
	RName   string // responsible mailbox, encoded as a domain name
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

func (*SOA) Type() domain.RRType { return domain.RRTypeSOA }

func (s *SOA) Unpack(c *wire.Cursor) error {
	mname, err := c.Name()
	if err != nil {
		return fmt.Errorf("SOA mname: %w", err)
	}
	rname, err := c.Name()
	if err != nil {
		return fmt.Errorf("SOA rname: %w", err)
	}
	s.MName = utils.CanonicalDNSName(mname)
	s.RName = utils.CanonicalDNSName(rname)
	for _, field := range []*uint32{&s.Serial, &s.Refresh, &s.Retry, &s.Expire, &s.Minimum} {
		v, err := c.Uint32()
		if err != nil {
			return err
		}
		*field = v
	}
	return nil
}

func (s *SOA) Pack(w *wire.Writer) (int, error) {
	n, err := w.Name(s.MName, true)
	if err != nil {
		return 0, fmt.Errorf("invalid SOA mname: %w", err)
	}
	rn, err := w.Name(s.RName, true)
	if err != nil {
		return 0, fmt.Errorf("invalid SOA rname: %w", err)
	}
	n += rn
	for _, v := range []uint32{s.Serial, s.Refresh, s.Retry, s.Expire, s.Minimum} {
		n += w.Uint32(v)
	}
	return n, nil
}

func (s *SOA) Parse(tokens []string) error {
	if err := wantTokens(tokens, 7, "mname rname serial refresh retry expire minimum"); err != nil {
		return err
	}
	mname := utils.CanonicalDNSName(tokens[0])
	if err := utils.ValidateDNSName(mname); err != nil {
		return fmt.Errorf("invalid SOA mname: %w", err)
	}
	rname := utils.CanonicalDNSName(tokens[1])
	if err := utils.ValidateDNSName(rname); err != nil {
		return fmt.Errorf("invalid SOA rname: %w", err)
	}
	s.MName = mname
	s.RName = rname
	fields := []struct {
		dst  *uint32
		name string
	}{
		{&s.Serial, "SOA serial"},
		{&s.Refresh, "SOA refresh"},
		{&s.Retry, "SOA retry"},
		{&s.Expire, "SOA expire"},
		{&s.Minimum, "SOA minimum"},
	}
	for i, f := range fields {
		v, err := parseUint32Field(tokens[2+i], f.name)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}

func (s *SOA) Present() string {
	return strings.Join([]string{
		utils.PresentationDNSName(s.MName),
		utils.PresentationDNSName(s.RName),
		fmt.Sprintf("%d %d %d %d %d", s.Serial, s.Refresh, s.Retry, s.Expire, s.Minimum),
	}, " ")
}
