package rrdata

import (
	"fmt"
	"net"

	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// AAAA is an IPv6 host address record (RFC 3596).
type AAAA struct {
	Addr net.IP
}

func (*AAAA) Type() domain.RRType { return domain.RRTypeAAAA }

func (a *AAAA) Unpack(c *wire.Cursor) error {
	b, err := c.Bytes(16)
	if err != nil {
		return err
	}
	a.Addr = net.IP(b)
	return nil
}

func (a *AAAA) Pack(w *wire.Writer) (int, error) {
	if !isIPv6(a.Addr) {
		return 0, fmt.Errorf("invalid AAAA record IP: %s", a.Addr)
	}
	return w.Write(a.Addr.To16()), nil
}

func (a *AAAA) Parse(tokens []string) error {
	if err := wantTokens(tokens, 1, "address"); err != nil {
		return err
	}
	ip := net.ParseIP(tokens[0])
	if !isIPv6(ip) {
		return fmt.Errorf("invalid AAAA record IP: %s", tokens[0])
	}
	a.Addr = ip.To16()
	return nil
}

func (a *AAAA) Present() string {
	return a.Addr.String()
}
