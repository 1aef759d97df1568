package rrdata

import (
	"fmt"
	"net"

	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// A is an IPv4 host address record (RFC 1035 section 3.4.1).
type A struct {
	Addr net.IP
}

func (*A) Type() domain.RRType { return domain.RRTypeA }

func (a *A) Unpack(c *wire.Cursor) error {
	b, err := c.Bytes(4)
	if err != nil {
		return err
	}
	a.Addr = net.IP(b)
	return nil
}

func (a *A) Pack(w *wire.Writer) (int, error) {
	ip := a.Addr.To4()
	if ip == nil {
		return 0, fmt.Errorf("invalid A record IP: %s", a.Addr)
	}
	return w.Write(ip), nil
}

func (a *A) Parse(tokens []string) error {
	if err := wantTokens(tokens, 1, "address"); err != nil {
		return err
	}
	ip := net.ParseIP(tokens[0])
	if !isIPv4(ip) {
		return fmt.Errorf("invalid A record IP: %s", tokens[0])
	}
	a.Addr = ip.To4()
	return nil
}

func (a *A) Present() string {
	return a.Addr.String()
}
