package rrdata

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// SSHFP is an SSH public key fingerprint record (RFC 4255).
type SSHFP struct {
	Algorithm   uint8
	FingerType  uint8
	Fingerprint []byte
}

func (*SSHFP) Type() domain.RRType { return domain.RRTypeSSHFP }

func (s *SSHFP) Unpack(c *wire.Cursor) error {
	var err error
	if s.Algorithm, err = c.Uint8(); err != nil {
		return err
	}
	if s.FingerType, err = c.Uint8(); err != nil {
		return err
	}
	if s.Fingerprint, err = c.Bytes(c.Remaining()); err != nil {
		return err
	}
	if len(s.Fingerprint) == 0 {
		return fmt.Errorf("SSHFP record has an empty fingerprint")
	}
	return nil
}

func (s *SSHFP) Pack(w *wire.Writer) (int, error) {
	n := w.Uint8(s.Algorithm)
	n += w.Uint8(s.FingerType)
	n += w.Write(s.Fingerprint)
	return n, nil
}

func (s *SSHFP) Parse(tokens []string) error {
	if len(tokens) < 3 {
		return fmt.Errorf("expected at least 3 fields (algorithm fptype fingerprint), got %d", len(tokens))
	}
	var err error
	if s.Algorithm, err = parseUint8Field(tokens[0], "SSHFP algorithm"); err != nil {
		return err
	}
	if s.FingerType, err = parseUint8Field(tokens[1], "SSHFP fingerprint type"); err != nil {
		return err
	}
	fp, err := hex.DecodeString(strings.Join(tokens[2:], ""))
	if err != nil {
		return fmt.Errorf("invalid SSHFP fingerprint hex: %w", err)
	}
	s.Fingerprint = fp
	return nil
}

func (s *SSHFP) Present() string {
	return fmt.Sprintf("%d %d %s", s.Algorithm, s.FingerType, hex.EncodeToString(s.Fingerprint))
}
