package rrdata

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/haukened/rr-codec/internal/dns/common/utils"
	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// sigTimeLayout is the YYYYMMDDHHmmSS presentation form of RRSIG timestamps
// (RFC 4034 section 3.2).
const sigTimeLayout = "20060102150405"

// RRSIG is a resource record signature (RFC 4034 section 3). The signer
// name is part of signed data, so it is always packed uncompressed;
// compression would make the encoding context-dependent and break
// signature reproducibility.
type RRSIG struct {
	TypeCovered domain.RRType
	Algorithm   uint8
	Labels      uint8
	OrigTTL     uint32
	Expiration  uint32
	Inception   uint32
	KeyTag      uint16
	SignerName  string
	Signature   []byte
}

func (*RRSIG) Type() domain.RRType { return domain.RRTypeRRSIG }

func (r *RRSIG) Unpack(c *wire.Cursor) error {
	covered, err := c.Uint16()
	if err != nil {
		return err
	}
	r.TypeCovered = domain.RRType(covered)
	if r.Algorithm, err = c.Uint8(); err != nil {
		return err
	}
	if r.Labels, err = c.Uint8(); err != nil {
		return err
	}
	if r.OrigTTL, err = c.Uint32(); err != nil {
		return err
	}
	if r.Expiration, err = c.Uint32(); err != nil {
		return err
	}
	if r.Inception, err = c.Uint32(); err != nil {
		return err
	}
	if r.KeyTag, err = c.Uint16(); err != nil {
		return err
	}
	signer, err := c.Name()
	if err != nil {
		return fmt.Errorf("RRSIG signer name: %w", err)
	}
	r.SignerName = utils.CanonicalDNSName(signer)
	if r.Signature, err = c.Bytes(c.Remaining()); err != nil {
		return err
	}
	if len(r.Signature) == 0 {
		return fmt.Errorf("RRSIG record has an empty signature")
	}
	return nil
}

func (r *RRSIG) Pack(w *wire.Writer) (int, error) {
	n := w.Uint16(uint16(r.TypeCovered))
	n += w.Uint8(r.Algorithm)
	n += w.Uint8(r.Labels)
	n += w.Uint32(r.OrigTTL)
	n += w.Uint32(r.Expiration)
	n += w.Uint32(r.Inception)
	n += w.Uint16(r.KeyTag)
	sn, err := w.Name(r.SignerName, false)
	if err != nil {
		return 0, fmt.Errorf("invalid RRSIG signer name: %w", err)
	}
	n += sn
	n += w.Write(r.Signature)
	return n, nil
}

// parseSigTime accepts the YYYYMMDDHHmmSS form or a bare seconds-since-epoch
// integer, both permitted by RFC 4034.
func parseSigTime(tok, field string) (uint32, error) {
	if len(tok) == len(sigTimeLayout) {
		t, err := time.Parse(sigTimeLayout, tok)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q: %w", field, tok, err)
		}
		return uint32(t.Unix()), nil
	}
	return parseUint32Field(tok, field)
}

func (r *RRSIG) Parse(tokens []string) error {
	if len(tokens) < 9 {
		return fmt.Errorf("expected at least 9 fields (type alg labels origttl expiration inception keytag signer signature), got %d", len(tokens))
	}
	covered, ok := domain.RRTypeFromString(tokens[0])
	if !ok {
		return fmt.Errorf("invalid RRSIG type covered %q", tokens[0])
	}
	r.TypeCovered = covered
	var err error
	if r.Algorithm, err = parseUint8Field(tokens[1], "RRSIG algorithm"); err != nil {
		return err
	}
	if r.Labels, err = parseUint8Field(tokens[2], "RRSIG labels"); err != nil {
		return err
	}
	if r.OrigTTL, err = parseUint32Field(tokens[3], "RRSIG original TTL"); err != nil {
		return err
	}
	if r.Expiration, err = parseSigTime(tokens[4], "RRSIG expiration"); err != nil {
		return err
	}
	if r.Inception, err = parseSigTime(tokens[5], "RRSIG inception"); err != nil {
		return err
	}
	if r.KeyTag, err = parseUint16Field(tokens[6], "RRSIG key tag"); err != nil {
		return err
	}
	signer := utils.CanonicalDNSName(tokens[7])
	if err := utils.ValidateDNSName(signer); err != nil {
		return fmt.Errorf("invalid RRSIG signer name: %w", err)
	}
	r.SignerName = signer
	sig, err := base64.StdEncoding.DecodeString(strings.Join(tokens[8:], ""))
	if err != nil {
		return fmt.Errorf("invalid RRSIG signature base64: %w", err)
	}
	r.Signature = sig
	return nil
}

func (r *RRSIG) Present() string {
	return strings.Join([]string{
		r.TypeCovered.String(),
		strconv.Itoa(int(r.Algorithm)),
		strconv.Itoa(int(r.Labels)),
		strconv.FormatUint(uint64(r.OrigTTL), 10),
		time.Unix(int64(r.Expiration), 0).UTC().Format(sigTimeLayout),
		time.Unix(int64(r.Inception), 0).UTC().Format(sigTimeLayout),
		strconv.Itoa(int(r.KeyTag)),
		utils.PresentationDNSName(r.SignerName),
		base64.StdEncoding.EncodeToString(r.Signature),
	}, " ")
}
