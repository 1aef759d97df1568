package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// RRType represents a DNS resource record type (e.g. A, AAAA, MX).
// See IANA DNS Parameters for assigned codes.
type RRType uint16

// DNS Resource Record Type constants
const (
	RRTypeA          RRType = 1   // A - IPv4 address
	RRTypeNS         RRType = 2   // NS - Name server
	RRTypeCNAME      RRType = 5   // CNAME - Canonical name
	RRTypeSOA        RRType = 6   // SOA - Start of authority
	RRTypePTR        RRType = 12  // PTR - Pointer
	RRTypeMX         RRType = 15  // MX - Mail exchange
	RRTypeTXT        RRType = 16  // TXT - Text
	RRTypeAAAA       RRType = 28  // AAAA - IPv6 address
	RRTypeSRV        RRType = 33  // SRV - Service
	RRTypeDS         RRType = 43  // DS - Delegation signer
	RRTypeSSHFP      RRType = 44  // SSHFP - SSH fingerprint
	RRTypeRRSIG      RRType = 46  // RRSIG - Resource record signature
	RRTypeNSEC       RRType = 47  // NSEC - Next secure
	RRTypeDNSKEY     RRType = 48  // DNSKEY - DNS key
	RRTypeNSEC3      RRType = 50  // NSEC3 - Hashed next secure
	RRTypeNSEC3PARAM RRType = 51  // NSEC3PARAM - NSEC3 parameters
	RRTypeTLSA       RRType = 52  // TLSA - TLS association
	RRTypeANY        RRType = 255 // ANY - Any type (query only)
	RRTypeCAA        RRType = 257 // CAA - Certificate authority authorization
)

var rrTypeNames = map[RRType]string{
	RRTypeA:          "A",
	RRTypeNS:         "NS",
	RRTypeCNAME:      "CNAME",
	RRTypeSOA:        "SOA",
	RRTypePTR:        "PTR",
	RRTypeMX:         "MX",
	RRTypeTXT:        "TXT",
	RRTypeAAAA:       "AAAA",
	RRTypeSRV:        "SRV",
	RRTypeDS:         "DS",
	RRTypeSSHFP:      "SSHFP",
	RRTypeRRSIG:      "RRSIG",
	RRTypeNSEC:       "NSEC",
	RRTypeDNSKEY:     "DNSKEY",
	RRTypeNSEC3:      "NSEC3",
	RRTypeNSEC3PARAM: "NSEC3PARAM",
	RRTypeTLSA:       "TLSA",
	RRTypeANY:        "ANY",
	RRTypeCAA:        "CAA",
}

var rrTypeCodes = func() map[string]RRType {
	m := make(map[string]RRType, len(rrTypeNames))
	for code, name := range rrTypeNames {
		m[name] = code
	}
	return m
}()

// String returns the textual representation of the RRType.
// Types with no assigned mnemonic render as "TYPE<n>" per RFC 3597.
func (t RRType) String() string {
	if name, ok := rrTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TYPE%d", uint16(t))
}

// RRTypeFromString converts a record type mnemonic (or a "TYPE<n>" numeric
// form) to its RRType value. The second return value reports whether the
// string named a record type at all.
func RRTypeFromString(s string) (RRType, bool) {
	s = strings.ToUpper(s)
	if t, ok := rrTypeCodes[s]; ok {
		return t, true
	}
	if rest, ok := strings.CutPrefix(s, "TYPE"); ok {
		n, err := strconv.ParseUint(rest, 10, 16)
		if err != nil {
			return 0, false
		}
		return RRType(n), true
	}
	return 0, false
}
