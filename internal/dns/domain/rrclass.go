package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// RRClass represents a DNS class (usually IN for Internet).
type RRClass uint16

// DNS Resource Record Class constants
const (
	RRClassIN   RRClass = 1   // IN - Internet
	RRClassCH   RRClass = 3   // CH - Chaos
	RRClassHS   RRClass = 4   // HS - Hesiod
	RRClassNONE RRClass = 254 // NONE - No class
	RRClassANY  RRClass = 255 // ANY - Any class (query only)
)

// String returns the textual representation of the RRClass.
// Classes with no assigned mnemonic render as "CLASS<n>" per RFC 3597.
func (c RRClass) String() string {
	switch c {
	case RRClassIN:
		return "IN"
	case RRClassCH:
		return "CH"
	case RRClassHS:
		return "HS"
	case RRClassNONE:
		return "NONE"
	case RRClassANY:
		return "ANY"
	default:
		return fmt.Sprintf("CLASS%d", uint16(c))
	}
}

// RRClassFromString converts a class mnemonic (or a "CLASS<n>" numeric form)
// to its RRClass value. The second return value reports whether the string
// named a class at all.
func RRClassFromString(s string) (RRClass, bool) {
	switch strings.ToUpper(s) {
	case "IN":
		return RRClassIN, true
	case "CH":
		return RRClassCH, true
	case "HS":
		return RRClassHS, true
	case "NONE":
		return RRClassNONE, true
	case "ANY":
		return RRClassANY, true
	}
	if rest, ok := strings.CutPrefix(strings.ToUpper(s), "CLASS"); ok {
		n, err := strconv.ParseUint(rest, 10, 16)
		if err != nil {
			return 0, false
		}
		return RRClass(n), true
	}
	return 0, false
}
