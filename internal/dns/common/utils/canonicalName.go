package utils

import (
	"fmt"
	"strings"
)

// CanonicalDNSName returns a DNS name in canonical form:
// - Lowercased
// - Trimmed of surrounding whitespace
// - No trailing dot
// The root name canonicalizes to the empty string. This is the form used
// for case-insensitive comparison, compression-dictionary keys, and the
// ordering required when RDATA feeds a digest or signature.
func CanonicalDNSName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	// remove all trailing dots
	for strings.HasSuffix(name, ".") {
		name = strings.TrimSuffix(name, ".")
	}
	return name
}

// PresentationDNSName returns the fully-qualified display form of a
// canonical name: a trailing dot is always present, and the root renders
// as a bare ".".
func PresentationDNSName(name string) string {
	name = CanonicalDNSName(name)
	return name + "."
}

// ValidateDNSName checks label and total-length constraints on a canonical
// name: each label 1-63 octets, and the encoded form (length octets plus a
// terminating root label) at most 255 octets. The empty string is the root
// and is always valid.
func ValidateDNSName(name string) error {
	if name == "" {
		return nil
	}
	encoded := 1 // terminating root label
	for _, label := range strings.Split(name, ".") {
		if len(label) == 0 {
			return fmt.Errorf("empty label in name %q", name)
		}
		if len(label) > 63 {
			return fmt.Errorf("label too long (%d > 63) in name %q", len(label), name)
		}
		encoded += 1 + len(label)
	}
	if encoded > 255 {
		return fmt.Errorf("encoded name too long (%d > 255): %q", encoded, name)
	}
	return nil
}
