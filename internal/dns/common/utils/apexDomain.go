package utils

import "golang.org/x/net/publicsuffix"

// GetApexDomain returns the registrable apex (eTLD+1) for a name, falling
// back to the name itself when the public-suffix list cannot resolve it.
func GetApexDomain(name string) string {
	name = CanonicalDNSName(name)
	apexDomain, err := publicsuffix.EffectiveTLDPlusOne(name)
	if err != nil {
		apexDomain = name // Fallback to the original name if parsing fails
	}
	return apexDomain
}

// IsPublicSuffix reports whether the name itself is a public suffix
// (e.g. "com" or "co.uk"). Zone tooling warns on such origins, since
// records below a public suffix are almost certainly a configuration
// mistake.
func IsPublicSuffix(name string) bool {
	name = CanonicalDNSName(name)
	if name == "" {
		return false
	}
	suffix, _ := publicsuffix.PublicSuffix(name)
	return suffix == name
}
