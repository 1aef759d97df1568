package domain

import (
	"testing"
)

func TestRRType_String(t *testing.T) {
	cases := []struct {
		t    RRType
		want string
	}{
		{1, "A"}, {2, "NS"}, {5, "CNAME"}, {6, "SOA"}, {12, "PTR"}, {15, "MX"}, {16, "TXT"},
		{28, "AAAA"}, {33, "SRV"}, {43, "DS"}, {44, "SSHFP"}, {46, "RRSIG"}, {47, "NSEC"},
		{48, "DNSKEY"}, {50, "NSEC3"}, {51, "NSEC3PARAM"}, {52, "TLSA"}, {255, "ANY"}, {257, "CAA"},
		{0, "TYPE0"}, {3, "TYPE3"}, {9999, "TYPE9999"},
	}
	for _, tc := range cases {
		if got := tc.t.String(); got != tc.want {
			t.Errorf("String(%d) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestRRTypeFromString(t *testing.T) {
	cases := []struct {
		input string
		want  RRType
		ok    bool
	}{
		{"A", 1, true}, {"NS", 2, true}, {"CNAME", 5, true}, {"SOA", 6, true}, {"PTR", 12, true},
		{"MX", 15, true}, {"TXT", 16, true}, {"AAAA", 28, true}, {"SRV", 33, true}, {"DS", 43, true},
		{"SSHFP", 44, true}, {"RRSIG", 46, true}, {"NSEC", 47, true}, {"DNSKEY", 48, true},
		{"NSEC3", 50, true}, {"NSEC3PARAM", 51, true}, {"TLSA", 52, true}, {"ANY", 255, true},
		{"CAA", 257, true},
		{"a", 1, true}, {"mx", 15, true},
		{"TYPE0", 0, true}, {"TYPE999", 999, true}, {"TYPE65535", 65535, true}, {"type42", 42, true},
		{"TYPE65536", 0, false}, {"TYPE", 0, false}, {"TYPEabc", 0, false}, {"TYPE-1", 0, false},
		{"", 0, false}, {"foo", 0, false},
	}
	for _, tc := range cases {
		got, ok := RRTypeFromString(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Errorf("RRTypeFromString(%q) = (%v, %v), want (%v, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRRType_StringRoundTrip(t *testing.T) {
	// Every mnemonic must survive String -> FromString.
	for code, name := range rrTypeNames {
		got, ok := RRTypeFromString(name)
		if !ok || got != code {
			t.Errorf("RRTypeFromString(%q) = (%v, %v), want (%v, true)", name, got, ok, code)
		}
	}
	// TYPE<n> fallback round-trips too.
	for _, code := range []RRType{0, 3, 100, 9999, 65535} {
		got, ok := RRTypeFromString(code.String())
		if !ok || got != code {
			t.Errorf("round trip for %v failed: got (%v, %v)", code, got, ok)
		}
	}
}
