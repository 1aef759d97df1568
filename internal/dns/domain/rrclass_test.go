package domain

import (
	"testing"
)

func TestRRClass_String(t *testing.T) {
	cases := []struct {
		c    RRClass
		want string
	}{
		{1, "IN"}, {3, "CH"}, {4, "HS"}, {254, "NONE"}, {255, "ANY"},
		{0, "CLASS0"}, {2, "CLASS2"}, {42, "CLASS42"},
	}
	for _, tc := range cases {
		if got := tc.c.String(); got != tc.want {
			t.Errorf("String(%d) = %v, want %v", tc.c, got, tc.want)
		}
	}
}

func TestRRClassFromString(t *testing.T) {
	cases := []struct {
		input string
		want  RRClass
		ok    bool
	}{
		{"IN", 1, true}, {"CH", 3, true}, {"HS", 4, true}, {"NONE", 254, true}, {"ANY", 255, true},
		{"in", 1, true},
		{"CLASS0", 0, true}, {"CLASS2", 2, true}, {"class42", 42, true}, {"CLASS65535", 65535, true},
		{"CLASS65536", 0, false}, {"CLASS", 0, false}, {"CLASSxyz", 0, false},
		{"", 0, false}, {"foo", 0, false},
	}
	for _, tc := range cases {
		got, ok := RRClassFromString(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Errorf("RRClassFromString(%q) = (%v, %v), want (%v, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}
