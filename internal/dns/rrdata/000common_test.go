package rrdata

import (
	"testing"

	"github.com/haukened/rr-codec/internal/dns/domain"
)

func TestNew_RegisteredTypes(t *testing.T) {
	for rrtype := range registry {
		data := New(rrtype)
		if data.Type() != rrtype {
			t.Errorf("New(%v).Type() = %v", rrtype, data.Type())
		}
		if _, ok := data.(*Unknown); ok {
			t.Errorf("New(%v) returned the opaque fallback for a registered type", rrtype)
		}
	}
}

func TestNew_UnknownFallback(t *testing.T) {
	data := New(domain.RRType(999))
	u, ok := data.(*Unknown)
	if !ok {
		t.Fatalf("New(999) = %T, want *Unknown", data)
	}
	if u.Type() != domain.RRType(999) {
		t.Errorf("fallback Type() = %v, want TYPE999", u.Type())
	}
}

func TestNew_FreshInstances(t *testing.T) {
	a := New(domain.RRTypeA)
	b := New(domain.RRTypeA)
	if a == b {
		t.Error("New returned the same instance twice")
	}
}

func TestSupported(t *testing.T) {
	if !Supported(domain.RRTypeA) {
		t.Error("Supported(A) = false")
	}
	if !Supported(domain.RRTypeCAA) {
		t.Error("Supported(CAA) = false")
	}
	if Supported(domain.RRType(999)) {
		t.Error("Supported(TYPE999) = true")
	}
	if Supported(domain.RRTypeANY) {
		t.Error("Supported(ANY) = true; ANY is query-only")
	}
}

func TestQuoteString(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"abc", `"abc"`},
		{"", `""`},
		{"a b", `"a b"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"tab\there", `"tab\009here"`},
		{"\x00", `"\000"`},
		{"\xff", `"\255"`},
		{"~", `"~"`},
		{"\x7f", `"\127"`},
	}
	for _, tc := range cases {
		if got := quoteString(tc.input); got != tc.want {
			t.Errorf("quoteString(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestWantTokens(t *testing.T) {
	if err := wantTokens([]string{"a", "b"}, 2, "x y"); err != nil {
		t.Errorf("wantTokens with matching count returned %v", err)
	}
	err := wantTokens([]string{"a"}, 2, "x y")
	if err == nil {
		t.Fatal("wantTokens with short count returned nil")
	}
	want := "expected 2 fields (x y), got 1"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestParseUintFields(t *testing.T) {
	if v, err := parseUint8Field("255", "f"); err != nil || v != 255 {
		t.Errorf("parseUint8Field(255) = (%d, %v)", v, err)
	}
	if _, err := parseUint8Field("256", "f"); err == nil {
		t.Error("parseUint8Field(256) = nil error")
	}
	if v, err := parseUint16Field("65535", "f"); err != nil || v != 65535 {
		t.Errorf("parseUint16Field(65535) = (%d, %v)", v, err)
	}
	if _, err := parseUint16Field("65536", "f"); err == nil {
		t.Error("parseUint16Field(65536) = nil error")
	}
	if v, err := parseUint32Field("4294967295", "f"); err != nil || v != 4294967295 {
		t.Errorf("parseUint32Field(max) = (%d, %v)", v, err)
	}
	if _, err := parseUint32Field("-1", "f"); err == nil {
		t.Error("parseUint32Field(-1) = nil error")
	}
	if _, err := parseUint32Field("abc", "f"); err == nil {
		t.Error("parseUint32Field(abc) = nil error")
	}
}
