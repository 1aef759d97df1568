package rrdata

import (
	"bytes"
	"testing"

	"github.com/haukened/rr-codec/internal/dns/wire"
)

func TestSRV_Parse(t *testing.T) {
	var s SRV
	if err := s.Parse([]string{"10", "60", "5060", "sip.example.com."}); err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	want := SRV{Priority: 10, Weight: 60, Port: 5060, Target: "sip.example.com"}
	if s != want {
		t.Errorf("parsed = %+v, want %+v", s, want)
	}
	if got := s.Present(); got != "10 60 5060 sip.example.com." {
		t.Errorf("Present() = %q, want %q", got, "10 60 5060 sip.example.com.")
	}
}

func TestSRV_ParseInvalid(t *testing.T) {
	cases := [][]string{
		{"10", "60", "5060"},
		{"10", "60", "5060", "sip.example.com", "extra"},
		{"65536", "60", "5060", "sip.example.com"},
		{"10", "60", "port", "sip.example.com"},
		{"10", "60", "5060", "bad..name"},
	}
	for _, tokens := range cases {
		var s SRV
		if err := s.Parse(tokens); err == nil {
			t.Errorf("Parse(%v) returned nil, want error", tokens)
		}
	}
}

// SRV targets never compress, so packing after other names must still
// produce plain labels.
func TestSRV_TargetUncompressed(t *testing.T) {
	w := wire.NewWriter()
	if _, err := w.Name("example.com", true); err != nil {
		t.Fatalf("Name returned error: %v", err)
	}
	s := &SRV{Priority: 0, Weight: 0, Port: 443, Target: "example.com"}
	before := w.Len()
	if _, err := s.Pack(w); err != nil {
		t.Fatalf("Pack returned error: %v", err)
	}
	rdata := w.Bytes()[before:]
	want := []byte{
		0x00, 0x00, 0x00, 0x00, 0x01, 0xBB,
		7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0,
	}
	if !bytes.Equal(rdata, want) {
		t.Errorf("Pack wrote % x, want % x", rdata, want)
	}
}

func TestSRV_RoundTrip(t *testing.T) {
	s := &SRV{Priority: 1, Weight: 2, Port: 3, Target: "svc.example.com"}
	got := repackRdata(t, s).(*SRV)
	if *got != *s {
		t.Errorf("round trip = %+v, want %+v", got, s)
	}
}
