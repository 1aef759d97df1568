package rrdata

import (
	"testing"
)

func TestSOA_Parse(t *testing.T) {
	var s SOA
	tokens := []string{"ns1.example.com.", "hostmaster.example.com.", "2024010101", "7200", "3600", "1209600", "300"}
	if err := s.Parse(tokens); err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if s.MName != "ns1.example.com" || s.RName != "hostmaster.example.com" {
		t.Errorf("names = %q / %q, want canonical forms", s.MName, s.RName)
	}
	if s.Serial != 2024010101 || s.Refresh != 7200 || s.Retry != 3600 || s.Expire != 1209600 || s.Minimum != 300 {
		t.Errorf("intervals = %d %d %d %d %d", s.Serial, s.Refresh, s.Retry, s.Expire, s.Minimum)
	}
	want := "ns1.example.com. hostmaster.example.com. 2024010101 7200 3600 1209600 300"
	if got := s.Present(); got != want {
		t.Errorf("Present() = %q, want %q", got, want)
	}
}

func TestSOA_ParseInvalid(t *testing.T) {
	cases := [][]string{
		{"ns1.example.com.", "hostmaster.example.com.", "1", "2", "3", "4"},       // short
		{"ns1..example.com", "hostmaster.example.com.", "1", "2", "3", "4", "5"},  // bad mname
		{"ns1.example.com.", "hostmaster.example.com.", "x", "2", "3", "4", "5"},  // bad serial
		{"ns1.example.com.", "hostmaster.example.com.", "1", "2", "3", "4", "-1"}, // bad minimum
	}
	for _, tokens := range cases {
		var s SOA
		if err := s.Parse(tokens); err == nil {
			t.Errorf("Parse(%v) returned nil, want error", tokens)
		}
	}
}

func TestSOA_RoundTrip(t *testing.T) {
	s := &SOA{
		MName:   "ns1.example.com",
		RName:   "hostmaster.example.com",
		Serial:  1,
		Refresh: 7200,
		Retry:   3600,
		Expire:  1209600,
		Minimum: 300,
	}
	got := repackRdata(t, s).(*SOA)
	if *got != *s {
		t.Errorf("round trip = %+v, want %+v", got, s)
	}
}
