package rrdata

import (
	"testing"
)

func TestNSEC3PARAM_Parse(t *testing.T) {
	var n NSEC3PARAM
	if err := n.Parse([]string{"1", "0", "12", "aabbccdd"}); err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := n.Present(); got != "1 0 12 aabbccdd" {
		t.Errorf("Present() = %q, want %q", got, "1 0 12 aabbccdd")
	}
	got := repackRdata(t, &n).(*NSEC3PARAM)
	if got.Present() != n.Present() {
		t.Errorf("round trip Present() = %q, want %q", got.Present(), n.Present())
	}
}

func TestNSEC3PARAM_EmptySalt(t *testing.T) {
	var n NSEC3PARAM
	if err := n.Parse([]string{"1", "0", "0", "-"}); err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if n.Salt != nil {
		t.Errorf("Salt = % x, want nil", n.Salt)
	}
	if got := n.Present(); got != "1 0 0 -" {
		t.Errorf("Present() = %q, want %q", got, "1 0 0 -")
	}
}

func TestNSEC3PARAM_ParseInvalid(t *testing.T) {
	cases := [][]string{
		{"1", "0", "12"},
		{"1", "0", "12", "aabb", "extra"},
		{"1", "0", "12", "zz"},
	}
	for _, tokens := range cases {
		var n NSEC3PARAM
		if err := n.Parse(tokens); err == nil {
			t.Errorf("Parse(%v) returned nil, want error", tokens)
		}
	}
}
