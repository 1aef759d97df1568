package zonefile

import (
	"io"
	"strings"
	"testing"

	"github.com/haukened/rr-codec/internal/dns/domain"
)

// scanAll drains the scanner.
func scanAll(t *testing.T, input string) []Entry {
	t.Helper()
	sc := NewScanner(strings.NewReader(input))
	var entries []Entry
	for {
		e, err := sc.Next()
		if err == io.EOF {
			return entries
		}
		if err != nil {
			t.Fatalf("Next() returned error: %v", err)
		}
		entries = append(entries, e)
	}
}

func TestScanner_FullRecord(t *testing.T) {
	entries := scanAll(t, "example.com. 3600 IN A 203.0.113.1\n")
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Header.Name != "example.com" {
		t.Errorf("Name = %q, want example.com", e.Header.Name)
	}
	if e.Header.TTL != 3600 || e.Header.Class != domain.RRClassIN || e.Header.Type != domain.RRTypeA {
		t.Errorf("header = %+v", e.Header)
	}
	if len(e.RData) != 1 || e.RData[0] != "203.0.113.1" {
		t.Errorf("RData = %v", e.RData)
	}
	if e.Line != 1 {
		t.Errorf("Line = %d, want 1", e.Line)
	}
}

func TestScanner_ClassBeforeTTL(t *testing.T) {
	entries := scanAll(t, "example.com. IN 3600 A 203.0.113.1\n")
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Header.TTL != 3600 || e.Header.Class != domain.RRClassIN {
		t.Errorf("header = %+v", e.Header)
	}
}

func TestScanner_Inheritance(t *testing.T) {
	input := "example.com. 3600 IN A 203.0.113.1\n" +
		"             A 203.0.113.2\n" +
		"www          CNAME example.com.\n"
	entries := scanAll(t, input)
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	// Second record starts with whitespace: owner, TTL, class all inherited.
	e := entries[1]
	if e.Header.Name != "example.com" || e.Header.TTL != 3600 || e.Header.Class != domain.RRClassIN {
		t.Errorf("inherited header = %+v", e.Header)
	}
	if e.Header.Type != domain.RRTypeA || e.RData[0] != "203.0.113.2" {
		t.Errorf("second entry = %+v", e)
	}

	// Third record names a new owner but inherits TTL and class.
	e = entries[2]
	if e.Header.Name != "www" || e.Header.TTL != 3600 || e.Header.Class != domain.RRClassIN {
		t.Errorf("third header = %+v", e.Header)
	}
	if e.Header.Type != domain.RRTypeCNAME {
		t.Errorf("third type = %v", e.Header.Type)
	}
}

func TestScanner_MultiLineGroup(t *testing.T) {
	input := "example.com. 3600 IN SOA ns1.example.com. admin.example.com. (\n" +
		"    2024010101 ; serial\n" +
		"    7200       ; refresh\n" +
		"    3600       ; retry\n" +
		"    1209600    ; expire\n" +
		"    300 )      ; minimum\n"
	entries := scanAll(t, input)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Header.Type != domain.RRTypeSOA {
		t.Errorf("type = %v, want SOA", e.Header.Type)
	}
	want := []string{"ns1.example.com.", "admin.example.com.", "2024010101", "7200", "3600", "1209600", "300"}
	if len(e.RData) != len(want) {
		t.Fatalf("RData = %v, want %v", e.RData, want)
	}
	for i := range want {
		if e.RData[i] != want[i] {
			t.Errorf("RData[%d] = %q, want %q", i, e.RData[i], want[i])
		}
	}
}

func TestScanner_NumericTypeAndClass(t *testing.T) {
	entries := scanAll(t, "example.com. 60 CLASS1 TYPE999 \\# 2 abcd\n")
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Header.Class != domain.RRClassIN {
		t.Errorf("class = %v, want IN", e.Header.Class)
	}
	if e.Header.Type != domain.RRType(999) {
		t.Errorf("type = %v, want TYPE999", e.Header.Type)
	}
	want := []string{"#", "2", "abcd"}
	if len(e.RData) != len(want) {
		t.Fatalf("RData = %v, want %v", e.RData, want)
	}
}

func TestScanner_QuotedTokenIsNotTTL(t *testing.T) {
	// A quoted "300" cannot be a TTL; here it is RDATA after the type.
	entries := scanAll(t, "example.com. 60 IN TXT \"300\"\n")
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Header.TTL != 60 {
		t.Errorf("TTL = %d, want 60", e.Header.TTL)
	}
	if len(e.RData) != 1 || e.RData[0] != "300" {
		t.Errorf("RData = %v, want [300]", e.RData)
	}
}

func TestScanner_BlankLinesSkipped(t *testing.T) {
	input := "\n\nexample.com. 60 IN A 203.0.113.1\n\n\nexample.org. 60 IN A 203.0.113.2\n\n"
	entries := scanAll(t, input)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Line != 3 {
		t.Errorf("first entry line = %d, want 3", entries[0].Line)
	}
}

func scanExpectError(t *testing.T, input, errPart string) {
	t.Helper()
	sc := NewScanner(strings.NewReader(input))
	for {
		_, err := sc.Next()
		if err == io.EOF {
			t.Fatalf("input %q scanned clean, expected error containing %q", input, errPart)
		}
		if err != nil {
			if !strings.Contains(err.Error(), errPart) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), errPart)
			}
			return
		}
	}
}

func TestScanner_Errors(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		errPart string
	}{
		{
			name:    "numeric owner is a lost TTL",
			input:   "3600 IN A 203.0.113.1\n",
			errPart: "should not be numeric",
		},
		{
			name:    "no owner and nothing to inherit",
			input:   "    60 IN A 203.0.113.1\n",
			errPart: "missing owner name",
		},
		{
			name:    "no TTL and nothing to inherit",
			input:   "example.com. IN A 203.0.113.1\n",
			errPart: "missing TTL",
		},
		{
			name:    "no class and nothing to inherit",
			input:   "example.com. 60 A 203.0.113.1\n",
			errPart: "missing class",
		},
		{
			name:    "missing type",
			input:   "example.com. 60 IN\n",
			errPart: "missing record type",
		},
		{
			name:    "garbage where type belongs",
			input:   "example.com. 60 IN NOTATYPE 203.0.113.1\n",
			errPart: `expected a record type, got "NOTATYPE"`,
		},
		{
			name:    "missing RDATA",
			input:   "example.com. 60 IN A\n",
			errPart: "missing RDATA",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			scanExpectError(t, tc.input, tc.errPart)
		})
	}
}

func TestScanner_ErrorPositionCitesRecordStart(t *testing.T) {
	input := "good.example.com. 60 IN A 203.0.113.1\nbad.example.com. 60 IN\n"
	sc := NewScanner(strings.NewReader(input))
	if _, err := sc.Next(); err != nil {
		t.Fatalf("first record errored: %v", err)
	}
	_, err := sc.Next()
	if err == nil {
		t.Fatal("expected error for record missing its type")
	}
	if !strings.Contains(err.Error(), "line 2 column 1") {
		t.Errorf("error = %q, want it to cite line 2 column 1", err.Error())
	}
}

func TestScanner_EmptyInput(t *testing.T) {
	sc := NewScanner(strings.NewReader(""))
	if _, err := sc.Next(); err != io.EOF {
		t.Errorf("Next() on empty input = %v, want io.EOF", err)
	}

	sc = NewScanner(strings.NewReader("; only a comment\n\n"))
	if _, err := sc.Next(); err != io.EOF {
		t.Errorf("Next() on comment-only input = %v, want io.EOF", err)
	}
}

func TestScanner_RootOwner(t *testing.T) {
	entries := scanAll(t, ". 86400 IN NS a.root-servers.net.\n")
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Header.Name != "" {
		t.Errorf("root owner = %q, want empty canonical name", entries[0].Header.Name)
	}
}
