package zonefile

import (
	"io"
	"strconv"
	"strings"

	"github.com/haukened/rr-codec/internal/dns/domain"
)

// Entry is one logical record as scanned from master-format text: the fully
// resolved header plus the ordered remainder of tokens as that record's
// RDATA, left for the type-specific parser.
type Entry struct {
	Header domain.Header
	RData  []string
	Line   int // line the record started on
}

// Scanner assembles logical records from a token stream. Field recognition
// after the owner name is: optional TTL (a bare non-negative integer),
// optional class mnemonic, required type mnemonic (TYPE<n> and CLASS<n>
// numeric forms included), then RDATA tokens verbatim.
//
// The scanner is stateful across records: a record may omit its owner name
// by starting with whitespace, and may omit TTL or class, inheriting each
// from the most recently established header. The type is mandatory on every
// record.
type Scanner struct {
	lex *Lexer

	prev        domain.Header
	established bool // prev holds a complete header from an earlier record
}

// NewScanner returns a Scanner tokenizing r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{lex: NewLexer(r)}
}

// isBareInt reports whether s is a bare non-negative decimal integer that
// fits a 32-bit TTL.
func isBareInt(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseUint(s, 10, 32)
	return err == nil
}

// numericTopLabel reports whether the name's top-level (rightmost) label is
// purely numeric, which is never a legal owner and almost always a TTL that
// lost its record context.
func numericTopLabel(name string) bool {
	labels := strings.Split(strings.TrimSuffix(name, "."), ".")
	top := labels[len(labels)-1]
	if top == "" {
		return false
	}
	for i := 0; i < len(top); i++ {
		if top[i] < '0' || top[i] > '9' {
			return false
		}
	}
	return true
}

// Next scans one logical record. It returns io.EOF once the input is
// exhausted.
func (s *Scanner) Next() (Entry, error) {
	// Skip blank lines to the first token of a record.
	var first Token
	for {
		tok, err := s.lex.Next()
		if err != nil {
			return Entry{}, err
		}
		if tok.Kind == TokenEOF {
			return Entry{}, io.EOF
		}
		if tok.Kind == TokenNewline {
			continue
		}
		first = tok
		break
	}

	// A token in column one is the owner name; a token further right means
	// the line started with whitespace and the owner is inherited.
	var owner string
	tok := first
	if first.Column == 1 {
		if !first.Quoted && numericTopLabel(first.Text) {
			return Entry{}, domain.NewTextError(first.Line, first.Column,
				"top-level domain label %q should not be numeric", first.Text)
		}
		owner = first.Text
		var err error
		tok, err = s.lex.Next()
		if err != nil {
			return Entry{}, err
		}
	} else {
		if !s.established {
			return Entry{}, domain.NewTextError(first.Line, first.Column, "missing owner name and no previous record to inherit it from")
		}
		owner = s.prev.Name
	}

	// TTL and class may come in either order before the type.
	var (
		ttl       uint32
		class     domain.RRClass
		rtype     domain.RRType
		haveTTL   bool
		haveClass bool
		haveType  bool
	)
	for tok.Kind == TokenString {
		if !haveTTL && !tok.Quoted && isBareInt(tok.Text) {
			n, _ := strconv.ParseUint(tok.Text, 10, 32)
			ttl = uint32(n)
			haveTTL = true
		} else if c, ok := domain.RRClassFromString(tok.Text); !haveClass && ok {
			class = c
			haveClass = true
		} else if t, ok := domain.RRTypeFromString(tok.Text); ok {
			rtype = t
			haveType = true
		} else {
			return Entry{}, domain.NewTextError(tok.Line, tok.Column, "expected a record type, got %q", tok.Text)
		}
		var err error
		tok, err = s.lex.Next()
		if err != nil {
			return Entry{}, err
		}
		if haveType {
			break
		}
	}
	if !haveType {
		return Entry{}, domain.NewTextError(first.Line, first.Column, "missing record type")
	}
	if !haveTTL {
		if !s.established {
			return Entry{}, domain.NewTextError(first.Line, first.Column, "missing TTL and no previous record to inherit it from")
		}
		ttl = s.prev.TTL
	}
	if !haveClass {
		if !s.established {
			return Entry{}, domain.NewTextError(first.Line, first.Column, "missing class and no previous record to inherit it from")
		}
		class = s.prev.Class
	}

	// Everything to end of logical line is RDATA, verbatim.
	var rdata []string
	for tok.Kind == TokenString {
		rdata = append(rdata, tok.Text)
		var err error
		tok, err = s.lex.Next()
		if err != nil {
			return Entry{}, err
		}
	}
	if len(rdata) == 0 {
		return Entry{}, domain.NewTextError(first.Line, first.Column, "missing RDATA")
	}

	header, err := domain.NewHeader(owner, rtype, class, ttl)
	if err != nil {
		return Entry{}, domain.NewTextError(first.Line, first.Column, "%v", err)
	}
	s.prev = header
	s.established = true
	return Entry{Header: header, RData: rdata, Line: first.Line}, nil
}
