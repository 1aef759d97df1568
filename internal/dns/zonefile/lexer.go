// Package zonefile tokenizes DNS master-format text and assembles logical
// records from the token stream, applying the classic field-elision rules
// (RFC 1035 section 5.1). It covers the per-record grammar only; zone-level
// directives like $ORIGIN and $TTL belong to a higher layer.
package zonefile

import (
	"bufio"
	"io"

	"github.com/haukened/rr-codec/internal/dns/domain"
)

// TokenKind discriminates the values the lexer produces.
type TokenKind int

const (
	// TokenString is a character-string: either a bare word or a quoted
	// string. Quoting only disables whitespace and comment splitting; both
	// forms are semantically character-strings.
	TokenString TokenKind = iota

	// TokenNewline marks the end of a logical line. Newlines inside a
	// parenthesized group are not reported.
	TokenNewline

	// TokenEOF marks the end of input.
	TokenEOF
)

// Token is one lexeme with its 1-based source position.
type Token struct {
	Kind   TokenKind
	Text   string
	Quoted bool
	Line   int
	Column int
}

// Lexer is a pull-based producer of tokens from master-format text. It
// tracks line and column for diagnostics, strips ;-comments, decodes \DDD
// and \c escapes, and suspends line-ending significance inside ( ) groups.
// It holds no look-ahead beyond one byte, so it can be driven incrementally
// over streamed input without buffering the whole file.
type Lexer struct {
	r    *bufio.Reader
	line int // line of the next unread byte
	col  int // column of the next unread byte

	// one-byte pushback, with the position the byte was read at
	peeked   bool
	peekB    byte
	peekLine int
	peekCol  int

	parens    int // current grouping depth
	parenLine int // position of the outermost unmatched "("
	parenCol  int
}

// NewLexer returns a Lexer reading from r.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{r: bufio.NewReader(r), line: 1, col: 1}
}

// readByte returns the next byte and the position it occupies.
func (l *Lexer) readByte() (b byte, line, col int, err error) {
	if l.peeked {
		l.peeked = false
		return l.peekB, l.peekLine, l.peekCol, nil
	}
	b, err = l.r.ReadByte()
	if err != nil {
		return 0, l.line, l.col, err
	}
	line, col = l.line, l.col
	if b == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return b, line, col, nil
}

func (l *Lexer) unread(b byte, line, col int) {
	l.peeked = true
	l.peekB = b
	l.peekLine = line
	l.peekCol = col
}

// Next yields the next token, a newline marker, or an end-of-input marker.
func (l *Lexer) Next() (Token, error) {
	for {
		b, line, col, err := l.readByte()
		if err == io.EOF {
			if l.parens > 0 {
				return Token{}, domain.NewTextError(l.parenLine, l.parenCol, `unbalanced "(": no closing ")" before end of input`)
			}
			return Token{Kind: TokenEOF, Line: line, Column: col}, nil
		}
		if err != nil {
			return Token{}, err
		}
		switch b {
		case ' ', '\t', '\r':
			continue
		case '\n':
			if l.parens > 0 {
				continue
			}
			return Token{Kind: TokenNewline, Line: line, Column: col}, nil
		case ';':
			if err := l.skipComment(); err != nil {
				return Token{}, err
			}
			continue
		case '(':
			if l.parens == 0 {
				l.parenLine, l.parenCol = line, col
			}
			l.parens++
			continue
		case ')':
			if l.parens == 0 {
				return Token{}, domain.NewTextError(line, col, `closing ")" without matching "("`)
			}
			l.parens--
			continue
		case '"':
			return l.quoted(line, col)
		default:
			return l.unquoted(b, line, col)
		}
	}
}

// skipComment consumes bytes up to, but not including, the end of the
// physical line.
func (l *Lexer) skipComment() error {
	for {
		b, line, col, err := l.readByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if b == '\n' {
			l.unread(b, line, col)
			return nil
		}
	}
}

// escape decodes the byte sequence following a backslash: three decimal
// digits encode one raw byte, any other single character encodes itself.
func (l *Lexer) escape() (byte, error) {
	b1, line, col, err := l.readByte()
	if err != nil {
		return 0, domain.NewTextError(line, col, `input ends in the middle of a "\" escape`)
	}
	if b1 < '0' || b1 > '9' {
		return b1, nil
	}
	v := int(b1 - '0')
	for range 2 {
		b, dl, dc, err := l.readByte()
		if err != nil || b < '0' || b > '9' {
			return 0, domain.NewTextError(dl, dc, `"\DDD" escape needs exactly three decimal digits`)
		}
		v = v*10 + int(b-'0')
	}
	if v > 255 {
		return 0, domain.NewTextError(line, col, `"\%d" escape does not fit in one octet`, v)
	}
	return byte(v), nil
}

// quoted lexes a double-quoted character-string. line and col locate the
// opening quote, which every truncation diagnostic cites.
func (l *Lexer) quoted(line, col int) (Token, error) {
	var text []byte
	for {
		b, _, _, err := l.readByte()
		if err == io.EOF {
			return Token{}, domain.NewTextError(line, col, `quoted string opened here is never closed`)
		}
		if err != nil {
			return Token{}, err
		}
		switch b {
		case '\n':
			return Token{}, domain.NewTextError(line, col, `quoted string opened here reaches end of line without a closing quote`)
		case '\\':
			e, err := l.escape()
			if err != nil {
				return Token{}, err
			}
			text = append(text, e)
		case '"':
			return Token{Kind: TokenString, Text: string(text), Quoted: true, Line: line, Column: col}, nil
		default:
			text = append(text, b)
		}
	}
}

// unquoted lexes a bare word starting with first. Whitespace ends the token;
// newline, comment, paren, and quote bytes end it and are re-processed by
// the caller, except a quote, which cannot legally start mid-token.
func (l *Lexer) unquoted(first byte, line, col int) (Token, error) {
	text := []byte{}
	b, bl, bc := first, line, col
	for {
		switch b {
		case ' ', '\t', '\r':
			return Token{Kind: TokenString, Text: string(text), Line: line, Column: col}, nil
		case '\n', ';', '(', ')':
			l.unread(b, bl, bc)
			return Token{Kind: TokenString, Text: string(text), Line: line, Column: col}, nil
		case '"':
			return Token{}, domain.NewTextError(bl, bc, `stray '"' inside unquoted token`)
		case '\\':
			e, err := l.escape()
			if err != nil {
				return Token{}, err
			}
			text = append(text, e)
		default:
			text = append(text, b)
		}
		var err error
		b, bl, bc, err = l.readByte()
		if err == io.EOF {
			return Token{Kind: TokenString, Text: string(text), Line: line, Column: col}, nil
		}
		if err != nil {
			return Token{}, err
		}
	}
}
