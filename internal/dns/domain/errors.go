package domain

import "fmt"

// ParseError reports malformed wire bytes or malformed presentation-format
// text. It is a syntactic failure: the input could not be decoded at all.
// Exactly one of the position fields is meaningful: Line/Column for text
// input (1-based), Offset for binary input. The unused fields are zero and
// Offset is -1 when it does not apply.
type ParseError struct {
	Msg    string
	Offset int // byte offset into the wire buffer, -1 if not applicable
	Line   int // 1-based line in presentation input, 0 if not applicable
	Column int // 1-based column in presentation input, 0 if not applicable
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at line %d column %d: %s", e.Line, e.Column, e.Msg)
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Msg)
	}
	return "parse error: " + e.Msg
}

// NewWireError constructs a ParseError for binary input at the given offset.
func NewWireError(offset int, format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Offset: offset}
}

// NewTextError constructs a ParseError for presentation input at the given
// line and column.
func NewTextError(line, column int, format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Offset: -1, Line: line, Column: column}
}

// SemanticError reports well-formed data that violates record-level meaning,
// e.g. an invalid algorithm or field combination. It is a smaller layer above
// parsing: the bytes or tokens decoded fine but the result makes no sense.
type SemanticError struct {
	Msg string
}

func (e *SemanticError) Error() string {
	return "semantic error: " + e.Msg
}

// NewSemanticError constructs a SemanticError.
func NewSemanticError(format string, args ...any) *SemanticError {
	return &SemanticError{Msg: fmt.Sprintf(format, args...)}
}
