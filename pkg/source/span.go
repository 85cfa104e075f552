// Package source provides the lightweight value types shared by the
// expression AST and (conceptually) by any future lexer/parser that feeds
// it: byte-range spans into an immutable source buffer, and identifiers.
package source

// Span is a half-open byte range [Begin, End) into an immutable UTF-8
// source buffer. Unlike the C++ original, which represents a span as a
// pair of raw pointers into the buffer and defines equality as pointer
// equality, Go has no raw pointer arithmetic; a Span here is a pair of
// byte offsets into a single implicit source buffer, which gives the same
// property: two spans are equal iff they address the same bytes of the
// same buffer.
type Span struct {
	Begin int
	End   int
}

// NewSpan builds a Span, panicking if begin > end — spans are always
// half-open and non-decreasing.
func NewSpan(begin, end int) Span {
	if begin > end {
		panic("source: span begin after end")
	}
	return Span{Begin: begin, End: end}
}

// Size returns End - Begin.
func (s Span) Size() int {
	return s.End - s.Begin
}

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool {
	return s.Begin == s.End
}

// Union returns the smallest span covering both a and b. Both spans are
// assumed to belong to the same source buffer.
func Union(a, b Span) Span {
	begin := a.Begin
	if b.Begin < begin {
		begin = b.Begin
	}
	end := a.End
	if b.End > end {
		end = b.End
	}
	return Span{Begin: begin, End: end}
}
