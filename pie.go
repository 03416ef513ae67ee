package pie

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Constants are defined by the
// scanner, as it is up to the scanner to decide on its token categories.
type TokType int

// Tokens represent input tokens. They are produced by a scanner and
// reflect terminals of the language.
//
// An example would be a token for an atom:
//
//    TokType = Atom            // identifier for this kind of tokens
//    Lexeme  = "'baguette"     // lexeme how it appeared in the input stream
//    Span    = 12…21           // occured from byte position 12 in the input
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. Every node of an
// AST tracks which input positions it covers. A span denotes a start position
// and the position just behind the end.
type Span [2]uint64 // (x…y)

// MakeSpan creates a span from integer offsets, as they occur when slicing strings.
func MakeSpan(from, to int) Span {
	return Span{uint64(from), uint64(to)}
}

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

// Of returns the text of input covered by the span. Spans reaching beyond the
// input are clipped.
func (s Span) Of(input string) string {
	from, to := s[0], s[1]
	if to > uint64(len(input)) {
		to = uint64(len(input))
	}
	if from > to {
		return ""
	}
	return input[from:to]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
