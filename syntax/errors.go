package syntax

import (
	"errors"
	"fmt"
)

// Errors reported by the parser. They are wrapped into a *SyntaxError, which
// carries the input position; test for them with errors.Is.
var (
	ErrNoMatch        = errors.New("no expression matches")
	ErrUnclosedList   = errors.New("list is not closed")
	ErrUnexpectedChar = errors.New("unexpected character in list")
	ErrTrailingInput  = errors.New("unexpected input after expression")
	ErrNoSeparator    = errors.New("expressions must be separated by whitespace")
	ErrTooDeep        = errors.New("lists nested too deeply")
)

// SyntaxError is a parse failure at a byte offset of the input.
type SyntaxError struct {
	Offset int
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %v", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func syntaxError(c cursor, err error) *SyntaxError {
	return &SyntaxError{Offset: c.pos, Err: err}
}
