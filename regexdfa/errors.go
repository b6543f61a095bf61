package regexdfa

import (
	"errors"
	"fmt"
)

// Parse errors. Both are properties of the input pattern: there is nothing
// transient about them and no partial automaton is ever returned.
var (
	// ErrMismatchedParentheses indicates an opening '(' without a matching ')'.
	ErrMismatchedParentheses = errors.New("mismatched parentheses")

	// ErrUnexpectedCharacter indicates a character outside the accepted
	// alphabet, or end of input where a symbol or '(' was required.
	ErrUnexpectedCharacter = errors.New("unexpected character")
)

// UnexpectedCharError reports which character broke the parse. EOF is set
// when the pattern ended where a symbol or '(' was required (this covers the
// empty pattern and a dangling '|').
type UnexpectedCharError struct {
	Char rune
	EOF  bool
}

func (e *UnexpectedCharError) Error() string {
	if e.EOF {
		return "unexpected end of pattern"
	}
	return fmt.Sprintf("unexpected character %q", e.Char)
}

// Unwrap makes errors.Is(err, ErrUnexpectedCharacter) work.
func (e *UnexpectedCharError) Unwrap() error { return ErrUnexpectedCharacter }
