// Package regexdfa converts regular expressions over alphanumeric symbols
// into deterministic finite automata using the direct (Berry-Sethi)
// construction: the pattern is parsed into a syntax tree, every node is
// annotated with nullable/firstpos/lastpos, a followpos relation is derived
// over leaf positions, and DFA states are built directly from position sets.
// No intermediate NFA is ever constructed.
//
// Supported syntax: alphanumeric symbols, grouping with parentheses, union
// '|', Kleene star '*', and '+' (one or more). Anything else is a parse
// error.
package regexdfa

import "fmt"

// Convert builds the DFA for pattern. All working state is local to the
// call: Convert is safe for concurrent use.
func Convert(pattern string) (*Automaton, error) {
	root, err := parse(pattern)
	if err != nil {
		return nil, err
	}
	tab := newPosTable()
	annotate(root, tab)
	follow := make(followTable)
	computeFollow(root, follow)
	return construct(root, tab, follow), nil
}

// MustConvert is Convert that panics on invalid patterns.
func MustConvert(pattern string) *Automaton {
	a, err := Convert(pattern)
	if err != nil {
		panic(fmt.Sprintf("regexdfa: %v", err))
	}
	return a
}
