package regexdfa

import (
	"fmt"
	"sort"
)

// posSet is an unordered set of leaf positions. Position sets are the
// identity of DFA states: two states are the same state iff their sets are
// equal, regardless of discovery order.
type posSet map[int]struct{}

func newPosSet(ids ...int) posSet {
	s := make(posSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s posSet) has(id int) bool {
	_, ok := s[id]
	return ok
}

func (s posSet) merge(other posSet) {
	for id := range other {
		s[id] = struct{}{}
	}
}

func union(a, b posSet) posSet {
	out := make(posSet, len(a)+len(b))
	out.merge(a)
	out.merge(b)
	return out
}

// ids returns the members in ascending order.
func (s posSet) ids() []int {
	out := make([]int, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// key returns a canonical string form, usable as a map key for state lookup.
func (s posSet) key() string { return fmt.Sprint(s.ids()) }
