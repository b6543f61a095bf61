package regexdfa

import "sort"

// Transition is one labeled edge of the automaton.
type Transition struct {
	Symbol rune `json:"symbol"`
	To     int  `json:"to"`
}

// State is one DFA state. ID equals the state's index in Automaton.States
// (discovery order). Positions is the state's defining position-set in
// ascending order; Transitions are sorted by symbol.
type State struct {
	ID          int          `json:"id"`
	Accepting   bool         `json:"accepting"`
	Positions   []int        `json:"positions"`
	Transitions []Transition `json:"transitions"`
}

// Step returns the successor on sym, or false if the state has no such
// transition.
func (s *State) Step(sym rune) (int, bool) {
	for _, t := range s.Transitions {
		if t.Symbol == sym {
			return t.To, true
		}
	}
	return 0, false
}

// Automaton is the result of a conversion. State 0 is the start state.
type Automaton struct {
	States []*State `json:"states"`
}

// Start returns the start state.
func (a *Automaton) Start() *State { return a.States[0] }

// Accepting returns the indices of all accepting states, ascending.
func (a *Automaton) Accepting() []int {
	var out []int
	for _, s := range a.States {
		if s.Accepting {
			out = append(out, s.ID)
		}
	}
	return out
}

// Alphabet returns the distinct transition symbols, sorted.
func (a *Automaton) Alphabet() []rune {
	seen := map[rune]struct{}{}
	for _, s := range a.States {
		for _, t := range s.Transitions {
			seen[t.Symbol] = struct{}{}
		}
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Match runs the DFA over input and reports whether the whole string is in
// the automaton's language.
func (a *Automaton) Match(input string) bool {
	cur := 0
	for _, r := range input {
		next, ok := a.States[cur].Step(r)
		if !ok {
			return false
		}
		cur = next
	}
	return a.States[cur].Accepting
}
