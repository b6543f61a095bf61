package regexdfa

import (
	"fmt"
	"io"
)

// ExportDOT writes a Graphviz representation of the automaton to w: one node
// per state (doublecircle if accepting), one labeled edge per transition.
func ExportDOT(w io.Writer, a *Automaton) {
	fmt.Fprintln(w, "digraph DFA {")
	fmt.Fprintln(w, "    rankdir=LR;")

	for _, s := range a.States {
		shape := "circle"
		if s.Accepting {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    q%d [shape=%s];\n", s.ID, shape)
		for _, t := range s.Transitions {
			fmt.Fprintf(w, "    q%d -> q%d [label=\"%c\"];\n", s.ID, t.To, t.Symbol)
		}
	}
	fmt.Fprintln(w, "    _start [shape=point]; _start -> q0;")

	fmt.Fprintln(w, "}")
}
