package regexdfa

import "sort"

// construct runs the worklist construction: states are position-sets,
// discovered breadth-first from firstpos(root). A state is accepting iff its
// set contains the end-marker position. Symbols are iterated in sorted order
// so discovery order, and therefore state numbering, is deterministic.
func construct(root *astNode, tab *posTable, follow followTable) *Automaton {
	endPos := tab.endPos()

	startSet := root.firstpos
	states := []*State{newState(0, startSet, endPos)}
	sets := []posSet{startSet}
	index := map[string]int{startSet.key(): 0}
	queue := []int{0}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		// group the state's positions by symbol; the successor set on a
		// symbol is the union of followpos over its positions
		cur := sets[id]
		bySym := map[rune]posSet{}
		for pos := range cur {
			if pos == endPos {
				continue // end marker has no outgoing transition
			}
			sym := tab.symbol(pos)
			tgt, ok := bySym[sym]
			if !ok {
				tgt = make(posSet)
				bySym[sym] = tgt
			}
			tgt.merge(follow[pos])
		}

		syms := make([]rune, 0, len(bySym))
		for sym := range bySym {
			syms = append(syms, sym)
		}
		sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })

		for _, sym := range syms {
			next := bySym[sym]
			key := next.key()
			nid, ok := index[key]
			if !ok {
				nid = len(states)
				index[key] = nid
				states = append(states, newState(nid, next, endPos))
				sets = append(sets, next)
				queue = append(queue, nid)
			}
			states[id].Transitions = append(states[id].Transitions, Transition{Symbol: sym, To: nid})
		}
	}

	return &Automaton{States: states}
}

func newState(id int, set posSet, endPos int) *State {
	return &State{
		ID:        id,
		Accepting: set.has(endPos),
		Positions: set.ids(),
	}
}
