package regexdfa

// followTable maps a leaf position to the set of positions that can
// immediately follow it. Positions without an entry follow nothing; the end
// marker never appears as a key.
type followTable map[int]posSet

func (t followTable) addAll(pos int, set posSet) {
	f, ok := t[pos]
	if !ok {
		f = make(posSet)
		t[pos] = f
	}
	f.merge(set)
}

// computeFollow accumulates the followpos relation over an annotated tree.
// Concat feeds firstpos of the right operand to every last position of the
// left; Star loops its last positions back to its first positions.
func computeFollow(n *astNode, tab followTable) {
	if n == nil {
		return
	}
	computeFollow(n.left, tab)
	computeFollow(n.right, tab)

	switch n.typ {
	case nConcat:
		for pos := range n.left.lastpos {
			tab.addAll(pos, n.right.firstpos)
		}
	case nStar:
		for pos := range n.lastpos {
			tab.addAll(pos, n.firstpos)
		}
	}
}
