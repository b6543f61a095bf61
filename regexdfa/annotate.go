package regexdfa

// posTable records, for one conversion, the symbol at every assigned leaf
// position. Positions are dense over 1..n and assigned in strict
// left-to-right leaf order, so the end marker always receives the highest id.
// A fresh table per conversion keeps concurrent conversions independent.
type posTable struct {
	next    int
	symbols map[int]rune
}

func newPosTable() *posTable {
	return &posTable{next: 1, symbols: make(map[int]rune)}
}

func (t *posTable) assign(sym rune) int {
	id := t.next
	t.next++
	t.symbols[id] = sym
	return id
}

func (t *posTable) symbol(id int) rune { return t.symbols[id] }

// endPos returns the position of the end marker (last one assigned).
func (t *posTable) endPos() int { return t.next - 1 }

// annotate computes nullable/firstpos/lastpos bottom-up and assigns leaf
// positions into tab.
func annotate(n *astNode, tab *posTable) {
	switch n.typ {
	case nSymbol:
		n.pos = tab.assign(n.sym)
		n.nullable = false
		n.firstpos = newPosSet(n.pos)
		n.lastpos = newPosSet(n.pos)

	case nConcat:
		annotate(n.left, tab)
		annotate(n.right, tab)
		n.nullable = n.left.nullable && n.right.nullable
		if n.left.nullable {
			n.firstpos = union(n.left.firstpos, n.right.firstpos)
		} else {
			n.firstpos = n.left.firstpos
		}
		if n.right.nullable {
			n.lastpos = union(n.left.lastpos, n.right.lastpos)
		} else {
			n.lastpos = n.right.lastpos
		}

	case nUnion:
		annotate(n.left, tab)
		annotate(n.right, tab)
		n.nullable = n.left.nullable || n.right.nullable
		n.firstpos = union(n.left.firstpos, n.right.firstpos)
		n.lastpos = union(n.left.lastpos, n.right.lastpos)

	case nStar:
		annotate(n.left, tab)
		n.nullable = true
		n.firstpos = n.left.firstpos
		n.lastpos = n.left.lastpos
	}
}
