package regexdfa

type nodeType int

const (
	nSymbol nodeType = iota
	nConcat
	nUnion
	nStar
)

// EndMarker is the synthetic terminal appended to every pattern. The
// position assigned to it is what makes a DFA state accepting.
const EndMarker = '#'

type astNode struct {
	typ   nodeType
	left  *astNode
	right *astNode

	sym rune // for nSymbol
	pos int  // position id, assigned during annotation

	nullable bool
	firstpos posSet
	lastpos  posSet
}

func symbolNode(r rune) *astNode { return &astNode{typ: nSymbol, sym: r} }

func concatNode(l, r *astNode) *astNode { return &astNode{typ: nConcat, left: l, right: r} }

func unionNode(l, r *astNode) *astNode { return &astNode{typ: nUnion, left: l, right: r} }

func starNode(c *astNode) *astNode { return &astNode{typ: nStar, left: c} }

// clone deep-copies a subtree. Needed for the `+` desugaring: `a+` becomes
// `a a*`, and each occurrence of the operand must keep its own leaf
// positions, so the operand cannot be shared between the two.
func (n *astNode) clone() *astNode {
	if n == nil {
		return nil
	}
	c := &astNode{typ: n.typ, sym: n.sym}
	c.left = n.left.clone()
	c.right = n.right.clone()
	return c
}
