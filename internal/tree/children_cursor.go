package tree

// childrenCursor is a thin, stack-local view over an internal node that adds
// a monotone cursor used during descent (§4.3, §9 "children-iterator
// view"). Besides the cursor it exposes only the underlying node's weight;
// it is not itself a node and is never installed into the persistent tree:
// it is allocated fresh for the
// lifetime of one descent and carries single-owner, mutable cursor state.
type childrenCursor struct {
	node   *internalNode
	cursor int // index of the child nextChild will yield next
}

func newChildrenCursor(n *internalNode) *childrenCursor {
	return &childrenCursor{node: n}
}

// weight returns the underlying node's weight (§3): the total leaf length
// reachable from its leftmost child.
func (c *childrenCursor) weight() int { return c.node.w }

// hasNext reports whether nextChild would succeed.
func (c *childrenCursor) hasNext() bool {
	return c.cursor < len(c.node.children)
}

// nextChild yields the next unvisited child, in left-to-right order, and
// advances the cursor.
func (c *childrenCursor) nextChild() (node, bool) {
	if !c.hasNext() {
		return nil, false
	}
	child := c.node.children[c.cursor]
	c.cursor++
	return child, true
}
