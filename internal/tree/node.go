package tree

// node is the tagged variant used throughout the tree: either a leafNode
// wrapping a Leaf, or an internalNode with 1..MaxChildren children. Both are
// immutable once constructed; every mutation returns a new node.
type node interface {
	isLeaf() bool
	// weight is the leaf's length for a leaf, or the total leaf length
	// reachable from the leftmost child for an internal node (§3).
	weight() int
	// size is the total leaf length reachable from this node. size()
	// equals weight() for a leaf; for an internal node it additionally
	// accounts for every child after the leftmost one.
	size() int
	height() int
	isLegal(cfg Config) bool
	isEmpty() bool
}

// leafNode is a terminal node.
type leafNode struct {
	leaf Leaf
}

func (n *leafNode) isLeaf() bool  { return true }
func (n *leafNode) weight() int   { return n.leaf.Len() }
func (n *leafNode) size() int     { return n.leaf.Len() }
func (n *leafNode) height() int   { return 0 }
func (n *leafNode) isEmpty() bool { return n.leaf.IsEmpty() }

func (n *leafNode) isLegal(cfg Config) bool {
	return n.leaf.IsLegal(cfg)
}

// internalNode is a non-terminal node. w caches the weight of §3 (the total
// leaf length under children[0]); total caches the leaf length under the
// whole subtree, used to compute w for parents in O(1); h caches
// 1+max(children height).
type internalNode struct {
	children []node
	w        int
	total    int
	h        int
}

func (n *internalNode) isLeaf() bool  { return false }
func (n *internalNode) weight() int   { return n.w }
func (n *internalNode) size() int     { return n.total }
func (n *internalNode) height() int   { return n.h }
func (n *internalNode) isEmpty() bool { return len(n.children) == 0 }

func (n *internalNode) isLegal(cfg Config) bool {
	if len(n.children) == 0 || len(n.children) > cfg.MaxChildren {
		return false
	}
	for _, c := range n.children {
		if c.height() >= n.h {
			return false
		}
	}
	return true
}

// emptyNode is the distinguished empty sentinel of §3: a unique internal
// node with weight=0, height=0, no children. It is not legal, and it never
// appears as a non-root child.
var emptyNode = &internalNode{children: nil, w: 0, total: 0, h: 0}

func isEmptySentinel(n node) bool {
	in, ok := n.(*internalNode)
	return ok && in == emptyNode
}

// isBalanced reports whether n is legal, non-empty, and every child is
// balanced (spec §3 "Balanced"). The empty sentinel is not balanced.
func isBalanced(n node, cfg Config) bool {
	if n == nil || n.isEmpty() {
		return false
	}
	if in, ok := n.(*internalNode); ok {
		if !in.isLegal(cfg) {
			return false
		}
		for _, c := range in.children {
			if !isBalanced(c, cfg) {
				return false
			}
		}
		return true
	}
	ln := n.(*leafNode)
	return ln.isLegal(cfg)
}

// totalOf sums size() over children, used when materializing a fresh
// internalNode.
func totalOf(children []node) int {
	total := 0
	for _, c := range children {
		total += c.size()
	}
	return total
}

func heightOf(children []node) int {
	max := 0
	for _, c := range children {
		if c.height() > max {
			max = c.height()
		}
	}
	return max + 1
}
