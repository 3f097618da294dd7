package tree

import "testing"

func leavesOf(s string, cfg Config) []node {
	frags := splitIntoLeaves(cfg, []rune(s))
	out := make([]node, len(frags))
	for i, f := range frags {
		out[i] = &leafNode{leaf: f}
	}
	return out
}

func TestCreateParentComputesWeightAndHeight(t *testing.T) {
	cfg := Config{MaxLeaf: 4, MinChildren: 2, MaxChildren: 4}
	children := leavesOf("abcdefgh", cfg) // 2 leaves of length 4
	parent, err := createParent(cfg, children...)
	if err != nil {
		t.Fatalf("createParent: %v", err)
	}
	if parent.weight() != 4 {
		t.Errorf("weight = %d, want 4 (leftmost child length)", parent.weight())
	}
	if parent.size() != 8 {
		t.Errorf("size = %d, want 8", parent.size())
	}
	if parent.height() != 1 {
		t.Errorf("height = %d, want 1", parent.height())
	}
}

func TestCreateParentRejectsTooManyChildren(t *testing.T) {
	cfg := Config{MaxLeaf: 4, MinChildren: 1, MaxChildren: 2}
	children := leavesOf("abcdefgh", cfg) // 2 leaves of length 4 each -> ok
	if _, err := createParent(cfg, children...); err != nil {
		t.Fatalf("unexpected error for exactly MaxChildren: %v", err)
	}
	tooMany := append(children, &leafNode{leaf: LeafFromString("x")})
	if _, err := createParent(cfg, tooMany...); err == nil {
		t.Error("expected ErrInvalidArgument for MaxChildren+1 children")
	}
}

func TestMergeBuildsBalancedTreeAcrossMultipleLevels(t *testing.T) {
	cfg := Config{MaxLeaf: 2, MinChildren: 2, MaxChildren: 2}
	// 5 leaves, MaxChildren=2: needs more than one level.
	nodes := leavesOf("abcdefghij", cfg)
	root, err := merge(cfg, nodes)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if !isBalanced(root, cfg) {
		t.Fatalf("merge produced an unbalanced tree")
	}
	if err := Check(root, cfg); err != nil {
		t.Errorf("Check: %v", err)
	}
	if root.size() != 10 {
		t.Errorf("size = %d, want 10", root.size())
	}
}

func TestReplaceChildByIdentity(t *testing.T) {
	cfg := Config{MaxLeaf: 4, MinChildren: 2, MaxChildren: 4}
	left := &leafNode{leaf: LeafFromString("ab")}
	right := &leafNode{leaf: LeafFromString("cd")}
	parent, err := createParent(cfg, left, right)
	if err != nil {
		t.Fatalf("createParent: %v", err)
	}
	replacement := &leafNode{leaf: LeafFromString("ZZ")}
	updated, err := replaceChild(cfg, parent, node(left), node(replacement))
	if err != nil {
		t.Fatalf("replaceChild: %v", err)
	}
	if updated.children[0] != node(replacement) {
		t.Error("replaceChild did not substitute by identity")
	}
	if updated.children[1] != node(right) {
		t.Error("replaceChild disturbed the untouched sibling")
	}
}

func TestDeleteChildAtCollapsesToEmptySentinel(t *testing.T) {
	cfg := Config{MaxLeaf: 4, MinChildren: 1, MaxChildren: 4}
	only := &leafNode{leaf: LeafFromString("a")}
	parent, err := createParent(cfg, only)
	if err != nil {
		t.Fatalf("createParent: %v", err)
	}
	collapsed, err := deleteChildAt(cfg, parent, 0)
	if err != nil {
		t.Fatalf("deleteChildAt: %v", err)
	}
	if !isEmptySentinel(collapsed) {
		t.Error("expected the empty sentinel after deleting the last child")
	}
}
