package tree

import "testing"

func TestHistoryIteratorWalksInOrder(t *testing.T) {
	cfg := Config{MaxLeaf: 3, MinChildren: 2, MaxChildren: 3}
	s := "the quick brown fox"
	tr, err := New(cfg, s)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	it, err := tr.Iterator(0)
	if err != nil {
		t.Fatalf("Iterator: %v", err)
	}
	var out []rune
	for it.HasNext() {
		ch, err := it.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		out = append(out, ch)
	}
	if string(out) != s {
		t.Errorf("iterator produced %q, want %q", string(out), s)
	}
	if it.HasNext() {
		t.Error("iterator should be closed after exhausting the tree")
	}
}

func TestHistoryIteratorResumesFromMiddle(t *testing.T) {
	cfg := Config{MaxLeaf: 3, MinChildren: 2, MaxChildren: 3}
	s := "abcdefghijklmnopqrstuvwxyz"
	tr, err := New(cfg, s)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	it, err := tr.Iterator(10)
	if err != nil {
		t.Fatalf("Iterator: %v", err)
	}
	var out []rune
	for it.HasNext() {
		ch, _ := it.Next()
		out = append(out, ch)
	}
	if string(out) != s[10:] {
		t.Errorf("resumed iterator produced %q, want %q", string(out), s[10:])
	}
}

func TestHistoryIteratorNextWithoutHasNextFails(t *testing.T) {
	tr, err := New(WithDefaults(), "abc")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	it, err := tr.Iterator(0)
	if err != nil {
		t.Fatalf("Iterator: %v", err)
	}
	if _, err := it.Next(); err == nil {
		t.Error("expected ErrUnexpected calling Next before HasNext")
	}
}
