package rope

import "testing"

func TestCharIteratorWalksInOrder(t *testing.T) {
	s := "the quick brown fox"
	r, err := New(s)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	it, err := r.Iterator(0)
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
}

func TestCharIteratorResumesFromMiddle(t *testing.T) {
	s := "abcdefghijklmnop"
	r, err := New(s)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	it, err := r.Iterator(8)
	if err != nil {
		t.Fatalf("Iterator: %v", err)
	}
	var out []rune
	for it.HasNext() {
		ch, _ := it.Next()
		out = append(out, ch)
	}
	if string(out) != s[8:] {
		t.Errorf("resumed iterator produced %q, want %q", string(out), s[8:])
	}
}

func TestForEachStopsEarly(t *testing.T) {
	r, err := New("abcdef")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var seen []rune
	err = r.ForEach(0, func(index int, ch rune) bool {
		seen = append(seen, ch)
		return index < 2
	})
	if err != nil {
		t.Fatalf("ForEach: %v", err)
	}
	if string(seen) != "abc" {
		t.Errorf("ForEach stopped at %q, want %q", string(seen), "abc")
	}
}
