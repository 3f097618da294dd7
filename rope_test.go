package rope

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewStringRope(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	r, err := New("Hello World")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Logf("r = %q", r.String())
	if r.String() != "Hello World" {
		t.Errorf("expected rope.String() to be 'Hello World', is not")
	}
	if r.Len() != 11 {
		t.Errorf("Len() = %d, want 11", r.Len())
	}
}

func TestEmptyRope(t *testing.T) {
	r := Empty()
	if !r.IsEmpty() {
		t.Error("Empty() should be empty")
	}
	if r.String() != "" {
		t.Errorf("String() = %q, want empty", r.String())
	}
	zero := Rope{}
	if !zero.IsEmpty() {
		t.Error("zero value of Rope should behave as empty")
	}
}

func TestRopeGet(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	r, err := New("Hello World")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ch, ok := r.Get(6)
	if !ok || ch != 'W' {
		t.Errorf("Get(6) = %q,%v want 'W',true", ch, ok)
	}
	if _, ok := r.Get(r.Len()); ok {
		t.Error("Get(len) should fail")
	}
}

func TestRopeCheckOnConstructedRope(t *testing.T) {
	cfg := Config{MaxLeaf: 4, MinChildren: 2, MaxChildren: 3}
	r, err := NewWithConfig(cfg, "the quick brown fox jumps over the lazy dog")
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	if err := r.Check(); err != nil {
		t.Errorf("Check: %v", err)
	}
}
