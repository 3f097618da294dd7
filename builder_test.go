package rope

import "testing"

func TestBuilderAssemblesInOrder(t *testing.T) {
	b := NewBuilder()
	if err := b.AppendString("World"); err != nil {
		t.Fatalf("AppendString: %v", err)
	}
	if err := b.PrependString("Hello, "); err != nil {
		t.Fatalf("PrependString: %v", err)
	}
	if err := b.AppendString("!"); err != nil {
		t.Fatalf("AppendString: %v", err)
	}
	r, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if r.String() != "Hello, World!" {
		t.Errorf("Build = %q, want %q", r.String(), "Hello, World!")
	}
}

func TestBuilderRejectsStagingAfterBuild(t *testing.T) {
	b := NewBuilder()
	if _, err := b.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := b.AppendString("x"); err == nil {
		t.Error("expected ErrBuilderCompleted after Build")
	}
}

func TestBuilderResetAllowsFreshBuild(t *testing.T) {
	b := NewBuilder()
	_ = b.AppendString("first")
	if _, err := b.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}
	b.Reset()
	_ = b.AppendString("second")
	r, err := b.Build()
	if err != nil {
		t.Fatalf("Build after Reset: %v", err)
	}
	if r.String() != "second" {
		t.Errorf("Build after Reset = %q, want %q", r.String(), "second")
	}
}

func TestBuilderEmptyProducesEmptyRope(t *testing.T) {
	b := NewBuilder()
	r, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !r.IsEmpty() {
		t.Error("empty builder should produce an empty rope")
	}
}
