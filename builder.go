package rope

import "fmt"

// ErrBuilderCompleted is returned when a fragment is staged into a Builder
// after Build has already been called.
var ErrBuilderCompleted = fmt.Errorf("rope: builder already completed")

// Builder incrementally stages text and finalizes it into a Rope.
//
// Builder collects fragments in the order they are appended or prepended
// and materializes the rope only when Build is called. This keeps the
// O(log n) width-preserving Concat as the single place fragments are
// assembled, rather than growing the rope one small insert at a time.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	cfg Config
	// front keeps prepended fragments in reverse logical order.
	front []string
	// back keeps appended fragments in logical order.
	back []string

	done bool
}

// NewBuilder creates a new, empty rope builder under the default
// configuration.
func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig()}
}

// NewBuilderWithConfig creates a new, empty rope builder under cfg.
func NewBuilderWithConfig(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

// AppendString appends text to the staged build.
func (b *Builder) AppendString(text string) error {
	if b.done {
		return ErrBuilderCompleted
	}
	if text == "" {
		return nil
	}
	b.back = append(b.back, text)
	return nil
}

// PrependString prepends text to the staged build.
func (b *Builder) PrependString(text string) error {
	if b.done {
		return ErrBuilderCompleted
	}
	if text == "" {
		return nil
	}
	b.front = append(b.front, text)
	return nil
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
}

// Build returns the rope built from all staged fragments.
//
// It is illegal to continue staging fragments after Build has been called,
// but Build itself may be called multiple times.
func (b *Builder) Build() (Rope, error) {
	b.done = true
	fragments := b.orderedFragments()
	if len(fragments) == 0 {
		tracer().Debugf("rope builder: no fragments staged, build produces the empty rope")
		return Empty(), nil
	}
	cfg := b.cfg
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	result, err := NewWithConfig(cfg, fragments[0])
	if err != nil {
		return Rope{}, err
	}
	for _, frag := range fragments[1:] {
		next, err := NewWithConfig(cfg, frag)
		if err != nil {
			return Rope{}, err
		}
		result, err = result.Concat(next)
		if err != nil {
			return Rope{}, err
		}
	}
	return result, nil
}

func (b *Builder) orderedFragments() []string {
	total := len(b.front) + len(b.back)
	if total == 0 {
		return nil
	}
	out := make([]string, 0, total)
	for i := len(b.front) - 1; i >= 0; i-- {
		out = append(out, b.front[i])
	}
	out = append(out, b.back...)
	return out
}
