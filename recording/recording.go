package recording

import (
	"fmt"

	ggdxf "github.com/gogpu/gg-dxf"
)

// Recording is an immutable sequence of recorded steps.
type Recording struct {
	width, height float64
	steps         []ggdxf.Step
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() float64 {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() float64 {
	return r.height
}

// Len returns the number of steps.
func (r *Recording) Len() int {
	return len(r.steps)
}

// Steps returns a copy of the recorded steps.
func (r *Recording) Steps() []ggdxf.Step {
	return append([]ggdxf.Step(nil), r.steps...)
}

// Playback applies the recording to a. It can be called for several
// adapters. Primitives a cannot translate are skipped.
func (r *Recording) Playback(a *ggdxf.Adapter) error {
	ggdxf.Logger().Debug("recording: playback", "steps", len(r.steps))
	return a.Render(r.steps)
}

// Render plays the recording into a new adapter of the recording size and
// saves it to path. A nil reg uses ggdxf.DefaultRegistry.
func (r *Recording) Render(path string, reg *ggdxf.Registry, opts ...ggdxf.Option) error {
	if reg == nil {
		reg = ggdxf.DefaultRegistry()
	}
	a := ggdxf.NewAdapter(r.width, r.height, opts...)
	if err := r.Playback(a); err != nil {
		return fmt.Errorf("recording: %w", err)
	}
	if err := reg.Save(a, path); err != nil {
		return fmt.Errorf("recording: %w", err)
	}
	st := a.Stats()
	ggdxf.Logger().Debug("recording: rendered", "path", path, "entities", st.Entities(), "skipped", st.Skipped)
	return nil
}
