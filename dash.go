package ggdxf

import "math"

// Dash is a stroke dash pattern of alternating dash and gap lengths, in
// points. An odd number of lengths repeats once to make the pattern even,
// so [5] means 5 on, 5 off.
type Dash struct {
	Array  []float64
	Offset float64
}

// NewDash returns a pattern from the given lengths. Negative lengths are
// taken by magnitude. It returns nil, a solid line, when no length is
// positive.
func NewDash(lengths ...float64) *Dash {
	solid := true
	for _, l := range lengths {
		if l != 0 {
			solid = false
			break
		}
	}
	if solid {
		return nil
	}
	arr := make([]float64, len(lengths))
	for i, l := range lengths {
		arr[i] = math.Abs(l)
	}
	return &Dash{Array: arr}
}

// IsDashed reports whether d describes a broken line.
func (d *Dash) IsDashed() bool {
	return d.PatternLength() > 0
}

// Even returns the pattern with odd-length arrays repeated once.
func (d *Dash) Even() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return append([]float64(nil), d.Array...)
	}
	out := make([]float64, 0, 2*len(d.Array))
	out = append(out, d.Array...)
	return append(out, d.Array...)
}

// PatternLength returns the length of one period of the even pattern.
func (d *Dash) PatternLength() float64 {
	var sum float64
	for _, l := range d.Even() {
		sum += l
	}
	return sum
}

// Scale returns the pattern with all lengths multiplied by s.
func (d *Dash) Scale(s float64) *Dash {
	if d == nil {
		return nil
	}
	arr := make([]float64, len(d.Array))
	for i, l := range d.Array {
		arr[i] = l * s
	}
	return &Dash{Array: arr, Offset: d.Offset * s}
}

// Clone returns a deep copy.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: append([]float64(nil), d.Array...), Offset: d.Offset}
}
