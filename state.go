package ggdxf

import "github.com/gogpu/gg-dxf/dxf"

// FillRule decides which regions of a self-intersecting path are inside.
type FillRule uint8

const (
	// FillRuleEvenOdd fills regions crossed an odd number of times.
	FillRuleEvenOdd FillRule = iota
	// FillRuleNonZero is accepted but emitted as even-odd, the only rule a
	// DXF hatch offers.
	FillRuleNonZero
)

func (r FillRule) String() string {
	if r == FillRuleNonZero {
		return "NonZero"
	}
	return "EvenOdd"
}

// GraphicsState is the styling snapshot that accompanies each primitive.
// The adapter only reads it.
//
// Transform maps local coordinates to device coordinates. Its zero value
// is degenerate, so start from DefaultState.
type GraphicsState struct {
	// Stroke paints lines. Nil paints nothing.
	Stroke Brush
	// Fill paints areas and text. Nil paints nothing; text then falls
	// back to Stroke.
	Fill Brush
	// LineWidth is in points.
	LineWidth float64
	// Dash is nil for solid lines.
	Dash *Dash
	// Clip optionally confines this primitive to a device space rectangle,
	// in addition to any clip applied on the adapter.
	Clip      *Rect
	Transform Matrix
	// Layer overrides the adapter's current layer when set.
	Layer    string
	FillRule FillRule
}

// DefaultState returns a 1pt black stroke with no fill and the identity
// transform.
func DefaultState() GraphicsState {
	return GraphicsState{
		Stroke:    Solid(Black),
		LineWidth: 1,
		Transform: Identity(),
	}
}

// Text alignment, shared with the drawing model.
type (
	HAlign = dxf.HAlign
	VAlign = dxf.VAlign
)

const (
	AlignLeft     = dxf.AlignLeft
	AlignCenter   = dxf.AlignCenter
	AlignRight    = dxf.AlignRight
	AlignBaseline = dxf.AlignBaseline
	AlignBottom   = dxf.AlignBottom
	AlignMiddle   = dxf.AlignMiddle
	AlignTop      = dxf.AlignTop
)

// Font describes how a string is set.
type Font struct {
	// Size is the em size in points.
	Size   float64
	HAlign HAlign
	VAlign VAlign
	// Style names a DXF text style. Empty means "Standard".
	Style string
}
