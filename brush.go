package ggdxf

// Brush is the paint of a stroke or fill. The set of brushes is closed:
// SolidBrush, *LinearGradientBrush and *RadialGradientBrush. A nil Brush
// paints nothing.
type Brush interface {
	brushMarker()
}

// SolidBrush paints a single color.
type SolidBrush struct {
	Color RGBA
}

func (SolidBrush) brushMarker() {}

// Solid returns a SolidBrush of c.
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// GradientStop is a color at an offset in [0, 1] along a gradient.
type GradientStop struct {
	Offset float64
	Color  RGBA
}

// LinearGradientBrush blends its stops along the line from Start to End.
type LinearGradientBrush struct {
	Start, End Point
	Stops      []GradientStop
}

func (*LinearGradientBrush) brushMarker() {}

// NewLinearGradientBrush returns a gradient from (x0, y0) to (x1, y1).
func NewLinearGradientBrush(x0, y0, x1, y1 float64) *LinearGradientBrush {
	return &LinearGradientBrush{Start: Pt(x0, y0), End: Pt(x1, y1)}
}

// AddColorStop appends a stop and returns g for chaining.
func (g *LinearGradientBrush) AddColorStop(offset float64, c RGBA) *LinearGradientBrush {
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: c})
	return g
}

// RadialGradientBrush blends its stops outward from Center.
type RadialGradientBrush struct {
	Center Point
	Radius float64
	Stops  []GradientStop
}

func (*RadialGradientBrush) brushMarker() {}

// NewRadialGradientBrush returns a gradient around (cx, cy).
func NewRadialGradientBrush(cx, cy, r float64) *RadialGradientBrush {
	return &RadialGradientBrush{Center: Pt(cx, cy), Radius: r}
}

// AddColorStop appends a stop and returns g for chaining.
func (g *RadialGradientBrush) AddColorStop(offset float64, c RGBA) *RadialGradientBrush {
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: c})
	return g
}

// brushColor resolves b to the single color the drawing can hold.
// Gradients become the mean of their stop colors and report approximated.
// ok is false when b paints nothing.
func brushColor(b Brush) (c RGBA, approximated, ok bool) {
	switch b := b.(type) {
	case nil:
		return RGBA{}, false, false
	case SolidBrush:
		return b.Color, false, !b.Color.IsTransparent()
	case *SolidBrush:
		if b == nil {
			return RGBA{}, false, false
		}
		return b.Color, false, !b.Color.IsTransparent()
	case *LinearGradientBrush:
		if b == nil {
			return RGBA{}, false, false
		}
		c, ok = averageStops(b.Stops)
		return c, true, ok
	case *RadialGradientBrush:
		if b == nil {
			return RGBA{}, false, false
		}
		c, ok = averageStops(b.Stops)
		return c, true, ok
	default:
		return RGBA{}, false, false
	}
}

func averageStops(stops []GradientStop) (RGBA, bool) {
	if len(stops) == 0 {
		return RGBA{}, false
	}
	var sum RGBA
	for _, s := range stops {
		sum.R += s.Color.R
		sum.G += s.Color.G
		sum.B += s.Color.B
		sum.A += s.Color.A
	}
	n := float64(len(stops))
	avg := RGBA{R: sum.R / n, G: sum.G / n, B: sum.B / n, A: sum.A / n}
	return avg, !avg.IsTransparent()
}
