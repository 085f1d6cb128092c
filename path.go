package ggdxf

import "math"

// Verb identifies a path command.
type Verb uint8

// Path verbs. Each consumes the listed number of points.
const (
	VerbMoveTo  Verb = iota // 1
	VerbLineTo              // 1
	VerbQuadTo              // 2
	VerbCubicTo             // 3
	VerbClose               // 0
)

var verbPoints = [...]int{1, 1, 2, 3, 0}

var verbNames = [...]string{"MoveTo", "LineTo", "QuadTo", "CubicTo", "Close"}

func (v Verb) String() string {
	if int(v) < len(verbNames) {
		return verbNames[v]
	}
	return "Verb(?)"
}

// Path is a sequence of subpaths built from lines and Bezier curves.
// The zero value is an empty path.
type Path struct {
	verbs      []Verb
	points     []Point
	start      Point
	current    Point
	hasCurrent bool
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

func (p *Path) push(v Verb, pts ...Point) {
	p.verbs = append(p.verbs, v)
	p.points = append(p.points, pts...)
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.push(VerbMoveTo, pt)
	p.start, p.current, p.hasCurrent = pt, pt, true
}

// ensureStart begins a subpath at pt when there is no current point.
func (p *Path) ensureStart(pt Point) {
	if !p.hasCurrent {
		p.MoveTo(pt.X, pt.Y)
	}
}

// LineTo adds a line to (x, y). Without a current point it starts a
// subpath there instead.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	if !p.hasCurrent {
		p.MoveTo(x, y)
		return
	}
	p.push(VerbLineTo, pt)
	p.current = pt
}

// QuadTo adds a quadratic Bezier with control point (cx, cy). Without a
// current point the subpath starts at the control point.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.ensureStart(Pt(cx, cy))
	end := Pt(x, y)
	p.push(VerbQuadTo, Pt(cx, cy), end)
	p.current = end
}

// CubicTo adds a cubic Bezier with control points (c1x, c1y) and
// (c2x, c2y). Without a current point the subpath starts at the first
// control point.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.ensureStart(Pt(c1x, c1y))
	end := Pt(x, y)
	p.push(VerbCubicTo, Pt(c1x, c1y), Pt(c2x, c2y), end)
	p.current = end
}

// Close closes the current subpath. The current point moves back to the
// subpath start.
func (p *Path) Close() {
	if !p.hasCurrent {
		return
	}
	p.push(VerbClose)
	p.current = p.start
}

// Clear removes all subpaths.
func (p *Path) Clear() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.hasCurrent = false
}

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.verbs) == 0
}

// CurrentPoint returns the end of the last command.
func (p *Path) CurrentPoint() (Point, bool) {
	return p.current, p.hasCurrent
}

// Walk calls fn for every command. pts aliases the path storage and must
// not be retained.
func (p *Path) Walk(fn func(v Verb, pts []Point)) {
	if p == nil {
		return
	}
	i := 0
	for _, v := range p.verbs {
		n := verbPoints[v]
		fn(v, p.points[i:i+n])
		i += n
	}
}

// Transform returns a copy of p with every point mapped by m.
func (p *Path) Transform(m Matrix) *Path {
	out := p.Clone()
	for i, pt := range out.points {
		out.points[i] = m.TransformPoint(pt)
	}
	out.start = m.TransformPoint(out.start)
	out.current = m.TransformPoint(out.current)
	return out
}

// Clone returns a deep copy.
func (p *Path) Clone() *Path {
	if p == nil {
		return NewPath()
	}
	return &Path{
		verbs:      append([]Verb(nil), p.verbs...),
		points:     append([]Point(nil), p.points...),
		start:      p.start,
		current:    p.current,
		hasCurrent: p.hasCurrent,
	}
}

// Rectangle adds a closed rectangle.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498307936

// Ellipse adds a closed ellipse made of four cubic arcs.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	ox, oy := rx*kappa, ry*kappa
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Circle adds a closed circle.
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// Arc adds a circular arc from angle1 to angle2 (radians, increasing).
// It connects to the current point with a line if there is one.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	for angle2 < angle1 {
		angle2 += 2 * math.Pi
	}
	start := Pt(cx+r*math.Cos(angle1), cy+r*math.Sin(angle1))
	if p.hasCurrent {
		p.LineTo(start.X, start.Y)
	} else {
		p.MoveTo(start.X, start.Y)
	}
	n := max(1, int(math.Ceil((angle2-angle1)/(math.Pi/2))))
	step := (angle2 - angle1) / float64(n)
	for i := range n {
		a1 := angle1 + float64(i)*step
		p.arcSegment(cx, cy, r, a1, a1+step)
	}
}

// arcSegment adds one cubic for an arc of at most 90 degrees.
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	k := 4.0 / 3.0 * math.Tan((a2-a1)/4)
	s1, c1 := math.Sincos(a1)
	s2, c2 := math.Sincos(a2)
	p.CubicTo(
		cx+r*(c1-k*s1), cy+r*(s1+k*c1),
		cx+r*(c2+k*s2), cy+r*(s2-k*c2),
		cx+r*c2, cy+r*s2,
	)
}

// RoundedRectangle adds a closed rectangle with corners of radius r.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		p.Rectangle(x, y, w, h)
		return
	}
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.arcSegment(x+w-r, y+r, r, -math.Pi/2, 0)
	p.LineTo(x+w, y+h-r)
	p.arcSegment(x+w-r, y+h-r, r, 0, math.Pi/2)
	p.LineTo(x+r, y+h)
	p.arcSegment(x+r, y+h-r, r, math.Pi/2, math.Pi)
	p.LineTo(x, y+r)
	p.arcSegment(x+r, y+r, r, math.Pi, 3*math.Pi/2)
	p.Close()
}
