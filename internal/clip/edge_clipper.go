package clip

// EdgeClipper clips line segments against a rectangle.
type EdgeClipper struct {
	clip Rect
}

// NewEdgeClipper returns a clipper for the given bounds.
func NewEdgeClipper(clip Rect) *EdgeClipper {
	return &EdgeClipper{clip: clip}
}

// Clip returns the clip rectangle.
func (ec *EdgeClipper) Clip() Rect {
	return ec.clip
}

// Cohen-Sutherland outcodes.
const (
	outcodeInside = 0
	outcodeLeft   = 1
	outcodeRight  = 2
	outcodeBottom = 4
	outcodeTop    = 8
)

func (ec *EdgeClipper) outcode(p Point) int {
	code := outcodeInside
	if p.X < ec.clip.X {
		code |= outcodeLeft
	} else if p.X > ec.clip.Right() {
		code |= outcodeRight
	}
	if p.Y < ec.clip.Y {
		code |= outcodeTop
	} else if p.Y > ec.clip.Bottom() {
		code |= outcodeBottom
	}
	return code
}

// ClipLine clips the segment p0-p1. It reports false when nothing of the
// segment lies inside.
func (ec *EdgeClipper) ClipLine(p0, p1 Point) (Point, Point, bool) {
	code0 := ec.outcode(p0)
	code1 := ec.outcode(p1)
	for {
		if code0|code1 == 0 {
			return p0, p1, true
		}
		if code0&code1 != 0 {
			return p0, p1, false
		}

		codeOut := code0
		if codeOut == 0 {
			codeOut = code1
		}

		var p Point
		switch {
		case codeOut&outcodeTop != 0:
			t := (ec.clip.Y - p0.Y) / (p1.Y - p0.Y)
			p = Point{X: p0.X + t*(p1.X-p0.X), Y: ec.clip.Y}
		case codeOut&outcodeBottom != 0:
			t := (ec.clip.Bottom() - p0.Y) / (p1.Y - p0.Y)
			p = Point{X: p0.X + t*(p1.X-p0.X), Y: ec.clip.Bottom()}
		case codeOut&outcodeRight != 0:
			t := (ec.clip.Right() - p0.X) / (p1.X - p0.X)
			p = Point{X: ec.clip.Right(), Y: p0.Y + t*(p1.Y-p0.Y)}
		default:
			t := (ec.clip.X - p0.X) / (p1.X - p0.X)
			p = Point{X: ec.clip.X, Y: p0.Y + t*(p1.Y-p0.Y)}
		}

		if codeOut == code0 {
			p0 = p
			code0 = ec.outcode(p0)
		} else {
			p1 = p
			code1 = ec.outcode(p1)
		}
	}
}

// ClipPolyline clips the polyline through pts and returns the visible
// runs. A closed polyline is treated as having an extra segment back to
// its first point. Runs that touch are merged, so a polyline entirely
// inside comes back as one run.
func (ec *EdgeClipper) ClipPolyline(pts []Point, closed bool) [][]Point {
	if len(pts) < 2 {
		return nil
	}
	n := len(pts) - 1
	if closed {
		n = len(pts)
	}
	var runs [][]Point
	var run []Point
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%len(pts)]
		ca, cb, ok := ec.ClipLine(a, b)
		if !ok {
			if len(run) > 1 {
				runs = append(runs, run)
			}
			run = nil
			continue
		}
		if len(run) > 0 && run[len(run)-1] == ca {
			run = append(run, cb)
		} else {
			if len(run) > 1 {
				runs = append(runs, run)
			}
			run = []Point{ca, cb}
		}
		if cb != b {
			// Left the rectangle.
			runs = append(runs, run)
			run = nil
		}
	}
	if len(run) > 1 {
		runs = append(runs, run)
	}
	// A closed polyline clipped mid-way starts inside its last run.
	if closed && len(runs) > 1 {
		first, last := runs[0], runs[len(runs)-1]
		if first[0] == last[len(last)-1] {
			merged := append(last[:len(last):len(last)], first[1:]...)
			runs = append([][]Point{merged}, runs[1:len(runs)-1]...)
		}
	}
	return runs
}
