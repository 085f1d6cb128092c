package ggdxf

// Flattening defaults, in document units.
const (
	DefaultTolerance = 0.1
	DefaultMaxDepth  = 16
)

// polyline is one flattened subpath in device space.
type polyline struct {
	points []Point
	closed bool
}

// flattener turns a path into polylines. Curves are subdivided until
// flat within tol or depth reaches maxDepth; straight segments are never
// split.
type flattener struct {
	tol      float64
	maxDepth int

	out     []polyline
	cur     []Point
	start   Point
	open    bool
	started bool
}

func newFlattener(tol float64, maxDepth int) *flattener {
	if !(tol > 0) {
		tol = DefaultTolerance
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &flattener{tol: tol, maxDepth: maxDepth}
}

// flatten maps p by m and returns its subpaths. Consecutive duplicate
// vertices are dropped, as is a closing vertex equal to the first one.
func (f *flattener) flatten(p *Path, m Matrix) []polyline {
	f.out, f.cur, f.open, f.started = nil, nil, false, false
	p.Walk(func(v Verb, pts []Point) {
		switch v {
		case VerbMoveTo:
			f.finish(false)
			f.begin(m.TransformPoint(pts[0]))
		case VerbLineTo:
			f.resume()
			f.add(m.TransformPoint(pts[0]))
		case VerbQuadTo:
			f.resume()
			q := QuadBez{f.last(), m.TransformPoint(pts[0]), m.TransformPoint(pts[1])}
			f.cubic(q.Raise(), 0)
		case VerbCubicTo:
			f.resume()
			c := CubicBez{f.last(), m.TransformPoint(pts[0]), m.TransformPoint(pts[1]), m.TransformPoint(pts[2])}
			f.cubic(c, 0)
		case VerbClose:
			f.finish(true)
		}
	})
	f.finish(false)
	return f.out
}

func (f *flattener) begin(pt Point) {
	f.cur = append(f.cur[:0:0], pt)
	f.start = pt
	f.open = true
	f.started = true
}

// resume starts a new subpath at the previous start after a close.
func (f *flattener) resume() {
	if !f.open && f.started {
		f.begin(f.start)
	}
}

func (f *flattener) last() Point {
	return f.cur[len(f.cur)-1]
}

func (f *flattener) add(pt Point) {
	if pt == f.last() {
		return
	}
	f.cur = append(f.cur, pt)
}

func (f *flattener) cubic(c CubicBez, depth int) {
	if depth >= f.maxDepth || c.flatEnough(f.tol) {
		f.add(c.P3)
		return
	}
	l, r := c.Subdivide()
	f.cubic(l, depth+1)
	f.cubic(r, depth+1)
}

func (f *flattener) finish(closed bool) {
	if !f.open {
		return
	}
	pts := f.cur
	if closed && len(pts) > 1 && pts[len(pts)-1] == pts[0] {
		pts = pts[:len(pts)-1]
	}
	f.out = append(f.out, polyline{points: pts, closed: closed})
	f.cur = nil
	f.open = false
}

// FlattenPath maps p by m and flattens it with the given tolerance. Each
// returned slice is one subpath. It exposes the adapter's flattening for
// callers that need the polylines themselves.
func FlattenPath(p *Path, m Matrix, tolerance float64) [][]Point {
	f := newFlattener(tolerance, DefaultMaxDepth)
	var out [][]Point
	for _, pl := range f.flatten(p, m) {
		out = append(out, pl.points)
	}
	return out
}
