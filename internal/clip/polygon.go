package clip

// ClipPolygon clips a closed polygon to r with the Sutherland-Hodgman
// algorithm. The result is empty when fewer than three vertices remain.
// Concave polygons may come back with zero-width bridges along the
// border; a solid even-odd fill does not show them.
func ClipPolygon(pts []Point, r Rect) []Point {
	if len(pts) < 3 || r.Empty() {
		return nil
	}
	out := pts
	edges := [4]struct {
		inside    func(Point) bool
		intersect func(a, b Point) Point
	}{
		{
			inside: func(p Point) bool { return p.X >= r.X },
			intersect: func(a, b Point) Point {
				return a.Lerp(b, (r.X-a.X)/(b.X-a.X))
			},
		},
		{
			inside: func(p Point) bool { return p.X <= r.Right() },
			intersect: func(a, b Point) Point {
				return a.Lerp(b, (r.Right()-a.X)/(b.X-a.X))
			},
		},
		{
			inside: func(p Point) bool { return p.Y >= r.Y },
			intersect: func(a, b Point) Point {
				return a.Lerp(b, (r.Y-a.Y)/(b.Y-a.Y))
			},
		},
		{
			inside: func(p Point) bool { return p.Y <= r.Bottom() },
			intersect: func(a, b Point) Point {
				return a.Lerp(b, (r.Bottom()-a.Y)/(b.Y-a.Y))
			},
		},
	}
	for _, e := range edges {
		in := out
		out = make([]Point, 0, len(in)+4)
		if len(in) == 0 {
			break
		}
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur):
				if !e.inside(prev) {
					out = append(out, e.intersect(prev, cur))
				}
				out = append(out, cur)
			case e.inside(prev):
				out = append(out, e.intersect(prev, cur))
			}
			prev = cur
		}
	}
	out = dedupe(out)
	if len(out) < 3 {
		return nil
	}
	return out
}

// dedupe drops consecutive equal vertices, including across the wrap.
func dedupe(pts []Point) []Point {
	out := pts[:0]
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}
