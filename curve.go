package ggdxf

// QuadBez is a quadratic Bezier segment.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval returns the point at parameter t in [0, 1].
func (q QuadBez) Eval(t float64) Point {
	mt := 1 - t
	return q.P0.Mul(mt * mt).Add(q.P1.Mul(2 * mt * t)).Add(q.P2.Mul(t * t))
}

// Raise returns the same curve as a cubic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		P0: q.P0,
		P1: q.P0.Add(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		P2: q.P2.Add(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		P3: q.P2,
	}
}

// CubicBez is a cubic Bezier segment.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval returns the point at parameter t in [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// Subdivide splits the curve at t=0.5 with de Casteljau's construction.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)
	return CubicBez{c.P0, p01, p012, mid}, CubicBez{mid, p123, p23, c.P3}
}

// Transform maps the control points by m. Affine maps keep Bezier curves
// Bezier curves, so this equals transforming the curve.
func (c CubicBez) Transform(m Matrix) CubicBez {
	return CubicBez{
		P0: m.TransformPoint(c.P0),
		P1: m.TransformPoint(c.P1),
		P2: m.TransformPoint(c.P2),
		P3: m.TransformPoint(c.P3),
	}
}

// flatEnough reports whether the chord P0-P3 stays within tol of the
// curve. It uses the bound
//
//	max(ux², vx²) + max(uy², vy²) <= 16·tol²
//
// with u = 3·P1 - 2·P0 - P3 and v = 3·P2 - P0 - 2·P3, which bounds the
// distance between the curve and the chord.
func (c CubicBez) flatEnough(tol float64) bool {
	ux := 3*c.P1.X - 2*c.P0.X - c.P3.X
	uy := 3*c.P1.Y - 2*c.P0.Y - c.P3.Y
	vx := 3*c.P2.X - c.P0.X - 2*c.P3.X
	vy := 3*c.P2.Y - c.P0.Y - 2*c.P3.Y
	return max(ux*ux, vx*vx)+max(uy*uy, vy*vy) <= 16*tol*tol
}
