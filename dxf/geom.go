package dxf

import "math"

// Vec2 is a point or vector in drawing units.
type Vec2 struct {
	X, Y float64
}

// Add returns v+w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Scale returns v*s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Extents is an axis-aligned bounding box. The zero value is empty.
type Extents struct {
	Min, Max Vec2
	valid    bool
}

// Add grows e to contain p. Non-finite points are ignored.
func (e *Extents) Add(p Vec2) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return
	}
	if !e.valid {
		e.Min, e.Max, e.valid = p, p, true
		return
	}
	e.Min.X = math.Min(e.Min.X, p.X)
	e.Min.Y = math.Min(e.Min.Y, p.Y)
	e.Max.X = math.Max(e.Max.X, p.X)
	e.Max.Y = math.Max(e.Max.Y, p.Y)
}

// Union grows e to contain o.
func (e *Extents) Union(o Extents) {
	if !o.valid {
		return
	}
	e.Add(o.Min)
	e.Add(o.Max)
}

// IsEmpty reports whether no point was added.
func (e Extents) IsEmpty() bool { return !e.valid }

// Size returns the width and height of e.
func (e Extents) Size() (w, h float64) {
	if !e.valid {
		return 0, 0
	}
	return e.Max.X - e.Min.X, e.Max.Y - e.Min.Y
}

// Center returns the midpoint of e.
func (e Extents) Center() Vec2 {
	return Vec2{(e.Min.X + e.Max.X) / 2, (e.Min.Y + e.Max.Y) / 2}
}
