package ggdxf

import (
	"github.com/gogpu/gg-dxf/dxf"
	"github.com/gogpu/gg-dxf/text"
)

// Origin tells the adapter where the host puts the device origin.
type Origin uint8

const (
	// OriginTopLeft is screen convention: y grows downward. The adapter
	// flips y so the drawing is upright in the y-up CAD space.
	OriginTopLeft Origin = iota
	// OriginBottomLeft is for hosts whose device space already grows
	// upward. No flip is applied.
	OriginBottomLeft
)

// Option configures an Adapter.
//
// Example:
//
//	a := ggdxf.NewAdapter(640, 480,
//		ggdxf.WithTolerance(0.05),
//		ggdxf.WithDocumentOptions(dxf.WithUnits(dxf.UnitsMillimeters)),
//	)
type Option func(*adapterOptions)

type adapterOptions struct {
	tolerance  float64
	maxDepth   int
	dpi        float64
	origin     Origin
	layer      string
	rawPalette bool
	outliner   *text.Outliner
	docOpts    []dxf.Option
}

func defaultOptions() adapterOptions {
	return adapterOptions{
		tolerance: DefaultTolerance,
		maxDepth:  DefaultMaxDepth,
		dpi:       72,
		origin:    OriginTopLeft,
		layer:     "0",
	}
}

// WithTolerance sets the maximum distance, in document units, between a
// curve and its flattened polyline. Non-positive values keep the default.
func WithTolerance(tol float64) Option {
	return func(o *adapterOptions) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

// WithMaxDepth bounds the recursion of curve subdivision. A curve yields
// at most 2^depth segments.
func WithMaxDepth(depth int) Option {
	return func(o *adapterOptions) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// WithDPI sets how many device units make an inch. The default of 72
// makes one device unit one point. Text heights and dash lengths, which
// are given in points, are scaled by dpi/72.
func WithDPI(dpi float64) Option {
	return func(o *adapterOptions) {
		if dpi > 0 {
			o.dpi = dpi
		}
	}
}

// WithOrigin sets the device origin convention.
func WithOrigin(origin Origin) Option {
	return func(o *adapterOptions) {
		o.origin = origin
	}
}

// WithLayer sets the initial layer.
func WithLayer(name string) Option {
	return func(o *adapterOptions) {
		if name != "" {
			o.layer = name
		}
	}
}

// WithRawPalette disables the color remapping that keeps pure black and
// pure white readable on both light and dark CAD backgrounds, so colors
// map to the plain nearest palette index.
func WithRawPalette() Option {
	return func(o *adapterOptions) {
		o.rawPalette = true
	}
}

// WithOutliner sets the font used when text has to be drawn as outlines.
// The default is Go Regular.
func WithOutliner(out *text.Outliner) Option {
	return func(o *adapterOptions) {
		o.outliner = out
	}
}

// WithDocumentOptions passes options to the underlying dxf.Document.
func WithDocumentOptions(opts ...dxf.Option) Option {
	return func(o *adapterOptions) {
		o.docOpts = append(o.docOpts, opts...)
	}
}
