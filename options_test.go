package ggdxf

import (
	"testing"

	"github.com/gogpu/gg-dxf/dxf"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.tolerance != DefaultTolerance || o.maxDepth != DefaultMaxDepth {
		t.Errorf("tolerance %v depth %d", o.tolerance, o.maxDepth)
	}
	if o.dpi != 72 || o.origin != OriginTopLeft || o.layer != "0" || o.rawPalette {
		t.Errorf("defaults = %+v", o)
	}
}

func TestOptionsIgnoreInvalid(t *testing.T) {
	o := defaultOptions()
	for _, opt := range []Option{WithTolerance(0), WithTolerance(-1), WithMaxDepth(0), WithDPI(-72), WithLayer("")} {
		opt(&o)
	}
	d := defaultOptions()
	if o.tolerance != d.tolerance || o.maxDepth != d.maxDepth || o.dpi != d.dpi || o.layer != d.layer {
		t.Errorf("invalid values changed options: %+v", o)
	}
}

func TestWithDPI(t *testing.T) {
	// At 144 dpi a 12pt font is 24 device units high.
	a := NewAdapter(100, 100, WithDPI(144))
	a.DrawText(0, 50, "x", Font{Size: 12}, DefaultState())
	txt := entitiesOf[*dxf.Text](finalize(t, a))[0]
	if txt.Height != 24 {
		t.Errorf("height = %v, want 24", txt.Height)
	}
}

func TestWithDocumentOptions(t *testing.T) {
	a := NewAdapter(10, 10, WithDocumentOptions(dxf.WithUnits(dxf.UnitsMillimeters)))
	if got := finalize(t, a).Units(); got != dxf.UnitsMillimeters {
		t.Errorf("units = %v, want millimeters", got)
	}
}

func TestWithRawPalette(t *testing.T) {
	a := NewAdapter(10, 10, WithRawPalette())
	a.MoveTo(0, 0)
	a.LineTo(5, 5)
	a.StrokePath(DefaultState())
	pl := entitiesOf[*dxf.LWPolyline](finalize(t, a))[0]
	if want := dxf.NearestACI(0, 0, 0); pl.Color != want {
		t.Errorf("color = %d, want %d", pl.Color, want)
	}
}
