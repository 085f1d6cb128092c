package ggdxf

import (
	"math"
	"testing"

	"github.com/gogpu/gg-dxf/dxf"
)

func TestStyleMapperColor(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		raw  bool
		want int
	}{
		{"red", RGB(1, 0, 0), false, 1},
		{"yellow", RGB(1, 1, 0), false, 2},
		{"blue", RGB(0, 0, 1), false, 5},
		{"black remapped", Black, false, 250},
		{"gray 5 near black", RGB(5.0/255, 5.0/255, 5.0/255), false, 250},
		{"gray 10 near black", RGB(10.0/255, 10.0/255, 10.0/255), false, 250},
		{"gray 20 near black", RGB(20.0/255, 20.0/255, 20.0/255), false, 250},
		{"gray 51 palette", RGB(51.0/255, 51.0/255, 51.0/255), false, 250},
		{"white remapped", White, false, 255},
		{"alpha ignored", RGBA2(1, 0, 0, 0.3), false, 1},
		{"raw black", Black, true, dxf.NearestACI(0, 0, 0)},
		{"raw white", White, true, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewStyleMapper(1, tt.raw).Color(tt.c); got != tt.want {
				t.Errorf("Color(%v) = %d, want %d", tt.c, got, tt.want)
			}
		})
	}
}

func TestStyleMapperColorNeverByBlockOrByLayer(t *testing.T) {
	m := NewStyleMapper(1, false)
	for r := 0.0; r <= 1; r += 0.1 {
		for g := 0.0; g <= 1; g += 0.1 {
			for b := 0.0; b <= 1; b += 0.1 {
				if got := m.Color(RGB(r, g, b)); got < 1 || got > 255 {
					t.Fatalf("Color(%v, %v, %v) = %d", r, g, b, got)
				}
			}
		}
	}
}

func TestStyleMapperLineweight(t *testing.T) {
	m := NewStyleMapper(1, false)
	tests := []struct {
		points float64
		want   dxf.Lineweight
	}{
		{0, 0},
		{0.25, 9},
		{0.5, 18},
		{1, 35},
		{2, 70},
		{100, 211},
	}
	for _, tt := range tests {
		if got := m.Lineweight(tt.points); got != tt.want {
			t.Errorf("Lineweight(%v) = %d, want %d", tt.points, got, tt.want)
		}
	}
}

func TestStyleMapperLinetype(t *testing.T) {
	tests := []struct {
		name      string
		dash      *Dash
		unitsPerP float64
		want      string
		scale     float64
	}{
		{"dashed", NewDash(6, 3), 1, "DASHED", 12},
		{"dashed odd", NewDash(4), 1, "DASHED", 32.0 / 3},
		{"dashed at 2x", NewDash(6, 3), 2, "DASHED", 24},
		{"dot", NewDash(0.1, 4), 1, "DOT", 4.1 / 0.25},
		{"dashdot", NewDash(8, 3, 1, 3), 1, "DASHDOT", 15},
		{"center", NewDash(20, 4, 4, 4), 1, "CENTER", 16},
		{"divide", NewDash(5, 2, 1, 2, 1, 2), 1, "DIVIDE", 13.0 / 1.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lt, scale, ok := NewStyleMapper(tt.unitsPerP, false).Linetype(tt.dash)
			if !ok {
				t.Fatal("no linetype")
			}
			if lt.Name != tt.want {
				t.Errorf("linetype = %s, want %s", lt.Name, tt.want)
			}
			if math.Abs(scale-tt.scale) > 1e-9 {
				t.Errorf("scale = %v, want %v", scale, tt.scale)
			}
		})
	}

	t.Run("solid", func(t *testing.T) {
		if _, _, ok := NewStyleMapper(1, false).Linetype(nil); ok {
			t.Error("nil dash matched a linetype")
		}
	})
	t.Run("unmatched length", func(t *testing.T) {
		if _, _, ok := NewStyleMapper(1, false).Linetype(NewDash(1, 1, 1, 1, 1, 1, 1, 1)); ok {
			t.Error("eight element dash matched a linetype")
		}
	})
}
