package ggdxf

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#ff0000", color.NRGBA{255, 0, 0, 255}},
		{"00ff00", color.NRGBA{0, 255, 0, 255}},
		{"#00f", color.NRGBA{0, 0, 255, 255}},
		{"#0000ff80", color.NRGBA{0, 0, 255, 128}},
		{"#abcd", color.NRGBA{0xaa, 0xbb, 0xcc, 0xdd}},
		{"bogus", color.NRGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := Hex(tt.in).Color(); got != tt.want {
			t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFromColor(t *testing.T) {
	c := FromColor(color.NRGBA{R: 255, G: 128, A: 255})
	if r, g, b := c.Bytes(); r != 255 || g != 128 || b != 0 {
		t.Errorf("Bytes = %d %d %d", r, g, b)
	}
	if FromColor(color.Transparent).IsTransparent() != true {
		t.Error("transparent color not transparent")
	}
}

func TestBrushColor(t *testing.T) {
	var nilLinear *LinearGradientBrush
	tests := []struct {
		name         string
		b            Brush
		want         RGBA
		approximated bool
		ok           bool
	}{
		{"nil", nil, RGBA{}, false, false},
		{"solid", Solid(RGB(1, 0, 0)), RGB(1, 0, 0), false, true},
		{"transparent", Solid(RGBA2(1, 0, 0, 0)), RGBA2(1, 0, 0, 0), false, false},
		{"linear", NewLinearGradientBrush(0, 0, 1, 0).AddColorStop(0, RGB(1, 0, 0)).AddColorStop(1, RGB(0, 0, 1)),
			RGB(0.5, 0, 0.5), true, true},
		{"radial", NewRadialGradientBrush(0, 0, 1).AddColorStop(0, White).AddColorStop(0.5, White).AddColorStop(1, Black),
			RGB(2.0/3, 2.0/3, 2.0/3), true, true},
		{"no stops", NewLinearGradientBrush(0, 0, 1, 0), RGBA{}, true, false},
		{"nil gradient", nilLinear, RGBA{}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, approximated, ok := brushColor(tt.b)
			if ok != tt.ok || approximated != tt.approximated {
				t.Fatalf("approximated, ok = %v, %v, want %v, %v", approximated, ok, tt.approximated, tt.ok)
			}
			if diff := cmp.Diff(tt.want, c, approx); diff != "" {
				t.Errorf("color mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDash(t *testing.T) {
	if NewDash() != nil || NewDash(0, 0) != nil {
		t.Error("all zero dash is not solid")
	}
	var solid *Dash
	if solid.IsDashed() {
		t.Error("nil dash is dashed")
	}
	d := NewDash(3, -1, 2)
	if diff := cmp.Diff([]float64{3, 1, 2, 3, 1, 2}, d.Even()); diff != "" {
		t.Errorf("Even mismatch (-want +got):\n%s", diff)
	}
	if got := d.PatternLength(); got != 12 {
		t.Errorf("PatternLength = %v, want 12", got)
	}
	if got := d.Scale(2).PatternLength(); got != 24 {
		t.Errorf("scaled PatternLength = %v, want 24", got)
	}
	c := d.Clone()
	c.Array[0] = 100
	if d.Array[0] != 3 {
		t.Error("Clone shares storage")
	}
}
