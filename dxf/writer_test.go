package dxf

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "0.0"},
		{1, "1.0"},
		{-2.5, "-2.5"},
		{0.1 + 0.2, "0.3"},
		{1e-12, "0.0"},
		{123456.789, "123456.789"},
	}
	for _, tt := range tests {
		if got := formatFloat(tt.in); got != tt.want {
			t.Errorf("formatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTagWriterEncode(t *testing.T) {
	tw := newTagWriter(&bytes.Buffer{}, charmap.Windows1252)
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii", "Axis 1", "Axis 1"},
		{"latin1", "Größe", "Gr\xf6\xdfe"},
		{"euro is in cp1252", "5 €", "5 \x80"},
		{"arrow is escaped", "a→b", `a\U+2192b`},
		{"astral plane", "x😀", `x\U+1F600`},
		{"control characters", "a\tb\nc", "a b c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tw.encode(tt.in); got != tt.want {
				t.Errorf("encode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTagWriterLayout(t *testing.T) {
	var buf bytes.Buffer
	tw := newTagWriter(&buf, charmap.Windows1252)
	tw.raw(0, "LINE")
	tw.int(370, 25)
	tw.point(10, Vec2{1, 2})
	tw.handle(5, 0x2af)
	if err := tw.flush(); err != nil {
		t.Fatal(err)
	}
	want := "  0\nLINE\n370\n25\n 10\n1.0\n 20\n2.0\n  5\n2AF\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestTagWriterRejectsNonFinite(t *testing.T) {
	var buf bytes.Buffer
	tw := newTagWriter(&buf, charmap.Windows1252)
	tw.float(10, math.NaN())
	tw.raw(0, "EOF")
	err := tw.flush()
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("flush error = %v, want ErrInvalidValue", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %q after error", buf.String())
	}
}
