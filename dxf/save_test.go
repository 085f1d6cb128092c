package dxf

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestSaveAs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plot.dxf")

	d := New()
	px := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	px.Set(1, 1, color.NRGBA{255, 0, 0, 255})
	d.Add(&Image{Def: &ImageDef{Pixels: px}, U: Vec2{1, 0}, V: Vec2{0, 1}})
	d.Add(&LWPolyline{Points: []Vec2{{0, 0}, {1, 1}}})
	if err := d.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "  0\nSECTION\n") || !strings.HasSuffix(string(data), "  0\nEOF\n") {
		t.Error("saved file is not a complete DXF document")
	}
	if !strings.Contains(string(data), "\nplot-1.png\n") {
		t.Error("IMAGEDEF does not reference plot-1.png")
	}

	f, err := os.Open(filepath.Join(dir, "plot-1.png"))
	if err != nil {
		t.Fatalf("image asset missing: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if r, _, _, _ := img.At(1, 1).RGBA(); r != 0xffff {
		t.Errorf("asset pixel red = %#x", r)
	}

	if got := listDir(t, dir); len(got) != 2 {
		t.Errorf("directory holds %v, want the drawing and one asset", got)
	}
}

func TestSaveAsFailureLeavesNothing(t *testing.T) {
	px := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	tests := []struct {
		name string
		doc  func() *Document
		enc  Encoder
		is   error
	}{
		{
			name: "non-finite coordinate",
			doc: func() *Document {
				d := New()
				d.Add(&Image{Def: &ImageDef{Pixels: px}, U: Vec2{1, 0}, V: Vec2{0, 1}})
				d.Add(&LWPolyline{Points: []Vec2{{0, 0}, {math.Inf(1), 1}}})
				return d
			},
			is: ErrInvalidValue,
		},
		{
			name: "encoder fails",
			doc:  func() *Document { return New() },
			enc: func(io.Writer) (io.WriteCloser, error) {
				return nil, io.ErrShortWrite
			},
			is: io.ErrShortWrite,
		},
		{
			name: "encoder close fails",
			doc:  func() *Document { return New() },
			enc: func(w io.Writer) (io.WriteCloser, error) {
				return failingCloser{w}, nil
			},
			is: io.ErrClosedPipe,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			err := tt.doc().SaveAsEncoded(filepath.Join(dir, "out.dxf"), tt.enc)
			var we *WriteError
			if !errors.As(err, &we) {
				t.Fatalf("error = %v, want *WriteError", err)
			}
			if !errors.Is(err, tt.is) {
				t.Errorf("error = %v, want it to wrap %v", err, tt.is)
			}
			if got := listDir(t, dir); len(got) != 0 {
				t.Errorf("directory not clean after failure: %v", got)
			}
		})
	}
}

func TestSaveAsMissingDirectory(t *testing.T) {
	err := New().SaveAs(filepath.Join(t.TempDir(), "nope", "out.dxf"))
	var we *WriteError
	if !errors.As(err, &we) {
		t.Fatalf("error = %v, want *WriteError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}

func TestAssetBase(t *testing.T) {
	tests := map[string]string{
		"plot.dxf":          "plot",
		"/tmp/a/plot.DXF":   "plot",
		"plot.dxf.gz":       "plot",
		"figure.v2.dxf.zst": "figure.v2",
		"drawing.cad":       "drawing",
	}
	for in, want := range tests {
		if got := AssetBase(in); got != want {
			t.Errorf("AssetBase(%q) = %q, want %q", in, got, want)
		}
	}
}

type failingCloser struct{ io.Writer }

func (failingCloser) Close() error { return io.ErrClosedPipe }
