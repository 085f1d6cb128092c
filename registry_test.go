package ggdxf

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

func TestRegistryFormats(t *testing.T) {
	got := NewRegistry().Formats()
	if diff := cmp.Diff([]string{".dxf", ".dxf.gz", ".dxf.zst"}, got); diff != "" {
		t.Errorf("formats mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryRegisterPanics(t *testing.T) {
	for _, suffix := range []string{"", ".DXF"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%q) did not panic", suffix)
				}
			}()
			NewRegistry().Register(suffix, nil)
		}()
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	for _, path := range []string{"a.dxf", "A.DXF", "dir/a.dxf.gz", "a.Dxf.Zst"} {
		if _, err := r.Lookup(path); err != nil {
			t.Errorf("Lookup(%q): %v", path, err)
		}
	}
	if enc, _ := r.Lookup("plot.dxf"); enc != nil {
		t.Error("plain dxf has an encoder")
	}
	if enc, _ := r.Lookup("plot.dxf.gz"); enc == nil {
		t.Error("gzip dxf has no encoder")
	}
	if _, err := r.Lookup("plot.svg"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Lookup(svg) = %v, want ErrUnknownFormat", err)
	}
}

func drawSample(a *Adapter) {
	a.MoveTo(10, 10)
	a.LineTo(90, 90)
	a.StrokePath(DefaultState())
	a.DrawImage(0, 0, 10, 10, checker(), DefaultState())
}

func TestRegistrySave(t *testing.T) {
	decoders := map[string]func(io.Reader) (io.Reader, error){
		"plot.dxf": func(r io.Reader) (io.Reader, error) { return r, nil },
		"plot.dxf.gz": func(r io.Reader) (io.Reader, error) {
			return gzip.NewReader(r)
		},
		"plot.dxf.zst": func(r io.Reader) (io.Reader, error) {
			return zstd.NewReader(r)
		},
	}
	for name, decode := range decoders {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, name)
			a := NewAdapter(100, 100)
			drawSample(a)
			if err := NewRegistry().Save(a, path); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if !a.Finalized() {
				t.Error("adapter not finalized after Save")
			}
			raw, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			r, err := decode(bytes.NewReader(raw))
			if err != nil {
				t.Fatal(err)
			}
			data, err := io.ReadAll(r)
			if err != nil {
				t.Fatal(err)
			}
			s := string(data)
			for _, want := range []string{"AC1015", "LWPOLYLINE", "IMAGE", "plot-1.png", "EOF"} {
				if !strings.Contains(s, want) {
					t.Errorf("output lacks %q", want)
				}
			}
			if _, err := os.Stat(filepath.Join(dir, "plot-1.png")); err != nil {
				t.Errorf("image asset: %v", err)
			}
		})
	}
}

func TestSaveUnknownFormatKeepsAdapter(t *testing.T) {
	a := NewAdapter(10, 10)
	err := Save(a, filepath.Join(t.TempDir(), "plot.pdf"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Save = %v, want ErrUnknownFormat", err)
	}
	if a.Finalized() {
		t.Error("adapter finalized by a failed lookup")
	}
	if err := a.MoveTo(0, 0); err != nil {
		t.Errorf("MoveTo after failed Save: %v", err)
	}
}

func TestSaveTwice(t *testing.T) {
	dir := t.TempDir()
	a := NewAdapter(10, 10)
	if err := Save(a, filepath.Join(dir, "a.dxf")); err != nil {
		t.Fatal(err)
	}
	if err := Save(a, filepath.Join(dir, "b.dxf")); !errors.Is(err, ErrIllegalState) {
		t.Errorf("second Save = %v, want ErrIllegalState", err)
	}
}
