package dxf

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// An Encoder wraps the DXF byte stream on its way to disk, for example with
// a compressor. Closing the returned writer must flush all data to w
// without closing w.
type Encoder func(w io.Writer) (io.WriteCloser, error)

// WriteTo serializes the document to w. Image definitions refer to
// image-1.png, image-2.png and so on; the pixels are not written.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := d.encode(cw, func(i int) string {
		return fmt.Sprintf("image-%d.png", i+1)
	})
	return cw.n, err
}

// SaveAs writes the drawing to path as plain ASCII DXF.
func (d *Document) SaveAs(path string) error {
	return d.SaveAsEncoded(path, nil)
}

// SaveAsEncoded writes the drawing to path through enc, which may be nil.
// Image assets are written next to path as <base>-N.png, where base is the
// file name up to its ".dxf" extension.
//
// Every file is first written to a temporary file in the destination
// directory and renamed into place once all of them are complete. On
// failure nothing new is left behind and the error is a *WriteError.
func (d *Document) SaveAsEncoded(path string, enc Encoder) (err error) {
	dir := filepath.Dir(path)
	base := AssetBase(path)

	type pending struct{ tmp, final string }
	var files []pending
	var published []string
	defer func() {
		if err == nil {
			return
		}
		for _, f := range files {
			_ = os.Remove(f.tmp)
		}
		for _, p := range published {
			_ = os.Remove(p)
		}
	}()

	names := make([]string, len(d.images))
	for i, def := range d.images {
		names[i] = fmt.Sprintf("%s-%d.png", base, i+1)
		final := filepath.Join(dir, names[i])
		tmp, werr := writeTemp(dir, names[i], func(w io.Writer) error {
			return png.Encode(w, def.Pixels)
		})
		if werr != nil {
			return &WriteError{Path: final, Op: "write image", Err: werr}
		}
		files = append(files, pending{tmp, final})
	}

	tmp, werr := writeTemp(dir, filepath.Base(path), func(w io.Writer) error {
		if enc == nil {
			return d.encode(w, func(i int) string { return names[i] })
		}
		ew, err := enc(w)
		if err != nil {
			return err
		}
		if err := d.encode(ew, func(i int) string { return names[i] }); err != nil {
			_ = ew.Close()
			return err
		}
		return ew.Close()
	})
	if werr != nil {
		return &WriteError{Path: path, Op: "write", Err: werr}
	}
	files = append(files, pending{tmp, path})

	for _, f := range files {
		if rerr := os.Rename(f.tmp, f.final); rerr != nil {
			return &WriteError{Path: f.final, Op: "rename", Err: rerr}
		}
		published = append(published, f.final)
	}
	Logger().Info("dxf: saved", "path", path, "entities", len(d.entities), "images", len(d.images))
	return nil
}

// AssetBase returns the file name of path without its ".dxf" extension and
// anything after it, so "plot.dxf.gz" yields "plot".
func AssetBase(path string) string {
	name := filepath.Base(path)
	if i := strings.Index(strings.ToLower(name), ".dxf"); i > 0 {
		return name[:i]
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// writeTemp creates a hidden temporary file in dir, fills it and syncs it
// to disk. The file is removed again if anything fails.
func writeTemp(dir, name string, fill func(io.Writer) error) (string, error) {
	f, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return "", err
	}
	tmp := f.Name()
	bw := bufio.NewWriter(f)
	err = fill(bw)
	if err == nil {
		err = bw.Flush()
	}
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	return tmp, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
