package ggdxf

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/gogpu/gg-dxf/dxf"
)

// Registry maps file name suffixes to output encodings. It is safe for
// concurrent use.
//
// A new registry knows three formats:
//
//	.dxf      plain ASCII DXF
//	.dxf.gz   gzip compressed DXF
//	.dxf.zst  zstd compressed DXF
type Registry struct {
	mu      sync.RWMutex
	formats map[string]dxf.Encoder
}

// NewRegistry returns a registry with the built-in formats.
func NewRegistry() *Registry {
	r := &Registry{formats: make(map[string]dxf.Encoder)}
	r.Register(".dxf", nil)
	r.Register(".dxf.gz", gzipEncoder)
	r.Register(".dxf.zst", zstdEncoder)
	return r
}

// Register adds a format for paths ending in suffix, compared without
// regard to case. A nil encoder writes plain DXF.
//
// Register panics if the suffix is empty or already registered, so
// conflicting registrations surface at startup.
func (r *Registry) Register(suffix string, enc dxf.Encoder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(suffix)
	if key == "" {
		panic("ggdxf: Register suffix is empty")
	}
	if _, dup := r.formats[key]; dup {
		panic("ggdxf: Register called twice for " + key)
	}
	r.formats[key] = enc
}

// Formats returns the registered suffixes in sorted order.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the encoder for path. The longest matching suffix wins,
// so "a.dxf.gz" is gzip rather than plain.
func (r *Registry) Lookup(path string) (dxf.Encoder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lower := strings.ToLower(path)
	best := ""
	for suffix := range r.formats {
		if strings.HasSuffix(lower, suffix) && len(suffix) > len(best) {
			best = suffix
		}
	}
	if best == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
	return r.formats[best], nil
}

// Save finalizes a and writes the document to path in the format chosen
// by the path suffix. Image assets are written next to it.
//
// The format is checked before a is finalized, so an unknown suffix leaves
// the adapter usable.
func (r *Registry) Save(a *Adapter, path string) error {
	enc, err := r.Lookup(path)
	if err != nil {
		return err
	}
	doc, err := a.Finalize()
	if err != nil {
		return err
	}
	return doc.SaveAsEncoded(path, enc)
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the shared registry used by Save.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Save finalizes a and writes it to path using DefaultRegistry.
func Save(a *Adapter, path string) error {
	return DefaultRegistry().Save(a, path)
}

func gzipEncoder(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriterLevel(w, gzip.BestCompression)
}

func zstdEncoder(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
}
