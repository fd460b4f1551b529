// waypoint/compiled.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package waypoint

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// CompiledRouteExtension is the conventional suffix for compiled routes.
const CompiledRouteExtension = ".route.zst"

// CompiledRoute is a parsed route stored so that it can be loaded without
// unpacking and scanning the original KMZ file again. The on-disk format
// is msgpack, compressed with zstd.
type CompiledRoute struct {
	Source    string     `msgpack:"source"`
	Waypoints []Waypoint `msgpack:"waypoints"`
}

// LoadCompiledRoute reads a compiled route from an io.Reader.
func LoadCompiledRoute(r io.Reader) (CompiledRoute, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return CompiledRoute{}, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zr.Close()

	var cr CompiledRoute
	if err := msgpack.NewDecoder(zr).Decode(&cr); err != nil {
		return CompiledRoute{}, fmt.Errorf("failed to decode route: %w", err)
	}
	return cr, nil
}

// Save writes the route to an io.Writer in the standard format.
func (cr CompiledRoute) Save(w io.Writer) error {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	defer zw.Close()

	if err := msgpack.NewEncoder(zw).Encode(cr); err != nil {
		return fmt.Errorf("failed to encode route: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to close zstd writer: %w", err)
	}

	return nil
}

// NewCompiledGenerator returns a Route for the compiled route file at
// path. Like NewFileGenerator, it steers in a LocalFrame centered on the
// first waypoint unless given a Projection.
func NewCompiledGenerator(path string, opts ...Option) (*Route, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrNotFound, err)
	} else if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrDocumentUnreadable, err)
	}
	defer f.Close()

	cr, err := LoadCompiledRoute(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrDocumentUnreadable, err)
	}

	r, err := newSourceRoute(cr.Waypoints, makeOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}
