// waypoint/file.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package waypoint

import (
	"context"
	"fmt"
	"log/slog"
)

// FileGenerator is a Generator for the waypoints in a KMZ file, such as
// one exported from a path drawn in Google Earth.
type FileGenerator struct {
	*Route
	path string
}

var _ Generator = (*FileGenerator)(nil)

// NewFileGenerator unpacks the KMZ file at path, parses the coordinate
// block of its KML document, and returns a generator positioned at the
// first waypoint. Unless WithProjection is given, it steers in a
// LocalFrame centered on the first waypoint, so positions and the arrival
// tolerance are in meters. The returned error wraps one of ErrNotFound,
// ErrExtractionFailed, ErrDocumentNotFound, ErrDocumentUnreadable, or
// ErrEmptyWaypointList.
func NewFileGenerator(ctx context.Context, path string, opts ...Option) (*FileGenerator, error) {
	o := makeOptions(opts)

	wps, err := loadDocument(ctx, path, o)
	if err != nil {
		return nil, err
	}

	return newFileGenerator(path, wps, o)
}

// loadDocument returns the waypoints in the KMZ file at path as parsed,
// before any simplification.
func loadDocument(ctx context.Context, path string, o options) ([]Waypoint, error) {
	ex := o.extractor
	if ex == nil {
		ex = &DocumentExtractor{Logger: o.lg}
	}

	doc, err := ex.Extract(ctx, path)
	if err != nil {
		return nil, err
	}

	return ParseDocument(doc, o.lg)
}

func newFileGenerator(path string, wps []Waypoint, o options) (*FileGenerator, error) {
	r, err := newSourceRoute(wps, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	o.lg.Info("loaded waypoints", slog.String("path", path), slog.Int("count", r.Len()))

	return &FileGenerator{Route: r, path: path}, nil
}

// Path returns the KMZ file the waypoints were loaded from.
func (g *FileGenerator) Path() string {
	return g.path
}
