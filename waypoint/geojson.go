// waypoint/geojson.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package waypoint

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ParseGeoJSON returns the waypoints of the first LineString or MultiPoint
// geometry in a GeoJSON FeatureCollection. If there is neither, the Point
// features are used, in order.
func ParseGeoJSON(b []byte) ([]Waypoint, error) {
	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		return nil, err
	}

	var points []orb.Point
	for _, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.LineString:
			return fromPoints(g), nil
		case orb.MultiPoint:
			return fromPoints(g), nil
		case orb.Point:
			points = append(points, g)
		}
	}
	return fromPoints(points), nil
}

// NewGeoJSONGenerator returns a Route for the GeoJSON file at path. Like
// NewFileGenerator, it steers in a LocalFrame centered on the first
// waypoint unless given a Projection.
func NewGeoJSONGenerator(path string, opts ...Option) (*Route, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrNotFound, err)
	} else if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrDocumentUnreadable, err)
	}

	wps, err := ParseGeoJSON(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrDocumentUnreadable, err)
	}

	for _, wp := range wps {
		if !wp.Point2LL().Valid() {
			return nil, fmt.Errorf("%s: %v: %w: coordinate out of range", path, wp, ErrDocumentUnreadable)
		}
	}

	r, err := newSourceRoute(wps, makeOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}
