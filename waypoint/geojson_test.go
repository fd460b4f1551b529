// waypoint/geojson_test.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package waypoint

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestParseGeoJSON(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected []Waypoint
	}{
		{
			name: "line string",
			doc: `{"type":"FeatureCollection","features":[
				{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[0,0]}},
				{"type":"Feature","properties":{},"geometry":{"type":"LineString","coordinates":[[-122.1,37.4],[-122.2,37.5]]}}]}`,
			expected: []Waypoint{{37.4, -122.1}, {37.5, -122.2}},
		},
		{
			name: "multi point",
			doc: `{"type":"FeatureCollection","features":[
				{"type":"Feature","properties":{},"geometry":{"type":"MultiPoint","coordinates":[[1,2],[3,4]]}}]}`,
			expected: []Waypoint{{2, 1}, {4, 3}},
		},
		{
			name: "points",
			doc: `{"type":"FeatureCollection","features":[
				{"type":"Feature","properties":{"name":"a"},"geometry":{"type":"Point","coordinates":[1,2]}},
				{"type":"Feature","properties":{"name":"b"},"geometry":{"type":"Point","coordinates":[3,4]}}]}`,
			expected: []Waypoint{{2, 1}, {4, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wps, err := ParseGeoJSON([]byte(tt.doc))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(wps, tt.expected) {
				t.Errorf("got %v, expected %v", wps, tt.expected)
			}
		})
	}
}

func TestNewGeoJSONGenerator(t *testing.T) {
	dir := t.TempDir()
	write := func(name, doc string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			t.Fatalf("%v", err)
		}
		return path
	}

	path := write("course.geojson", `{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{},"geometry":{"type":"LineString","coordinates":[[-122.1,37.4],[-122.2,37.5]]}}]}`)
	r, err := NewGeoJSONGenerator(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Len() != 2 || r.CurrentRawWaypoint(0, 0) != (Waypoint{37.4, -122.1}) {
		t.Errorf("unexpected route %v", r.Waypoints())
	}
	if p := r.CurrentWaypoint(0, 0); p != ([2]float32{}) {
		t.Errorf("got first waypoint at %v, expected the frame origin", p)
	}

	if _, err := NewGeoJSONGenerator(filepath.Join(dir, "missing.geojson")); !errors.Is(err, ErrNotFound) {
		t.Errorf("got error %v, expected ErrNotFound", err)
	}
	if _, err := NewGeoJSONGenerator(write("bad.geojson", "{")); !errors.Is(err, ErrDocumentUnreadable) {
		t.Errorf("got error %v, expected ErrDocumentUnreadable", err)
	}
	if _, err := NewGeoJSONGenerator(write("empty.geojson", `{"type":"FeatureCollection","features":[]}`)); !errors.Is(err, ErrEmptyWaypointList) {
		t.Errorf("got error %v, expected ErrEmptyWaypointList", err)
	}
	outOfRange := write("range.geojson", `{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[200,0]}}]}`)
	if _, err := NewGeoJSONGenerator(outOfRange); !errors.Is(err, ErrDocumentUnreadable) {
		t.Errorf("got error %v, expected ErrDocumentUnreadable", err)
	}
}
