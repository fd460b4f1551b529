// waypoint/kml_test.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package waypoint

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/avc-rover/waypoint/log"

	"github.com/davecgh/go-spew/spew"
)

func TestParseCoordinateLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []Waypoint
	}{
		{
			name:     "with altitude",
			line:     "-122.1,37.4,0 -122.2,37.5,10",
			expected: []Waypoint{{37.4, -122.1}, {37.5, -122.2}},
		},
		{
			name:     "without altitude",
			line:     "-105.2,40.05 -105.3,40.06",
			expected: []Waypoint{{40.05, -105.2}, {40.06, -105.3}},
		},
		{
			name:     "bad token skipped",
			line:     "bad,token -122.2,37.5",
			expected: []Waypoint{{37.5, -122.2}},
		},
		{
			name:     "extra whitespace",
			line:     "\t  -1,2,3 \t\t 4,-5  ",
			expected: []Waypoint{{2, -1}, {-5, 4}},
		},
		{
			name:     "malformed tokens in the middle",
			line:     "1,1 2 3,4,5,6 ,7 8, 9,abc NaN,1 1,95 -200,0 10,10",
			expected: []Waypoint{{1, 1}, {10, 10}},
		},
		{
			name:     "empty",
			line:     "   ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wps := ParseCoordinateLine(tt.line, nil)
			if !slices.Equal(wps, tt.expected) {
				t.Errorf("got %s, expected %s", spew.Sdump(wps), spew.Sdump(tt.expected))
			}
		})
	}
}

func TestParseCoordinateLineLogsSkips(t *testing.T) {
	var buf bytes.Buffer
	lg := log.NewWriter(&buf, "warn")

	wps := ParseCoordinateLine("bad,token -122.2,37.5", lg)
	if len(wps) != 1 {
		t.Errorf("got %d waypoints, expected 1", len(wps))
	}
	if !strings.Contains(buf.String(), "skipping coordinate") ||
		!strings.Contains(buf.String(), ErrMalformedCoordinateToken.Error()) {
		t.Errorf("expected a warning about the skipped token, got %q", buf.String())
	}
}

func TestParseCoordinateToken(t *testing.T) {
	for _, tok := range []string{"bad,token", "1", "1,2,3,4", ",1", "1,", "x,1,2"} {
		if _, err := parseCoordinateToken(tok); !errors.Is(err, ErrMalformedCoordinateToken) {
			t.Errorf("%q: got error %v, expected ErrMalformedCoordinateToken", tok, err)
		}
	}

	// Altitude is ignored, even if it isn't a number.
	wp, err := parseCoordinateToken("-122.1,37.4,clamped")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if wp != (Waypoint{Latitude: 37.4, Longitude: -122.1}) {
		t.Errorf("got %v, expected latitude 37.4 longitude -122.1", wp)
	}
}

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected []Waypoint
	}{
		{
			name:     "google earth layout",
			doc:      kmlDocument("-122.1,37.4,0 -122.2,37.5,10"),
			expected: []Waypoint{{37.4, -122.1}, {37.5, -122.2}},
		},
		{
			name:     "blank lines before payload",
			doc:      "<kml>\n<coordinates>\n\n   \n-122.1,37.4,0\n</coordinates>\n</kml>",
			expected: []Waypoint{{37.4, -122.1}},
		},
		{
			name:     "payload on the same line",
			doc:      "<LineString><coordinates>-122.1,37.4,0 -122.2,37.5,10</coordinates></LineString>",
			expected: []Waypoint{{37.4, -122.1}, {37.5, -122.2}},
		},
		{
			name:     "close tag on payload line",
			doc:      "<coordinates>\n-122.1,37.4 -122.2,37.5</coordinates>\n",
			expected: []Waypoint{{37.4, -122.1}, {37.5, -122.2}},
		},
		{
			name:     "only the first payload line",
			doc:      "<coordinates>\n1,1\n2,2\n</coordinates>\n<coordinates>\n3,3\n</coordinates>",
			expected: []Waypoint{{1, 1}},
		},
		{
			name:     "no coordinate block",
			doc:      "<kml>\n<Document>\n<name>empty</name>\n</Document>\n</kml>",
			expected: nil,
		},
		{
			name:     "empty coordinate block",
			doc:      "<coordinates></coordinates>\n<name>1,1</name>",
			expected: nil,
		},
		{
			name:     "empty document",
			doc:      "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wps, err := ParseCoordinates(strings.NewReader(tt.doc), nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(wps, tt.expected) {
				t.Errorf("got %s, expected %s", spew.Sdump(wps), spew.Sdump(tt.expected))
			}
		})
	}
}

func TestParseCoordinatesLongLine(t *testing.T) {
	// Long tracks are written on one line, well past bufio's default
	// token size.
	const n = 20000
	var sb strings.Builder
	expected := make([]Waypoint, n)
	for i := range n {
		lat, lon := float32(i%90), -float32(i%180)
		expected[i] = Waypoint{Latitude: lat, Longitude: lon}
		fmt.Fprintf(&sb, "%g,%g,0 ", lon, lat)
	}

	wps, err := ParseCoordinates(strings.NewReader(kmlDocument(sb.String())), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(wps, expected) {
		t.Errorf("got %d waypoints, expected %d", len(wps), n)
	}
}

func TestParseDocument(t *testing.T) {
	_, err := ParseDocument(filepath.Join(t.TempDir(), "missing.kml"), nil)
	if !errors.Is(err, ErrDocumentUnreadable) {
		t.Errorf("got error %v, expected ErrDocumentUnreadable", err)
	}

	// A directory can be opened but not read.
	_, err = ParseDocument(t.TempDir(), nil)
	if !errors.Is(err, ErrDocumentUnreadable) {
		t.Errorf("got error %v, expected ErrDocumentUnreadable", err)
	}
}
