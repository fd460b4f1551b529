// waypoint/kml.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package waypoint

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/avc-rover/waypoint/log"
	"github.com/avc-rover/waypoint/math"
)

const (
	coordinatesOpen  = "<coordinates>"
	coordinatesClose = "</coordinates>"

	// Google Earth writes an entire track on a single line.
	maxLineLength = 16 * 1024 * 1024
)

// ParseDocument reads the KML document at path and returns the waypoints
// in its coordinate block; see ParseCoordinates.
func ParseDocument(path string, lg *log.Logger) ([]Waypoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrDocumentUnreadable, err)
	}
	defer f.Close()

	wps, err := ParseCoordinates(f, lg.With(slog.String("document", path)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return wps, nil
}

// ParseCoordinates extracts waypoints from the first <coordinates> block
// in a KML document. We should use a real XML parser here, but Google
// Earth saves the <coordinates> tag on one line, the coordinates on the
// next, and the closing tag on the line after that, so we rely on that
// layout: the first non-empty line after the open tag (or the remainder
// of the open tag's line, if it's not empty) is the payload, and nothing
// after it is examined.
//
// A document with no coordinate block returns no waypoints and no error;
// it's up to the caller to decide that's a problem.
func ParseCoordinates(r io.Reader, lg *log.Logger) ([]Waypoint, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	open := false
	for sc.Scan() {
		line := sc.Text()
		if !open {
			idx := strings.Index(line, coordinatesOpen)
			if idx == -1 {
				continue
			}
			open = true
			line = line[idx+len(coordinatesOpen):]
		}

		payload, _, closed := strings.Cut(line, coordinatesClose)
		if strings.TrimSpace(payload) == "" {
			if closed {
				// <coordinates></coordinates>
				return nil, nil
			}
			continue
		}

		return ParseCoordinateLine(payload, lg), nil
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentUnreadable, err)
	}
	return nil, nil
}

// ParseCoordinateLine parses a whitespace-separated list of
// longitude,latitude[,altitude] tuples. Note that the waypoints returned
// have latitude first. Tokens that can't be parsed are logged and skipped.
func ParseCoordinateLine(line string, lg *log.Logger) []Waypoint {
	var wps []Waypoint
	for i, tok := range strings.Fields(line) {
		wp, err := parseCoordinateToken(tok)
		if err != nil {
			lg.Warn("skipping coordinate", slog.Int("index", i), slog.Any("error", err))
			continue
		}
		wps = append(wps, wp)
	}
	return wps
}

func parseCoordinateToken(tok string) (Waypoint, error) {
	fields := strings.Split(tok, ",")
	if len(fields) < 2 || len(fields) > 3 {
		return Waypoint{}, fmt.Errorf("%q: %w: expected longitude,latitude[,altitude]", tok,
			ErrMalformedCoordinateToken)
	}

	parse := func(s, what string) (float32, error) {
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return 0, fmt.Errorf("%q: %w: unable to parse %s: %v", tok, ErrMalformedCoordinateToken, what, err)
		}
		return float32(v), nil
	}

	lon, err := parse(fields[0], "longitude")
	if err != nil {
		return Waypoint{}, err
	}
	lat, err := parse(fields[1], "latitude")
	if err != nil {
		return Waypoint{}, err
	}

	if p := (math.Point2LL{lon, lat}); !p.Valid() {
		return Waypoint{}, fmt.Errorf("%q: %w: coordinate out of range", tok, ErrMalformedCoordinateToken)
	}

	return Waypoint{Latitude: lat, Longitude: lon}, nil
}
