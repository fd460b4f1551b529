// waypoint/helpers_test.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package waypoint

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
)

// kmlDocument returns a document laid out the way Google Earth writes a
// path, with the given coordinate payload.
func kmlDocument(payload string) string {
	return strings.Join([]string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<kml xmlns="http://www.opengis.net/kml/2.2" xmlns:gx="http://www.google.com/kml/ext/2.2">`,
		`<Document>`,
		`	<name>course.kmz</name>`,
		`	<Placemark>`,
		`		<name>course</name>`,
		`		<LineString>`,
		`			<tessellate>1</tessellate>`,
		`			<coordinates>`,
		`				` + payload + ` `,
		`			</coordinates>`,
		`		</LineString>`,
		`	</Placemark>`,
		`</Document>`,
		`</kml>`,
	}, "\n")
}

// writeKMZ writes a zip archive holding the given files and returns its
// path.
func writeKMZ(t *testing.T, files map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "course.kmz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("%v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if _, err := io.WriteString(w, files[name]); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("%v", err)
	}
	return path
}

func testExtractor(t *testing.T) *DocumentExtractor {
	return &DocumentExtractor{
		ScratchDir: filepath.Join(t.TempDir(), "scratch"),
		Archiver:   ZipArchiver{},
	}
}

type countingArchiver struct {
	calls    int
	archiver Archiver
}

func (c *countingArchiver) Extract(ctx context.Context, src, dir string) error {
	c.calls++
	if c.archiver == nil {
		return nil
	}
	return c.archiver.Extract(ctx, src, dir)
}
