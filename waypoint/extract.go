// waypoint/extract.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package waypoint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/avc-rover/waypoint/log"

	"github.com/klauspost/compress/zip"
)

const (
	// DefaultDocumentName is the name Google Earth gives the KML document
	// inside a KMZ archive.
	DefaultDocumentName = "doc.kml"

	DefaultExtractTimeout = 30 * time.Second

	unzipWaitDelay = time.Second
)

// DefaultScratchDir is where archives are unpacked if a DocumentExtractor
// doesn't specify otherwise. It is shared by everything in the process
// and isn't cleaned up.
var DefaultScratchDir = filepath.Join(os.TempDir(), "waypoints")

// Archiver unpacks the archive at src into dir. It is the boundary to
// whatever actually does decompression.
type Archiver interface {
	Extract(ctx context.Context, src, dir string) error
}

// UnzipCommand runs an external unzip binary.
type UnzipCommand struct {
	// Path to the binary; "unzip" is found via $PATH if empty.
	Path string
}

func (u UnzipCommand) Extract(ctx context.Context, src, dir string) error {
	bin := u.Path
	if bin == "" {
		bin = "unzip"
	}

	// -o so that a reused scratch directory doesn't lead to a prompt.
	cmd := exec.CommandContext(ctx, bin, "-o", "-qq", src, "-d", dir)
	// Children of unzip may hold its output open after it is killed.
	cmd.WaitDelay = unzipWaitDelay
	if out, err := cmd.CombinedOutput(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w", bin, ctxErr)
		}
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %w: %s", bin, err, msg)
		}
		return fmt.Errorf("%s: %w", bin, err)
	}
	return nil
}

// ZipArchiver unpacks zip archives in-process.
type ZipArchiver struct{}

func (ZipArchiver) Extract(ctx context.Context, src, dir string) error {
	zr, err := zip.OpenReader(src)
	if err != nil {
		return err
	}
	defer zr.Close()

	root := filepath.Clean(dir)
	for _, f := range zr.File {
		if err := ctx.Err(); err != nil {
			return err
		}

		target := filepath.Join(root, filepath.FromSlash(f.Name))
		if !strings.HasPrefix(target, root+string(os.PathSeparator)) {
			return fmt.Errorf("%s: archive entry escapes extraction directory", f.Name)
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := extractZipFile(ctx, f, target); err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
	}
	return nil
}

// contextReader fails reads once its context is done, so that copying a
// large entry stops at the deadline.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func extractZipFile(ctx context.Context, f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	r, err := f.Open()
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, contextReader{ctx: ctx, r: r}); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// DocumentExtractor unpacks a KMZ archive into a scratch directory and
// finds the KML document inside it. The zero value is ready to use: it
// runs unzip, extracts into DefaultScratchDir, and looks for doc.kml.
type DocumentExtractor struct {
	ScratchDir   string
	DocumentName string
	Timeout      time.Duration
	Archiver     Archiver
	Logger       *log.Logger
}

// Extract unpacks the archive at source and returns the path to the KML
// document it contained.
func (d *DocumentExtractor) Extract(ctx context.Context, source string) (string, error) {
	fi, err := os.Stat(source)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", source, ErrNotFound, err)
	}
	if !fi.Mode().IsRegular() {
		return "", fmt.Errorf("%s: %w: not a regular file", source, ErrNotFound)
	}

	dir := d.ScratchDir
	if dir == "" {
		dir = DefaultScratchDir
	}
	name := d.DocumentName
	if name == "" {
		name = DefaultDocumentName
	}
	timeout := d.Timeout
	if timeout == 0 {
		timeout = DefaultExtractTimeout
	}
	archiver := d.Archiver
	if archiver == nil {
		archiver = UnzipCommand{}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%s: %w: %w", dir, ErrExtractionFailed, err)
	}
	// The scratch directory is reused; don't let a document left over
	// from a previous archive masquerade as this one's.
	if err := removeDocuments(dir, name); err != nil {
		return "", fmt.Errorf("%s: %w: %w", dir, ErrExtractionFailed, err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	if err := archiver.Extract(ctx, source, dir); err != nil {
		return "", fmt.Errorf("%s: %w: %w", source, ErrExtractionFailed, err)
	}
	d.Logger.Debug("extracted archive", slog.String("source", source), slog.String("dir", dir),
		slog.Duration("elapsed", time.Since(start)))

	return locateDocument(dir, name)
}

// removeDocuments removes dir/name and every KML file under dir, so that
// afterward the only documents present are the ones an archiver writes.
func removeDocuments(dir, name string) error {
	if err := os.Remove(filepath.Join(dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && strings.EqualFold(filepath.Ext(path), ".kml") {
			return os.Remove(path)
		}
		return nil
	})
}

// locateDocument returns dir/name if it exists, or else the only KML file
// anywhere under dir.
func locateDocument(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
		return path, nil
	}

	var found []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && strings.EqualFold(filepath.Ext(path), ".kml") {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", dir, ErrDocumentNotFound, err)
	}

	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return "", fmt.Errorf("%s: %w: no %s or other KML file", dir, ErrDocumentNotFound, name)
	default:
		return "", fmt.Errorf("%s: %w: no %s and %d other KML files", dir, ErrDocumentNotFound, name, len(found))
	}
}
