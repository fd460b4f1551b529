// waypoint/library.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package waypoint

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type libraryKey struct {
	path    string
	size    int64
	modTime time.Time
}

// Library opens FileGenerators, remembering the waypoints of recently
// loaded KMZ files so that restarting a course doesn't unpack and parse
// the archive again. Entries are keyed by path, size, and modification
// time, so an edited file is always reloaded. Each call to Open returns a
// new generator positioned at the first waypoint.
type Library struct {
	opts  []Option
	cache *expirable.LRU[libraryKey, []Waypoint]
}

// NewLibrary returns a Library holding up to size parsed files for at most
// ttl each; opts are applied to every generator it opens.
func NewLibrary(size int, ttl time.Duration, opts ...Option) *Library {
	return &Library{
		opts:  opts,
		cache: expirable.NewLRU[libraryKey, []Waypoint](size, nil, ttl),
	}
}

// Open returns a generator for the KMZ file at path. opts are applied
// after the Library's own.
func (l *Library) Open(ctx context.Context, path string, opts ...Option) (*FileGenerator, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrNotFound, err)
	}
	key := libraryKey{path: path, size: fi.Size(), modTime: fi.ModTime()}

	o := makeOptions(append(slices.Clone(l.opts), opts...))
	if wps, ok := l.cache.Get(key); ok {
		o.lg.Debug("library hit", slog.String("path", path))
		return newFileGenerator(path, wps, o)
	}

	wps, err := loadDocument(ctx, path, o)
	if err != nil {
		return nil, err
	}
	g, err := newFileGenerator(path, wps, o)
	if err != nil {
		return nil, err
	}
	// Cache what was parsed, not the route built from it with this call's
	// options.
	l.cache.Add(key, wps)
	return g, nil
}

// Len returns the number of files currently cached.
func (l *Library) Len() int {
	return l.cache.Len()
}
