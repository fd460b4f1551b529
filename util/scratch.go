// util/scratch.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"os"
	"sync"

	"github.com/avc-rover/waypoint/log"
)

// ScratchDirs hands out private extraction directories under a common
// base so that archives unpacked concurrently don't collide, and removes
// them all when the caller is done.
type ScratchDirs struct {
	mu    sync.Mutex
	base  string
	paths map[string]struct{}
	lg    *log.Logger
}

func MakeScratchDirs(base string, lg *log.Logger) *ScratchDirs {
	if base == "" {
		base = os.TempDir()
	}
	return &ScratchDirs{
		base:  base,
		paths: make(map[string]struct{}),
		lg:    lg,
	}
}

// New creates a fresh directory whose name starts with prefix.
func (s *ScratchDirs) New(prefix string) (string, error) {
	if err := os.MkdirAll(s.base, 0o755); err != nil {
		return "", err
	}
	dir, err := os.MkdirTemp(s.base, prefix+"-*")
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.paths[dir] = struct{}{}
	s.mu.Unlock()

	return dir, nil
}

func (s *ScratchDirs) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.paths)
}

func (s *ScratchDirs) RemoveAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for path := range s.paths {
		if err := os.RemoveAll(path); err != nil {
			s.lg.Warnf("%s: %v", path, err)
		}
	}
	clear(s.paths)
}
