// waypoint/validate_test.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package waypoint

import (
	"strings"
	"testing"

	"github.com/avc-rover/waypoint/util"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		wps      []Waypoint
		maxLegM  float32
		expected []string
	}{
		{
			name: "clean",
			wps:  []Waypoint{{37.4, -122.1}, {37.5, -122.2}},
		},
		{
			name:     "empty",
			expected: []string{"course: No waypoints"},
		},
		{
			name:     "repeat",
			wps:      []Waypoint{{37.4, -122.1}, {37.4, -122.1}},
			expected: []string{"course / waypoint 1: "},
		},
		{
			name:     "out of range",
			wps:      []Waypoint{{95, -122.1}},
			expected: []string{"course / waypoint 0: "},
		},
		{
			name: "long leg",
			// About 1.1km apart.
			wps:      []Waypoint{{1, 1}, {1.01, 1}},
			maxLegM:  500,
			expected: []string{"course / waypoint 1: "},
		},
		{
			name:    "long leg unlimited",
			wps:     []Waypoint{{1, 1}, {1.01, 1}},
			maxLegM: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e util.ErrorLogger
			e.Push("course")
			Validate(tt.wps, tt.maxLegM, &e)
			e.Pop()

			var got []string
			if e.HaveErrors() {
				got = strings.Split(e.String(), "\n")
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("got errors %q, expected %d", got, len(tt.expected))
			}
			for i := range got {
				if !strings.HasPrefix(got[i], tt.expected[i]) {
					t.Errorf("got %q, expected prefix %q", got[i], tt.expected[i])
				}
			}
			if e.CurrentDepth() != 0 {
				t.Errorf("unbalanced Push/Pop")
			}
		})
	}
}
