// math/heading_test.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"testing"
)

func TestHeadingDifference(t *testing.T) {
	type hd struct {
		a, b, d float32
	}

	for _, h := range []hd{hd{10, 90, 80}, hd{350, 12, 22}, hd{340, 120, 140}, hd{-90, 80, 170},
		hd{40, 181, 141}, hd{-170, 160, 30}, hd{-120, -150, 30}} {
		if HeadingDifference(h.a, h.b) != h.d {
			t.Errorf("headingDifference(%f, %f) -> %f, expected %f", h.a, h.b,
				HeadingDifference(h.a, h.b), h.d)
		}
		if HeadingDifference(h.b, h.a) != h.d {
			t.Errorf("headingDifference(%f, %f) -> %f, expected %f", h.b, h.a,
				HeadingDifference(h.b, h.a), h.d)
		}
	}
}

func TestNormalizeHeading(t *testing.T) {
	h := [][2]float32{{90, 90}, {360, 0}, {-10, 350}, {380, 20}, {-380, 340}}
	for _, pair := range h {
		if NormalizeHeading(pair[0]) != pair[1] {
			t.Errorf("normalize heading error: %f -> %f, expected %f",
				pair[0], NormalizeHeading(pair[0]), pair[1])
		}
	}
}

func TestHeadingSignedTurn(t *testing.T) {
	turns := [][3]float32{{10, 90, 80}, {10, 350, -20}, {120, 10, -110}, {120, 270, 150}}
	for _, turn := range turns {
		if result := HeadingSignedTurn(turn[0], turn[1]); result != turn[2] {
			t.Errorf("HeadingSignedTurn(%f, %f) = %f; expected %f", turn[0], turn[1], result, turn[2])
		}
	}
}

func TestHeading2f(t *testing.T) {
	tests := []struct {
		name     string
		to       [2]float32
		expected float32
	}{
		{"north", [2]float32{0, 10}, 0},
		{"east", [2]float32{10, 0}, 90},
		{"south", [2]float32{0, -10}, 180},
		{"west", [2]float32{-10, 0}, 270},
		{"northeast", [2]float32{5, 5}, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Heading2f([2]float32{0, 0}, tt.to)
			if Abs(h-tt.expected) > 0.001 {
				t.Errorf("Heading2f to %v = %f; expected %f", tt.to, h, tt.expected)
			}

			v := HeadingVector(tt.expected)
			if d := Distance2f(Scale2f(v, Length2f(tt.to)), tt.to); d > 0.001 {
				t.Errorf("HeadingVector(%f) = %v; off by %f", tt.expected, v, d)
			}
		})
	}
}
