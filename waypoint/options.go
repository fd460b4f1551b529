// waypoint/options.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package waypoint

import (
	"github.com/avc-rover/waypoint/log"
)

// DefaultTolerance is the arrival tolerance used when none is given. It
// is in the units of the steering frame: meters for the file-backed
// generators, which steer in a LocalFrame unless told otherwise. A Route
// made by NewRoute without a Projection works in degrees and will want
// something much smaller.
const DefaultTolerance = 1

type options struct {
	tolerance  float32
	projection Projection
	extractor  *DocumentExtractor
	lg         *log.Logger
	simplify   float64
}

type Option func(*options)

// WithTolerance sets the arrival tolerance used by Reached.
func WithTolerance(t float32) Option {
	return func(o *options) { o.tolerance = t }
}

// WithProjection makes CurrentWaypoint and Reached work in the planar
// frame given by p.
func WithProjection(p Projection) Option {
	return func(o *options) { o.projection = p }
}

// WithExtractor sets the DocumentExtractor used to unpack KMZ files.
func WithExtractor(e *DocumentExtractor) Option {
	return func(o *options) { o.extractor = e }
}

func WithLogger(lg *log.Logger) Option {
	return func(o *options) { o.lg = lg }
}

// WithSimplify thins the loaded route with the Douglas-Peucker algorithm;
// epsilon is in degrees.
func WithSimplify(epsilon float64) Option {
	return func(o *options) { o.simplify = epsilon }
}

func makeOptions(opts []Option) options {
	o := options{tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
