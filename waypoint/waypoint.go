// waypoint/waypoint.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package waypoint provides sources of waypoints for a vehicle control
// loop. Every source implements Generator; the controller asks for the
// current target each cycle and calls Advance once it has been reached.
package waypoint

import (
	"github.com/avc-rover/waypoint/math"
)

// Waypoint is a target geographic coordinate, in degrees.
type Waypoint struct {
	Latitude  float32 `json:"lat" msgpack:"lat"`
	Longitude float32 `json:"lon" msgpack:"lon"`
}

func WaypointFromLL(p math.Point2LL) Waypoint {
	return Waypoint{Latitude: p.Latitude(), Longitude: p.Longitude()}
}

func (w Waypoint) Point2LL() math.Point2LL {
	return math.Point2LL{w.Longitude, w.Latitude}
}

func (w Waypoint) String() string {
	return w.Point2LL().DDString()
}

// Generator is implemented by all waypoint sources. Positions passed in
// are the vehicle's current location in the steering frame. Only Advance
// changes the generator's state; the other methods may be called any
// number of times per control cycle.
type Generator interface {
	// CurrentWaypoint returns the target in the steering frame: projected
	// [x, y] meters if the source has a Projection, otherwise the raw
	// [latitude, longitude].
	CurrentWaypoint(xM, yM float32) [2]float32
	// CurrentRawWaypoint returns the stored coordinate of the target.
	CurrentRawWaypoint(xM, yM float32) Waypoint
	// Advance moves on to the next waypoint; it does nothing once all
	// waypoints have been consumed.
	Advance()
	// Reached reports whether (xM, yM) is within the arrival tolerance of
	// CurrentWaypoint.
	Reached(xM, yM float32) bool
	// Done reports whether all waypoints have been consumed.
	Done() bool
}

// Projection maps geographic coordinates into a planar steering frame.
// math.LocalFrame is the usual implementation.
type Projection interface {
	Project(p math.Point2LL) [2]float32
}
