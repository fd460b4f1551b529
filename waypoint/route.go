// waypoint/route.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package waypoint

import (
	"slices"

	"github.com/avc-rover/waypoint/math"

	"github.com/brunoga/deep"
)

// Route is an in-memory list of waypoints and a cursor that implements
// Generator. The cursor starts at 0, only ever moves forward, and
// len(waypoints) means every waypoint has been consumed. The other
// generators in this package are built on top of it.
//
// Route holds no locks; callers that share one between goroutines must
// serialize access themselves.
type Route struct {
	waypoints  []Waypoint
	cursor     int
	tolerance  float32
	projection Projection
}

var _ Generator = (*Route)(nil)

// NewRoute returns a Route over a copy of the provided waypoints. It
// returns ErrEmptyWaypointList if there are none.
func NewRoute(waypoints []Waypoint, opts ...Option) (*Route, error) {
	return newRoute(waypoints, makeOptions(opts))
}

func newRoute(waypoints []Waypoint, o options) (*Route, error) {
	if len(waypoints) == 0 {
		return nil, ErrEmptyWaypointList
	}

	wps := slices.Clone(waypoints)
	if o.simplify > 0 {
		n := len(wps)
		wps = simplifyWaypoints(wps, o.simplify)
		o.lg.Debug("simplified route", "before", n, "after", len(wps))
	}

	return &Route{
		waypoints:  wps,
		tolerance:  o.tolerance,
		projection: o.projection,
	}, nil
}

// newSourceRoute is newRoute for waypoints loaded from a file. Unless a
// Projection was given, it steers in a LocalFrame centered on the first
// waypoint.
func newSourceRoute(waypoints []Waypoint, o options) (*Route, error) {
	if o.projection == nil && len(waypoints) > 0 {
		o.projection = math.MakeLocalFrame(waypoints[0].Point2LL())
	}
	return newRoute(waypoints, o)
}

// current returns the waypoint under the cursor, or the final waypoint
// once the route is done.
func (r *Route) current() Waypoint {
	return r.waypoints[min(r.cursor, len(r.waypoints)-1)]
}

func (r *Route) CurrentWaypoint(xM, yM float32) [2]float32 {
	wp := r.current()
	if r.projection != nil {
		return r.projection.Project(wp.Point2LL())
	}
	return [2]float32{wp.Latitude, wp.Longitude}
}

func (r *Route) CurrentRawWaypoint(xM, yM float32) Waypoint {
	return r.current()
}

func (r *Route) Advance() {
	if r.cursor < len(r.waypoints) {
		r.cursor++
	}
}

// Reached is inclusive: a position exactly at the tolerance counts as
// having arrived.
func (r *Route) Reached(xM, yM float32) bool {
	return math.Distance2f([2]float32{xM, yM}, r.CurrentWaypoint(xM, yM)) <= r.tolerance
}

func (r *Route) Done() bool {
	return r.cursor == len(r.waypoints)
}

// Index returns the cursor position.
func (r *Route) Index() int {
	return r.cursor
}

func (r *Route) Len() int {
	return len(r.waypoints)
}

func (r *Route) Tolerance() float32 {
	return r.tolerance
}

// Waypoints returns a copy of all of the route's waypoints, including
// those already consumed.
func (r *Route) Waypoints() []Waypoint {
	return slices.Clone(r.waypoints)
}

// RouteState captures a Route's progress.
type RouteState struct {
	Waypoints []Waypoint `msgpack:"waypoints"`
	Cursor    int        `msgpack:"cursor"`
}

// State returns a deep copy of the route's waypoints and cursor.
func (r *Route) State() RouteState {
	return deep.MustCopy(RouteState{
		Waypoints: r.waypoints,
		Cursor:    r.cursor,
	})
}

// Clone returns an independent Route at the same position; advancing the
// clone doesn't affect r. It's useful for looking ahead along the route.
func (r *Route) Clone() *Route {
	s := r.State()
	return &Route{
		waypoints:  s.Waypoints,
		cursor:     s.Cursor,
		tolerance:  r.tolerance,
		projection: r.projection,
	}
}

// Length returns the distance in meters along the route from the current
// waypoint to the last one.
func (r *Route) Length() float32 {
	var d float32
	for i := r.cursor + 1; i < len(r.waypoints); i++ {
		d += math.DistanceM2LL(r.waypoints[i-1].Point2LL(), r.waypoints[i].Point2LL())
	}
	return d
}
