// waypoint/course.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package waypoint

import (
	"fmt"

	"github.com/avc-rover/waypoint/math"
)

// PolygonCourse returns the n vertices of a regular polygon with sides of
// the given length, for testing a vehicle without a prepared course. The
// first vertex is due east of origin and the course runs
// counter-clockwise, ending back at origin.
func PolygonCourse(origin Waypoint, sideM float32, n int) ([]Waypoint, error) {
	if n < 3 {
		return nil, fmt.Errorf("%d: a polygon course needs at least 3 sides", n)
	}
	if sideM <= 0 {
		return nil, fmt.Errorf("%f: side length must be positive", sideM)
	}

	frame := math.MakeLocalFrame(origin.Point2LL())
	stepRadians := math.Radians(360 / float32(n))

	var p [2]float32
	step := [2]float32{sideM, 0}
	wps := make([]Waypoint, n)
	for i := range n {
		p = math.Add2f(p, step)
		wps[i] = WaypointFromLL(frame.Unproject(p))
		step = math.Rotate2f(step, stepRadians)
	}
	return wps, nil
}

// NewPolygonGenerator returns a Route around a PolygonCourse; the route
// steers in a LocalFrame centered at origin unless another projection is
// given.
func NewPolygonGenerator(origin Waypoint, sideM float32, n int, opts ...Option) (*Route, error) {
	wps, err := PolygonCourse(origin, sideM, n)
	if err != nil {
		return nil, err
	}

	opts = append([]Option{WithProjection(math.MakeLocalFrame(origin.Point2LL()))}, opts...)
	return NewRoute(wps, opts...)
}
