// waypoint/simplify.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package waypoint

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

func toLineString(wps []Waypoint) orb.LineString {
	ls := make(orb.LineString, len(wps))
	for i, wp := range wps {
		ls[i] = orb.Point{float64(wp.Longitude), float64(wp.Latitude)}
	}
	return ls
}

func fromPoints(pts []orb.Point) []Waypoint {
	wps := make([]Waypoint, len(pts))
	for i, pt := range pts {
		wps[i] = Waypoint{Latitude: float32(pt.Lat()), Longitude: float32(pt.Lon())}
	}
	return wps
}

// simplifyWaypoints removes waypoints that lie within epsilon degrees of
// the line through their neighbors. The first and last waypoints are
// always kept.
func simplifyWaypoints(wps []Waypoint, epsilon float64) []Waypoint {
	if len(wps) < 3 {
		return wps
	}

	simp := simplify.DouglasPeucker(epsilon).Simplify(toLineString(wps))
	ls, ok := simp.(orb.LineString)
	if !ok {
		panic("no orb.LineString back from simplify?!")
	}
	return fromPoints(ls)
}
