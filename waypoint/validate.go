// waypoint/validate.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package waypoint

import (
	"fmt"

	"github.com/avc-rover/waypoint/math"
	"github.com/avc-rover/waypoint/util"
)

// Validate checks a route for things that are legal in a KML document but
// are probably mistakes when driving it: coordinates out of range,
// repeated waypoints, and legs longer than maxLegM meters. maxLegM is
// ignored if it is not positive. Problems are reported to e, which the
// caller should have Push()ed with the route's name.
func Validate(wps []Waypoint, maxLegM float32, e *util.ErrorLogger) {
	if len(wps) == 0 {
		e.Error(ErrEmptyWaypointList)
		return
	}

	for i, wp := range wps {
		e.Push(fmt.Sprintf("waypoint %d", i))

		if !wp.Point2LL().Valid() {
			e.ErrorString("%s: coordinate out of range", wp)
		} else if i > 0 {
			prev := wps[i-1]
			if wp == prev {
				e.ErrorString("%s: repeats the previous waypoint", wp)
			} else if d := math.DistanceM2LL(prev.Point2LL(), wp.Point2LL()); maxLegM > 0 && d > maxLegM {
				e.ErrorString("%s: %.0fm from previous waypoint exceeds %.0fm limit", wp, d, maxLegM)
			}
		}

		e.Pop()
	}
}
