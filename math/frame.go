// math/frame.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

// LocalFrame is a flat-earth planar frame centered at Origin: x is meters
// east and y is meters north. It is accurate to well under a meter over the
// few hundred meters a rover course spans.
type LocalFrame struct {
	Origin        Point2LL
	MPerLongitude float32
}

func MakeLocalFrame(origin Point2LL) LocalFrame {
	return LocalFrame{
		Origin:        origin,
		MPerLongitude: MetersPerLongitude(origin.Latitude()),
	}
}

// Project returns p's position in meters relative to the frame origin.
func (f LocalFrame) Project(p Point2LL) [2]float32 {
	// Subtract first so that we don't lose precision scaling large
	// absolute longitudes.
	return LL2M(Point2LL{p[0] - f.Origin[0], p[1] - f.Origin[1]}, f.MPerLongitude)
}

// Unproject maps a point in the frame back to latitude-longitude.
func (f LocalFrame) Unproject(p [2]float32) Point2LL {
	d := M2LL(p, f.MPerLongitude)
	return Point2LL{f.Origin[0] + d[0], f.Origin[1] + d[1]}
}

// Offset2LL returns the point that is the given number of meters east and
// north of p.
func Offset2LL(p Point2LL, eastM, northM float32) Point2LL {
	mPerLongitude := MetersPerLongitude(p.Latitude())
	return Point2LL{p[0] + eastM/mPerLongitude, p[1] + northM/MetersPerLatitude}
}
