// math/latlong.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"
	gomath "math"
)

// EarthRadiusM is the mean radius of the Earth in meters.
const EarthRadiusM = 6371000

// MetersPerLatitude is the length of one degree of latitude along a
// meridian on a spherical Earth.
const MetersPerLatitude = 2 * gomath.Pi * EarthRadiusM / 360

///////////////////////////////////////////////////////////////////////////
// Point2LL

// Point2LL represents a 2D point on the Earth in latitude-longitude.
// Important: 0 (x) is longitude, 1 (y) is latitude
type Point2LL [2]float32

func (p Point2LL) Longitude() float32 {
	return p[0]
}

func (p Point2LL) Latitude() float32 {
	return p[1]
}

// DDString returns the position in decimal degrees, e.g.:
// (39.860901, -75.274864)
func (p Point2LL) DDString() string {
	return fmt.Sprintf("(%f, %f)", p[1], p[0]) // latitude, longitude
}

func (p Point2LL) IsZero() bool {
	return p[0] == 0 && p[1] == 0
}

// Valid returns true if the latitude is in [-90,90] and the longitude in
// [-180,180].
func (p Point2LL) Valid() bool {
	return IsFinite(p[0]) && IsFinite(p[1]) &&
		p[1] >= -90 && p[1] <= 90 && p[0] >= -180 && p[0] <= 180
}

// MetersPerLongitude returns the length of one degree of longitude at the
// given latitude.
func MetersPerLongitude(latitude float32) float32 {
	return MetersPerLatitude * Cos(Radians(latitude))
}

// DistanceM2LL returns the great-circle distance in meters between two
// provided lat-long coordinates.
func DistanceM2LL(a Point2LL, b Point2LL) float32 {
	// https://www.movable-type.co.uk/scripts/latlong.html
	rad := func(d float32) float64 { return float64(d) / 180 * gomath.Pi }
	lat1, lon1 := rad(a[1]), rad(a[0])
	lat2, lon2 := rad(b[1]), rad(b[0])
	dlat, dlon := lat2-lat1, lon2-lon1

	x := Sqr(gomath.Sin(dlat/2)) + gomath.Cos(lat1)*gomath.Cos(lat2)*Sqr(gomath.Sin(dlon/2))
	c := 2 * gomath.Atan2(gomath.Sqrt(x), gomath.Sqrt(1-x))
	return float32(EarthRadiusM * c)
}

// LL2M converts a point expressed in latitude-longitude coordinates to
// meters; this is useful for example for reasoning about distances, since
// both axes then have the same measure.
func LL2M(p Point2LL, mPerLongitude float32) [2]float32 {
	return [2]float32{p[0] * mPerLongitude, p[1] * MetersPerLatitude}
}

// M2LL converts a point expressed in meters to lat-long.
func M2LL(p [2]float32, mPerLongitude float32) Point2LL {
	return Point2LL{p[0] / mPerLongitude, p[1] / MetersPerLatitude}
}
