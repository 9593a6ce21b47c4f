// Package geo implements the position capability contract, bounding boxes and
// the encoded polyline codec on top of the WGS-84 geodesic solver.
package geo

import (
	"math"

	"github.com/dpup/navcore/internal/lib/geodesy"
)

// MeanEarthRadius is used by the spherical cross-track formula, in meters.
const MeanEarthRadius = 6371000.0

// Distance returns the ellipsoidal distance in meters between a and b.
// It is unknown when either position lacks coordinates.
func Distance(a, b Position) (float64, bool) {
	if !b.HasCoordinates() {
		return 0, false
	}
	return DistanceToCoords(a, *b.Longitude(), *b.Latitude())
}

// DistanceToCoords returns the distance from p to the given coordinate
func DistanceToCoords(p Position, longitude, latitude float64) (float64, bool) {
	if !p.HasCoordinates() {
		return 0, false
	}
	bearing := geodesy.Solve(*p.Longitude(), *p.Latitude(), longitude, latitude)
	if math.IsNaN(bearing.Distance) {
		return 0, false
	}
	return bearing.Distance, true
}

// Angle returns the forward azimuth in degrees from a to b
func Angle(a, b Position) (float64, bool) {
	if !a.HasCoordinates() || !b.HasCoordinates() {
		return 0, false
	}
	bearing := geodesy.Solve(*a.Longitude(), *a.Latitude(), *b.Longitude(), *b.Latitude())
	if math.IsNaN(bearing.Azimuth) {
		return 0, false
	}
	return bearing.Azimuth, true
}

// OrthogonalDistance returns the cross-track distance in meters from p to the
// great circle through a and b. The sign tells the side of the line.
func OrthogonalDistance(p, a, b Position) (float64, bool) {
	if !p.HasCoordinates() || !a.HasCoordinates() || !b.HasCoordinates() {
		return 0, false
	}
	bearingAD := geodesy.Solve(*a.Longitude(), *a.Latitude(), *p.Longitude(), *p.Latitude())
	courseAD := bearingAD.Azimuth * math.Pi / 180
	angleAB, _ := Angle(a, b)
	courseAB := angleAB * math.Pi / 180
	distance := math.Asin(math.Sin(bearingAD.Distance/MeanEarthRadius)*math.Sin(courseAD-courseAB)) * MeanEarthRadius
	if math.IsNaN(distance) {
		return 0, false
	}
	return distance, true
}

// ElevationDelta returns the elevation of b minus the elevation of a
func ElevationDelta(a, b Position) (float64, bool) {
	if a.Elevation() == nil || b.Elevation() == nil {
		return 0, false
	}
	return *b.Elevation() - *a.Elevation(), true
}

// TimeDelta returns the milliseconds from a to b
func TimeDelta(a, b Position) (int64, bool) {
	if !a.HasTime() || !b.HasTime() {
		return 0, false
	}
	return b.Time().UnixMilli() - a.Time().UnixMilli(), true
}

// Speed returns the average speed in km/h between a and b. It is unknown
// without both times, for a zero interval and for an unknown or zero distance.
func Speed(a, b Position) (float64, bool) {
	interval, ok := TimeDelta(a, b)
	if !ok || interval == 0 {
		return 0, false
	}
	distance, ok := Distance(a, b)
	if !ok || distance == 0 {
		return 0, false
	}
	seconds := math.Abs(float64(interval)) / 1000
	return distance / seconds * 3.6, true
}
