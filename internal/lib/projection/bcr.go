package projection

import (
	"math"

	"github.com/dpup/navcore/internal/lib/units"
)

// Calibration points of the BCR altitude encoding: the encoded values of
// 146 m and 6 m elevation.
const (
	bcrAltitude146m = 210945416903
	bcrAltitude6m   = 210945415755
)

var bcrFeetPerUnit = units.MetersToFeet(146-6) / (bcrAltitude146m - bcrAltitude6m)

// BcrAltitudeToElevation decodes a BCR altitude into meters, ceiled to 2
// fraction digits.
func BcrAltitudeToElevation(altitude int64) float64 {
	feet := float64(altitude-bcrAltitude6m) * bcrFeetPerUnit
	meters := units.FeetToMeters(feet) + 6
	return units.CeilFraction(meters, 2)
}

// ElevationToBcrAltitude encodes meters as a BCR altitude, floored.
func ElevationToBcrAltitude(elevation float64) int64 {
	feet := units.MetersToFeet(elevation - 6)
	altitude := feet*((bcrAltitude146m-bcrAltitude6m)/units.MetersToFeet(146-6)) + bcrAltitude6m
	return int64(math.Floor(altitude))
}
