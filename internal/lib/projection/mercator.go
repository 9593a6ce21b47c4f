// Package projection converts between WGS-84 coordinates and the projected
// or encoded coordinate systems used by route formats.
package projection

import (
	"math"

	"github.com/dpup/navcore/internal/lib/units"
)

// EarthRadius is the spherical radius used by the Mercator transforms, in meters.
const EarthRadius = 6371000.0

// LongitudeToMercatorX projects a longitude. Positive inputs are ceiled,
// everything else is floored.
func LongitudeToMercatorX(longitude float64) int64 {
	x := longitude * EarthRadius * math.Pi / 180.0
	return roundAwayFromOrigin(longitude, x)
}

// LatitudeToMercatorY projects a latitude with the same rounding as
// LongitudeToMercatorX.
func LatitudeToMercatorY(latitude float64) int64 {
	y := math.Log(math.Tan(latitude*math.Pi/360.0+math.Pi/4.0)) * EarthRadius
	return roundAwayFromOrigin(latitude, y)
}

// MercatorXToLongitude floors the result to 5 fraction digits.
func MercatorXToLongitude(x int64) float64 {
	longitude := float64(x) * 180.0 / (EarthRadius * math.Pi)
	return units.FloorFraction(longitude, 5)
}

// MercatorYToLatitude floors the result to 5 fraction digits.
func MercatorYToLatitude(y int64) float64 {
	latitude := 2.0 * (math.Atan(math.Exp(float64(y)/EarthRadius)) - math.Pi/4.0) / math.Pi * 180.0
	return units.FloorFraction(latitude, 5)
}

func roundAwayFromOrigin(source, projected float64) int64 {
	if source > 0 {
		return int64(math.Ceil(projected))
	}
	return int64(math.Floor(projected))
}
