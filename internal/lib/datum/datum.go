// Package datum applies the GCJ-02 offset correction used by maps of
// mainland China.
package datum

import "math"

// Krassovsky ellipsoid used by the offset series
const (
	semiMajor     = 6378245.0
	eccentricity2 = 0.00669342162296594323
)

// Region covered by the offset
const (
	MinLongitude = 72.004
	MaxLongitude = 137.8347
	MinLatitude  = 0.8293
	MaxLatitude  = 55.8271
)

// InRegion reports whether the offset applies at the given WGS-84 coordinate.
func InRegion(longitude, latitude float64) bool {
	return longitude >= MinLongitude && longitude <= MaxLongitude &&
		latitude >= MinLatitude && latitude <= MaxLatitude
}

// Delta computes the offset in degrees at the given coordinate. It does not
// check the region; callers use InRegion first.
func Delta(longitude, latitude float64) (deltaLatitude, deltaLongitude float64) {
	deltaLatitude = transformLatitude(longitude-105.0, latitude-35.0)
	deltaLongitude = transformLongitude(longitude-105.0, latitude-35.0)

	radLatitude := latitude / 180.0 * math.Pi
	magic := math.Sin(radLatitude)
	magic = 1 - eccentricity2*magic*magic
	sqrtMagic := math.Sqrt(magic)

	deltaLatitude = (deltaLatitude * 180.0) / ((semiMajor * (1 - eccentricity2)) / (magic * sqrtMagic) * math.Pi)
	deltaLongitude = (deltaLongitude * 180.0) / (semiMajor / sqrtMagic * math.Cos(radLatitude) * math.Pi)
	return deltaLatitude, deltaLongitude
}

// Wgs84ToGcj02 shifts a WGS-84 coordinate into GCJ-02. Coordinates outside
// the region are returned unchanged.
func Wgs84ToGcj02(longitude, latitude float64) (float64, float64) {
	if !InRegion(longitude, latitude) {
		return longitude, latitude
	}
	deltaLatitude, deltaLongitude := Delta(longitude, latitude)
	return longitude + deltaLongitude, latitude + deltaLatitude
}

// Gcj02ToWgs84 approximates the inverse by subtracting the delta evaluated at
// the shifted coordinate. The error stays below 5 meters across the mainland
// and is under half a meter around Beijing.
func Gcj02ToWgs84(longitude, latitude float64) (float64, float64) {
	if !InRegion(longitude, latitude) {
		return longitude, latitude
	}
	deltaLatitude, deltaLongitude := Delta(longitude, latitude)
	return longitude - deltaLongitude, latitude - deltaLatitude
}

// Gcj02ToWgs84Iterative refines Gcj02ToWgs84 until shifting the result
// reproduces the input within threshold degrees or maxIterations is reached.
func Gcj02ToWgs84Iterative(longitude, latitude, threshold float64, maxIterations int) (float64, float64) {
	wgsLongitude, wgsLatitude := Gcj02ToWgs84(longitude, latitude)
	for i := 0; i < maxIterations; i++ {
		gcjLongitude, gcjLatitude := Wgs84ToGcj02(wgsLongitude, wgsLatitude)
		errLongitude := gcjLongitude - longitude
		errLatitude := gcjLatitude - latitude
		if math.Abs(errLongitude) < threshold && math.Abs(errLatitude) < threshold {
			break
		}
		wgsLongitude -= errLongitude
		wgsLatitude -= errLatitude
	}
	return wgsLongitude, wgsLatitude
}

func transformLatitude(x, y float64) float64 {
	result := -100.0 + 2.0*x + 3.0*y + 0.2*y*y + 0.1*x*y + 0.2*math.Sqrt(math.Abs(x))
	result += (20.0*math.Sin(6.0*x*math.Pi) + 20.0*math.Sin(2.0*x*math.Pi)) * 2.0 / 3.0
	result += (20.0*math.Sin(y*math.Pi) + 40.0*math.Sin(y/3.0*math.Pi)) * 2.0 / 3.0
	result += (160.0*math.Sin(y/12.0*math.Pi) + 320*math.Sin(y*math.Pi/30.0)) * 2.0 / 3.0
	return result
}

func transformLongitude(x, y float64) float64 {
	result := 300.0 + x + 2.0*y + 0.1*x*x + 0.1*x*y + 0.1*math.Sqrt(math.Abs(x))
	result += (20.0*math.Sin(6.0*x*math.Pi) + 20.0*math.Sin(2.0*x*math.Pi)) * 2.0 / 3.0
	result += (20.0*math.Sin(x*math.Pi) + 40.0*math.Sin(x/3.0*math.Pi)) * 2.0 / 3.0
	result += (150.0*math.Sin(x/12.0*math.Pi) + 300.0*math.Sin(x/30.0*math.Pi)) * 2.0 / 3.0
	return result
}
