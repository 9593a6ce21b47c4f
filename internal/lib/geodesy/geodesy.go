// Package geodesy solves the inverse geodesic problem on the WGS-84 ellipsoid.
package geodesy

import "math"

// Solve computes azimuth, back azimuth and distance from (lon1, lat1) to
// (lon2, lat2), all in degrees. Identical points and inputs for which the
// iteration does not converge yield the zero Bearing.
func Solve(longitude1, latitude1, longitude2, latitude2 float64) Bearing {
	bearing, err := SolveChecked(longitude1, latitude1, longitude2, latitude2)
	if err != nil {
		return Bearing{}
	}
	return bearing
}

// SolveChecked behaves like Solve but reports ErrNotConverged instead of
// returning the zero Bearing for near-antipodal inputs.
func SolveChecked(longitude1, latitude1, longitude2, latitude2 float64) (Bearing, error) {
	if latitude1 == latitude2 && longitude1 == longitude2 {
		return Bearing{}, nil
	}

	r := 1.0 - Flattening
	lat1 := degToRad(latitude1)
	lat2 := degToRad(latitude2)

	tu1 := r * math.Sin(lat1) / math.Cos(lat1)
	tu2 := r * math.Sin(lat2) / math.Cos(lat2)
	cu1 := 1.0 / math.Sqrt(tu1*tu1+1.0)
	su1 := cu1 * tu1
	cu2 := 1.0 / math.Sqrt(tu2*tu2+1.0)
	s := cu1 * cu2
	baz := s * tu2
	faz := baz * tu1

	deltaLon := degToRad(longitude2) - degToRad(longitude1)
	x := deltaLon

	var sx, cx, sy, cy, y, c2a, cz, e, c float64
	for count := 1; ; count++ {
		sx = math.Sin(x)
		cx = math.Cos(x)
		tu1 = cu2 * sx
		tu2 = baz - su1*cu2*cx
		sy = math.Sqrt(tu1*tu1 + tu2*tu2)
		cy = s*cx + faz
		y = math.Atan2(sy, cy)
		sa := s * sx / sy
		c2a = -sa*sa + 1.0
		cz = faz + faz
		if c2a > 0.0 {
			cz = -cz/c2a + cy
		}
		e = cz*cz*2.0 - 1.0
		c = ((-3.0*c2a+4.0)*Flattening + 4.0) * c2a * Flattening / 16.0
		previous := x
		x = ((e*cy*c+cz)*sy*c + y) * sa
		x = (1.0-c)*x*Flattening + deltaLon

		if count > maxIterations {
			return Bearing{}, ErrNotConverged
		}
		if !(math.Abs(previous-x) > convergenceEpsilon) {
			break
		}
	}

	forward := math.Atan2(tu1, tu2)
	backward := math.Atan2(cu1*sx, baz*cx-su1*cu2) + math.Pi

	x = math.Sqrt((1.0/r/r-1.0)*c2a+1.0) + 1.0
	x = (x - 2.0) / x
	c = 1.0 - x
	c = (x*x/4.0 + 1.0) / c
	d := (0.375*x*x - 1.0) * x
	x = e * cy
	s = 1.0 - e - e
	s = ((((sy*sy*4.0-3.0)*s*cz*d/6.0-x)*d/4.0+cz)*sy*d + y) * c * EquatorialRadius * r

	return Bearing{
		Azimuth:     normalizeDegrees(radToDeg(forward)),
		BackAzimuth: normalizeDegrees(radToDeg(backward)),
		Distance:    math.Floor(s*1000.0) / 1000.0,
	}, nil
}

func degToRad(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

func radToDeg(radians float64) float64 {
	return radians * 180.0 / math.Pi
}

func normalizeDegrees(degrees float64) float64 {
	degrees = math.Mod(degrees, 360.0)
	if degrees < 0 {
		degrees += 360.0
	}
	return degrees
}
