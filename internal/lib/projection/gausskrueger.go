package projection

import "math"

// Bessel 1841 ellipsoid
const (
	besselSemiMajor = 6377397.155
	besselSemiMinor = 6356078.962
)

// WGS-84 ellipsoid
const (
	wgs84SemiMajor = 6378137.0
	wgs84SemiMinor = 6356752.314
)

// nominalHeight is used in place of a real elevation in both directions.
const nominalHeight = 4.21

var (
	besselEccentricity2 = (besselSemiMajor*besselSemiMajor - besselSemiMinor*besselSemiMinor) / (besselSemiMajor * besselSemiMajor)
	wgs84Eccentricity2  = (wgs84SemiMajor*wgs84SemiMajor - wgs84SemiMinor*wgs84SemiMinor) / (wgs84SemiMajor * wgs84SemiMajor)
	besselN             = (besselSemiMajor - besselSemiMinor) / (besselSemiMajor + besselSemiMinor)
)

// meridianSeries holds the coefficients of the meridian arc series.
type meridianSeries struct {
	alpha, beta, gamma, delta, epsilon float64
}

func (s meridianSeries) at(latitude float64) float64 {
	return latitude +
		s.beta*math.Sin(2*latitude) +
		s.gamma*math.Sin(4*latitude) +
		s.delta*math.Sin(6*latitude) +
		s.epsilon*math.Sin(8*latitude)
}

var (
	footpointSeries = meridianSeries{
		alpha:   (besselSemiMajor + besselSemiMinor) / 2 * (1 + math.Pow(besselN, 2)/4 + math.Pow(besselN, 4)/64),
		beta:    besselN*3/2 - math.Pow(besselN, 3)*27/32 + math.Pow(besselN, 5)*269/512,
		gamma:   math.Pow(besselN, 2)*21/16 - math.Pow(besselN, 4)*55/32,
		delta:   math.Pow(besselN, 3)*151/96 - math.Pow(besselN, 5)*417/128,
		epsilon: math.Pow(besselN, 4) * 1097 / 512,
	}
	arcLengthSeries = meridianSeries{
		alpha:   footpointSeries.alpha,
		beta:    -3*besselN/2 + 9*math.Pow(besselN, 3)/16 - 3*math.Pow(besselN, 5)/32,
		gamma:   15*math.Pow(besselN, 2)/16 - 15*math.Pow(besselN, 4)/32,
		delta:   -35*math.Pow(besselN, 3)/48 + 105*math.Pow(besselN, 5)/256,
		epsilon: 315 * math.Pow(besselN, 4) / 512,
	}
)

// GaussKruegerToWgs84 converts a Gauss-Krueger right/height pair into WGS-84
// longitude and latitude. The millions digit of right selects the 3 degree
// strip.
func GaussKruegerToWgs84(right, height float64) (longitude, latitude float64) {
	strip := int(right / 1000000)
	meridian := float64(strip * 3)
	y := float64(int(right - float64(strip)*1000000 - 500000))

	b0 := height / footpointSeries.alpha
	bf := footpointSeries.at(b0)
	nf := besselSemiMajor / math.Sqrt(1-besselEccentricity2*math.Pow(math.Sin(bf), 2))
	pif := math.Sqrt(math.Pow(besselSemiMajor, 2) / math.Pow(besselSemiMinor, 2) * besselEccentricity2 * math.Pow(math.Cos(bf), 2))
	tf := math.Tan(bf)

	tf1 := tf / 2 / math.Pow(nf, 2) * (-1 - math.Pow(pif, 2)) * math.Pow(y, 2)
	tf2 := tf / 24 / math.Pow(nf, 4) * (5 + 3*math.Pow(tf, 2) + 6*math.Pow(pif, 2) -
		6*math.Pow(tf, 2)*math.Pow(pif, 2) - 4*math.Pow(pif, 4) -
		9*math.Pow(tf, 2)*math.Pow(pif, 4)) * math.Pow(y, 4)
	besselLatitude := radToDeg(bf + tf1 + tf2)

	l1 := 1 / nf / math.Cos(bf) * y
	l2 := (1 / math.Pow(nf, 3) / 6 / math.Cos(bf)) * (-1 - 2*math.Pow(tf, 2) - math.Pow(pif, 2)) * math.Pow(y, 3)
	besselLongitude := meridian + radToDeg(l1+l2)

	x1, y1, z1 := toCartesian(besselLongitude, besselLatitude, besselSemiMajor, besselSemiMinor,
		besselSemiMajor/math.Sqrt(1-besselEccentricity2*math.Pow(math.Sin(degToRad(besselLatitude)), 2)))
	x, yy, z := besselToWgs84.apply(x1, y1, z1)

	lon, lat := toGeographic(x, yy, z, wgs84SemiMajor, wgs84SemiMinor, wgs84Eccentricity2)
	return radToDeg(lon), radToDeg(lat)
}

// Wgs84ToGaussKrueger converts WGS-84 longitude and latitude into a
// Gauss-Krueger right/height pair. The central meridian is the nearest of 6,
// 9, 12 and 15 degrees within 1.5 degrees, otherwise 15.
func Wgs84ToGaussKrueger(longitude, latitude float64) (right, height float64) {
	nWgs84 := wgs84SemiMajor / math.Sqrt(1-wgs84Eccentricity2*math.Pow(math.Sin(degToRad(latitude)), 2))
	x1, y1, z1 := toCartesian(longitude, latitude, wgs84SemiMajor, wgs84SemiMinor, nWgs84)
	x, y, z := wgs84ToBessel.apply(x1, y1, z1)

	lon, lat := toGeographic(x, y, z, besselSemiMajor, besselSemiMinor, besselEccentricity2)
	nBessel := besselSemiMajor / math.Sqrt(1-besselEccentricity2*math.Pow(math.Sin(lat), 2))

	meridian := centralMeridian(radToDeg(lon))
	l := degToRad(radToDeg(lon) - float64(meridian))
	b := degToRad(radToDeg(lat))

	p := math.Sqrt(math.Pow(besselSemiMajor, 2) / math.Pow(besselSemiMinor, 2) * besselEccentricity2 * math.Pow(math.Cos(b), 2))
	t := math.Tan(b)

	arc := arcLengthSeries.alpha * arcLengthSeries.at(b)
	bl1 := t / 2 * nWgs84 * math.Pow(math.Cos(b), 2) * math.Pow(l, 2)
	bl2 := t / 24 * nWgs84 * math.Pow(math.Cos(b), 4) * (5 - math.Pow(t, 2) + 9*math.Pow(p, 2) + 4*math.Pow(p, 4)) * math.Pow(l, 4)
	height = arc + bl1 + bl2

	rw1 := nBessel * math.Cos(b) * l
	rw2 := nBessel / 6 * math.Pow(math.Cos(b), 3) * (1 - math.Pow(t, 2) + math.Pow(p, 2)) * math.Pow(l, 3)
	right = rw1 + rw2 + 500000 + float64(meridian/3)*1000000
	return right, height
}

func centralMeridian(longitude float64) int {
	for _, meridian := range []int{6, 9, 12} {
		if math.Abs(longitude-float64(meridian)) < 1.5 {
			return meridian
		}
	}
	return 15
}

// toCartesian converts degrees at nominalHeight into geocentric coordinates
// using the radius of curvature n.
func toCartesian(longitude, latitude, semiMajor, semiMinor, n float64) (x, y, z float64) {
	lat := degToRad(latitude)
	lon := degToRad(longitude)
	x = (n + nominalHeight) * math.Cos(lat) * math.Cos(lon)
	y = (n + nominalHeight) * math.Cos(lat) * math.Sin(lon)
	z = (n*math.Pow(semiMinor, 2)/math.Pow(semiMajor, 2) + nominalHeight) * math.Sin(lat)
	return x, y, z
}

// toGeographic returns longitude and latitude in radians. The longitude uses
// atan(y/x) and is only valid within 90 degrees of Greenwich.
func toGeographic(x, y, z, semiMajor, semiMinor, eccentricity2 float64) (longitude, latitude float64) {
	s := math.Sqrt(x*x + y*y)
	t := math.Atan(z * semiMajor / (s * semiMinor))
	latitude = math.Atan((z + eccentricity2*math.Pow(semiMajor, 2)/semiMinor*math.Pow(math.Sin(t), 3)) /
		(s - eccentricity2*semiMajor*math.Pow(math.Cos(t), 3)))
	longitude = math.Atan(y / x)
	return longitude, latitude
}

func degToRad(degrees float64) float64 {
	return degrees / 180 * math.Pi
}

func radToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}
