// Package units converts between the linear units and degree encodings used by
// navigation formats.
package units

import "math"

const (
	MetersOfAFoot             = 0.3048
	KilometersOfANauticalMile = 1.8520043
	KilometersOfAStatuteMile  = 1.609344
	MetersOfAKilometer        = 1000.0
	SecondsOfAMinute          = 60
	SecondsOfAnHour           = 60 * SecondsOfAMinute
)

// Orientation is the hemisphere letter that accompanies an unsigned NMEA value.
type Orientation string

const (
	North Orientation = "N"
	South Orientation = "S"
	East  Orientation = "E"
	West  Orientation = "W"
)

func FeetToMeters(feet float64) float64 {
	return feet * MetersOfAFoot
}

func MetersToFeet(meters float64) float64 {
	return meters / MetersOfAFoot
}

func NauticalMilesToKilometers(miles float64) float64 {
	return miles * KilometersOfANauticalMile
}

func KilometersToNauticalMiles(kilometers float64) float64 {
	return kilometers / KilometersOfANauticalMile
}

func StatuteMilesToKilometers(miles float64) float64 {
	return miles * KilometersOfAStatuteMile
}

func KilometersToStatuteMiles(kilometers float64) float64 {
	return kilometers / KilometersOfAStatuteMile
}

// MsToKmh converts meters per second to kilometers per hour
func MsToKmh(metersPerSecond float64) float64 {
	return metersPerSecond * SecondsOfAnHour / MetersOfAKilometer
}

// KmhToMs converts kilometers per hour to meters per second
func KmhToMs(kilometersPerHour float64) float64 {
	return kilometersPerHour * MetersOfAKilometer / SecondsOfAnHour
}

// DdmmToDegrees decodes a packed DDMM.mmmm value into decimal degrees.
// The fraction is floored to 7 digits.
func DdmmToDegrees(ddmm float64) float64 {
	decimal := ddmm / 100.0
	asInt := math.Trunc(decimal)
	behindDot := FloorFraction(((decimal-asInt)*100.0)/SecondsOfAMinute, 7)
	return asInt + behindDot
}

// DegreesToDdmm encodes decimal degrees as a packed DDMM.mmmm value.
// The degree fraction is ceiled to 7 digits and the minutes to 4 digits.
func DegreesToDdmm(degrees float64) float64 {
	asInt := math.Trunc(degrees)
	behindDot := CeilFraction(degrees-asInt, 7)
	behindDdMm := CeilFraction(behindDot*SecondsOfAMinute, 4)
	return asInt*100.0 + behindDdMm
}

// NmeaToDegrees decodes an unsigned NMEA DDMM.mmmm value. South and West
// yield negative degrees.
func NmeaToDegrees(value float64, orientation Orientation) float64 {
	decimal := value / 100.0
	asInt := math.Trunc(decimal)
	behindDot := ((decimal - asInt) * 100.0) / SecondsOfAMinute
	degrees := RoundFraction(asInt+behindDot, 10)
	if orientation == South || orientation == West {
		return -degrees
	}
	return degrees
}

// LongitudeToNmea encodes a longitude as an unsigned NMEA value with East or West.
func LongitudeToNmea(longitude float64) (float64, Orientation) {
	return degreesToNmea(longitude, East, West)
}

// LatitudeToNmea encodes a latitude as an unsigned NMEA value with North or South.
func LatitudeToNmea(latitude float64) (float64, Orientation) {
	return degreesToNmea(latitude, North, South)
}

func degreesToNmea(degrees float64, aboveZero, belowZero Orientation) (float64, Orientation) {
	asInt := math.Trunc(degrees)
	behindDot := degrees - asInt
	ddmm := asInt*100.0 + behindDot*SecondsOfAMinute
	value := RoundFraction(math.Abs(ddmm), 10)
	if ddmm >= 0.0 {
		return value, aboveZero
	}
	return value, belowZero
}

// RoundFraction rounds half up to the given number of fraction digits.
func RoundFraction(number float64, fractionCount int) float64 {
	factor := math.Pow(10, float64(fractionCount))
	return math.Floor(number*factor+0.5) / factor
}

func CeilFraction(number float64, fractionCount int) float64 {
	factor := math.Pow(10, float64(fractionCount))
	return math.Ceil(number*factor) / factor
}

func FloorFraction(number float64, fractionCount int) float64 {
	factor := math.Pow(10, float64(fractionCount))
	return math.Floor(number*factor) / factor
}
