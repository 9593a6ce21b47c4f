package geo

import "time"

// Position is the capability contract shared by every navigation position.
// Absent values are nil, never zero.
type Position interface {
	Longitude() *float64
	SetLongitude(longitude *float64)
	Latitude() *float64
	SetLatitude(latitude *float64)
	// Elevation in meters above sea level
	Elevation() *float64
	SetElevation(elevation *float64)
	// Time in UTC
	Time() *time.Time
	SetTime(t *time.Time)
	// Speed in km/h
	Speed() *float64
	SetSpeed(speed *float64)
	Description() *string
	SetDescription(description *string)

	// HasCoordinates reports whether longitude and latitude are both present
	HasCoordinates() bool
	HasTime() bool
}

// SimplePosition is the plain value implementation of Position
type SimplePosition struct {
	longitude   *float64
	latitude    *float64
	elevation   *float64
	time        *time.Time
	speed       *float64
	description *string
}

// Ptr returns a pointer to v for building optional values
func Ptr[T any](v T) *T {
	return &v
}
