package geo

import (
	"fmt"
	"time"
)

// BoundingBox is the area between a north east and a south west corner
type BoundingBox struct {
	NorthEast Position
	SouthWest Position
}

// NewBoundingBox creates a bounding box from its corners. A corner without
// coordinates leaves the box without coordinates, see HasCoordinates.
func NewBoundingBox(northEast, southWest Position) *BoundingBox {
	return &BoundingBox{NorthEast: northEast, SouthWest: southWest}
}

// NewBoundingBoxFromCoordinates creates a bounding box from corner coordinates
func NewBoundingBoxFromCoordinates(longitudeNorthEast, latitudeNorthEast, longitudeSouthWest, latitudeSouthWest float64) *BoundingBox {
	return NewBoundingBox(
		NewCoordinate(longitudeNorthEast, latitudeNorthEast),
		NewCoordinate(longitudeSouthWest, latitudeSouthWest),
	)
}

// NewBoundingBoxFromPositions scans positions for the extreme coordinates and
// times. Positions without a longitude are skipped; positions without a
// latitude only widen the longitude range. Times count only for positions
// with both coordinates. An empty list yields the inverted box from
// (-180, -90) to (180, 90).
func NewBoundingBoxFromPositions[P Position](positions []P) *BoundingBox {
	maximumLongitude, maximumLatitude := -180.0, -90.0
	minimumLongitude, minimumLatitude := 180.0, 90.0
	var maximumTime, minimumTime *time.Time

	for _, position := range positions {
		longitude := position.Longitude()
		if longitude == nil {
			continue
		}
		if *longitude > maximumLongitude {
			maximumLongitude = *longitude
		}
		if *longitude < minimumLongitude {
			minimumLongitude = *longitude
		}
		latitude := position.Latitude()
		if latitude == nil {
			continue
		}
		if *latitude > maximumLatitude {
			maximumLatitude = *latitude
		}
		if *latitude < minimumLatitude {
			minimumLatitude = *latitude
		}
		t := position.Time()
		if t == nil {
			continue
		}
		if maximumTime == nil || t.After(*maximumTime) {
			maximumTime = t
		}
		if minimumTime == nil || t.Before(*minimumTime) {
			minimumTime = t
		}
	}

	return NewBoundingBox(
		NewPosition(Ptr(maximumLongitude), Ptr(maximumLatitude), nil, copyTime(maximumTime), nil),
		NewPosition(Ptr(minimumLongitude), Ptr(minimumLatitude), nil, copyTime(minimumTime), nil),
	)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	return Ptr(*t)
}

// HasCoordinates reports whether both corners have a longitude and a latitude
func (b *BoundingBox) HasCoordinates() bool {
	return b.NorthEast != nil && b.SouthWest != nil &&
		b.NorthEast.HasCoordinates() && b.SouthWest.HasCoordinates()
}

// SouthEast combines the north east longitude with the south west latitude
func (b *BoundingBox) SouthEast() Position {
	return NewPosition(b.NorthEast.Longitude(), b.SouthWest.Latitude(), nil, nil, nil)
}

// NorthWest combines the south west longitude with the north east latitude
func (b *BoundingBox) NorthWest() Position {
	return NewPosition(b.SouthWest.Longitude(), b.NorthEast.Latitude(), nil, nil, nil)
}

// SquareSize is the signed product of the corner deltas. It orders boxes by
// size and is not an area. A box without coordinates has size 0.
func (b *BoundingBox) SquareSize() float64 {
	if !b.HasCoordinates() {
		return 0
	}
	return (*b.SouthWest.Longitude() - *b.NorthEast.Longitude()) *
		(*b.SouthWest.Latitude() - *b.NorthEast.Latitude())
}

// Contains reports whether position lies inside the box, edges included.
// Positions without coordinates are never contained, and a box without
// coordinates contains nothing.
func (b *BoundingBox) Contains(position Position) bool {
	if !position.HasCoordinates() || !b.HasCoordinates() {
		return false
	}
	longitude, latitude := *position.Longitude(), *position.Latitude()
	return longitude >= *b.SouthWest.Longitude() &&
		longitude <= *b.NorthEast.Longitude() &&
		latitude >= *b.SouthWest.Latitude() &&
		latitude <= *b.NorthEast.Latitude()
}

// ContainsBox reports whether all four corners of other lie inside the box
func (b *BoundingBox) ContainsBox(other *BoundingBox) bool {
	return b.Contains(other.NorthEast) && b.Contains(other.SouthEast()) &&
		b.Contains(other.SouthWest) && b.Contains(other.NorthWest())
}

// Center returns the midpoint of the corners. The time is the midpoint of the
// corner times when both are present. A box without coordinates has a center
// without coordinates.
func (b *BoundingBox) Center() *SimplePosition {
	var longitude, latitude *float64
	if b.HasCoordinates() {
		longitude = Ptr(midpoint(*b.SouthWest.Longitude(), *b.NorthEast.Longitude()))
		latitude = Ptr(midpoint(*b.SouthWest.Latitude(), *b.NorthEast.Latitude()))
	}
	var center *time.Time
	if b.NorthEast != nil && b.SouthWest != nil && b.NorthEast.HasTime() && b.SouthWest.HasTime() {
		northEast := b.NorthEast.Time().UnixMilli()
		millis := northEast + (b.SouthWest.Time().UnixMilli()-northEast)/2
		center = Ptr(time.UnixMilli(millis).UTC())
	}
	return NewPosition(longitude, latitude, nil, center, nil)
}

func midpoint(a, b float64) float64 {
	sum := a + b
	if sum == 0.0 {
		return sum
	}
	return sum / 2
}

// Equal compares both corners field by field
func (b *BoundingBox) Equal(other *BoundingBox) bool {
	if b == nil || other == nil {
		return b == other
	}
	return FromPosition(b.NorthEast).Equal(FromPosition(other.NorthEast)) &&
		FromPosition(b.SouthWest).Equal(FromPosition(other.SouthWest))
}

func (b *BoundingBox) String() string {
	return fmt.Sprintf("BoundingBox[northEast=%s, southWest=%s]", FromPosition(b.NorthEast), FromPosition(b.SouthWest))
}
