package geo

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"time"
)

// NewPosition creates a position from optional values
func NewPosition(longitude, latitude, elevation *float64, t *time.Time, description *string) *SimplePosition {
	return &SimplePosition{
		longitude:   longitude,
		latitude:    latitude,
		elevation:   elevation,
		time:        t,
		description: description,
	}
}

// NewCoordinate creates a position with only longitude and latitude
func NewCoordinate(longitude, latitude float64) *SimplePosition {
	return NewPosition(&longitude, &latitude, nil, nil, nil)
}

// FromPosition copies every field of p into a new SimplePosition
func FromPosition(p Position) *SimplePosition {
	if sp, ok := p.(*SimplePosition); ok {
		c := *sp
		return &c
	}
	result := NewPosition(p.Longitude(), p.Latitude(), p.Elevation(), p.Time(), p.Description())
	result.speed = p.Speed()
	return result
}

func (p *SimplePosition) Longitude() *float64                { return p.longitude }
func (p *SimplePosition) SetLongitude(longitude *float64)    { p.longitude = longitude }
func (p *SimplePosition) Latitude() *float64                 { return p.latitude }
func (p *SimplePosition) SetLatitude(latitude *float64)      { p.latitude = latitude }
func (p *SimplePosition) Elevation() *float64                { return p.elevation }
func (p *SimplePosition) SetElevation(elevation *float64)    { p.elevation = elevation }
func (p *SimplePosition) Time() *time.Time                   { return p.time }
func (p *SimplePosition) SetTime(t *time.Time)               { p.time = t }
func (p *SimplePosition) Speed() *float64                    { return p.speed }
func (p *SimplePosition) SetSpeed(speed *float64)            { p.speed = speed }
func (p *SimplePosition) Description() *string               { return p.description }
func (p *SimplePosition) SetDescription(description *string) { p.description = description }

func (p *SimplePosition) HasCoordinates() bool {
	return p.longitude != nil && p.latitude != nil
}

func (p *SimplePosition) HasTime() bool {
	return p.time != nil
}

// DistanceTo returns the ellipsoidal distance to other in meters
func (p *SimplePosition) DistanceTo(other Position) (float64, bool) {
	return Distance(p, other)
}

// AngleTo returns the forward azimuth to other in degrees
func (p *SimplePosition) AngleTo(other Position) (float64, bool) {
	return Angle(p, other)
}

// OrthogonalDistanceTo returns the signed cross-track distance to the great
// circle through a and b
func (p *SimplePosition) OrthogonalDistanceTo(a, b Position) (float64, bool) {
	return OrthogonalDistance(p, a, b)
}

func (p *SimplePosition) ElevationDeltaTo(other Position) (float64, bool) {
	return ElevationDelta(p, other)
}

func (p *SimplePosition) TimeDeltaTo(other Position) (int64, bool) {
	return TimeDelta(p, other)
}

func (p *SimplePosition) SpeedTo(other Position) (float64, bool) {
	return Speed(p, other)
}

// Equal compares every field. An absent field only equals an absent field;
// floats compare by bit pattern.
func (p *SimplePosition) Equal(other *SimplePosition) bool {
	if p == nil || other == nil {
		return p == other
	}
	return equalFloat(p.longitude, other.longitude) &&
		equalFloat(p.latitude, other.latitude) &&
		equalFloat(p.elevation, other.elevation) &&
		equalFloat(p.speed, other.speed) &&
		equalTime(p.time, other.time) &&
		equalString(p.description, other.description)
}

// Hash is consistent with Equal
func (p *SimplePosition) Hash() uint64 {
	h := fnv.New64a()
	var buf [9]byte
	writeOptional := func(present bool, bits uint64) {
		buf[0] = 0
		if present {
			buf[0] = 1
		}
		binary.BigEndian.PutUint64(buf[1:], bits)
		h.Write(buf[:])
	}
	for _, f := range []*float64{p.longitude, p.latitude, p.elevation, p.speed} {
		if f == nil {
			writeOptional(false, 0)
		} else {
			writeOptional(true, math.Float64bits(*f))
		}
	}
	if p.time == nil {
		writeOptional(false, 0)
	} else {
		writeOptional(true, uint64(p.time.UnixNano()))
	}
	if p.description == nil {
		writeOptional(false, 0)
	} else {
		writeOptional(true, uint64(len(*p.description)))
		h.Write([]byte(*p.description))
	}
	return h.Sum64()
}

func (p *SimplePosition) String() string {
	var b strings.Builder
	b.WriteString("SimplePosition[longitude=")
	b.WriteString(optionalFloat(p.longitude))
	b.WriteString(", latitude=")
	b.WriteString(optionalFloat(p.latitude))
	if p.elevation != nil {
		fmt.Fprintf(&b, ", elevation=%v", *p.elevation)
	}
	if p.time != nil {
		fmt.Fprintf(&b, ", time=%s", p.time.UTC().Format(time.RFC3339Nano))
	}
	if p.speed != nil {
		fmt.Fprintf(&b, ", speed=%v", *p.speed)
	}
	b.WriteString(", description=")
	if p.description == nil {
		b.WriteString("<nil>")
	} else {
		b.WriteString(*p.description)
	}
	b.WriteString("]")
	return b.String()
}

func optionalFloat(f *float64) string {
	if f == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v", *f)
}

func equalFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return math.Float64bits(*a) == math.Float64bits(*b)
}

func equalTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
