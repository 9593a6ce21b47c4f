package aggregation

import (
	"errors"
	"fmt"
)

var (
	// ErrReservedIndex is returned for batches touching index 0 or below
	ErrReservedIndex = errors.New("index 0 and below are reserved for the zero seed")
	// ErrEmptyBatch is returned for batches without entries
	ErrEmptyBatch = errors.New("batch has no entries")
)

// DistanceAndTime is a distance in meters and a duration in milliseconds.
// Either part may be unknown.
type DistanceAndTime struct {
	Distance *float64 `json:"distance_meters,omitempty"`
	Time     *int64   `json:"time_millis,omitempty"`
}

// New creates a DistanceAndTime with both parts known
func New(distance float64, millis int64) DistanceAndTime {
	return DistanceAndTime{Distance: &distance, Time: &millis}
}

// Zero is the seed of index 0
func Zero() DistanceAndTime {
	return New(0, 0)
}

// DistanceOrZero returns the distance, treating unknown as 0
func (d DistanceAndTime) DistanceOrZero() float64 {
	if d.Distance == nil {
		return 0
	}
	return *d.Distance
}

// TimeOrZero returns the time, treating unknown as 0
func (d DistanceAndTime) TimeOrZero() int64 {
	if d.Time == nil {
		return 0
	}
	return *d.Time
}

// Add sums both parts with unknown parts contributing 0. The result is
// always fully known.
func (d DistanceAndTime) Add(other DistanceAndTime) DistanceAndTime {
	return New(d.DistanceOrZero()+other.DistanceOrZero(), d.TimeOrZero()+other.TimeOrZero())
}

// Equal compares both parts; unknown only equals unknown
func (d DistanceAndTime) Equal(other DistanceAndTime) bool {
	sameDistance := (d.Distance == nil) == (other.Distance == nil) &&
		(d.Distance == nil || *d.Distance == *other.Distance)
	sameTime := (d.Time == nil) == (other.Time == nil) &&
		(d.Time == nil || *d.Time == *other.Time)
	return sameDistance && sameTime
}

func (d DistanceAndTime) String() string {
	distance, millis := "<nil>", "<nil>"
	if d.Distance != nil {
		distance = fmt.Sprintf("%v", *d.Distance)
	}
	if d.Time != nil {
		millis = fmt.Sprintf("%d", *d.Time)
	}
	return fmt.Sprintf("DistanceAndTime[distance=%s, time=%s]", distance, millis)
}

// Listener is notified with the range of indices a change touched
type Listener func(firstIndex, lastIndex int)

// Option configures an Aggregator
type Option func(*Aggregator)
