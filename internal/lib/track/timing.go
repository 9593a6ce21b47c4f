package track

import (
	"math"
	"time"

	"github.com/dpup/navcore/internal/lib/geo"
)

// InterpolateTime estimates when position was passed between predecessor and
// successor, proportional to the distances to both. It returns nil when a
// time or a distance is unknown or zero.
func InterpolateTime(position, predecessor, successor geo.Position) *time.Time {
	if !predecessor.HasTime() || !successor.HasTime() {
		return nil
	}
	timeDelta, _ := geo.TimeDelta(predecessor, successor)
	toPredecessor, ok := nonEmptyDistance(predecessor, position)
	if !ok {
		return nil
	}
	toSuccessor, ok := nonEmptyDistance(position, successor)
	if !ok {
		return nil
	}
	ratio := toPredecessor / (toPredecessor + toSuccessor)
	return offset(predecessor, math.Abs(float64(timeDelta))*ratio)
}

// ExtrapolateTime estimates when position was reached after predecessor,
// assuming the pace between beforePredecessor and predecessor continues.
func ExtrapolateTime(position, predecessor, beforePredecessor geo.Position) *time.Time {
	if !predecessor.HasTime() || !beforePredecessor.HasTime() {
		return nil
	}
	timeDelta, _ := geo.TimeDelta(beforePredecessor, predecessor)
	distanceDelta, ok := nonEmptyDistance(beforePredecessor, predecessor)
	if !ok {
		return nil
	}
	distance, ok := nonEmptyDistance(predecessor, position)
	if !ok {
		return nil
	}
	return offset(predecessor, math.Abs(float64(timeDelta))*(distance/distanceDelta))
}

func nonEmptyDistance(a, b geo.Position) (float64, bool) {
	distance, ok := geo.Distance(a, b)
	if !ok || distance == 0 {
		return 0, false
	}
	return distance, true
}

func offset(p geo.Position, millis float64) *time.Time {
	t := time.UnixMilli(p.Time().UnixMilli() + int64(millis)).UTC()
	return &t
}
