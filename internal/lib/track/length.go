package track

import (
	"context"

	"github.com/dpup/navcore/internal/lib/aggregation"
	"github.com/dpup/navcore/internal/lib/geo"
)

// Segments returns the per-segment batch for an aggregation.Aggregator:
// index i holds the distance and time from position i-1 to position i,
// each unknown when it cannot be derived.
func Segments[P geo.Position](positions []P) map[int]aggregation.DistanceAndTime {
	batch := make(map[int]aggregation.DistanceAndTime, len(positions))
	for i := 1; i < len(positions); i++ {
		var segment aggregation.DistanceAndTime
		if distance, ok := geo.Distance(positions[i-1], positions[i]); ok {
			segment.Distance = &distance
		}
		if millis, ok := geo.TimeDelta(positions[i-1], positions[i]); ok {
			segment.Time = &millis
		}
		batch[i] = segment
	}
	return batch
}

// Length sums the segment distances. The time is the larger of the span
// between the earliest and the latest time and the sum of the positive time
// deltas.
func Length[P geo.Position](positions []P) aggregation.DistanceAndTime {
	result, _ := LengthWithProgress(context.Background(), positions, 0, nil)
	return result
}

// LengthWithProgress is Length reporting the running sums to progress after
// every `every` positions. It stops early with the context error.
func LengthWithProgress[P geo.Position](ctx context.Context, positions []P, every int, progress func(aggregation.DistanceAndTime)) (aggregation.DistanceAndTime, error) {
	var distance float64
	var summed int64
	var minimum, maximum *int64

	for i, next := range positions {
		if err := ctx.Err(); err != nil {
			return aggregation.DistanceAndTime{}, err
		}
		if i > 0 {
			previous := positions[i-1]
			if d, ok := geo.Distance(previous, next); ok {
				distance += d
			}
			if millis, ok := geo.TimeDelta(previous, next); ok && millis > 0 {
				summed += millis
			}
		}
		if next.HasTime() {
			millis := next.Time().UnixMilli()
			if minimum == nil || millis < *minimum {
				minimum = &millis
			}
			if maximum == nil || millis > *maximum {
				maximum = &millis
			}
		}
		if progress != nil && every > 0 && i > 0 && i%every == 0 {
			progress(aggregation.New(distance, summed))
		}
	}

	span := int64(0)
	if minimum != nil {
		span = *maximum - *minimum
	}
	return aggregation.New(distance, max(span, summed)), nil
}
