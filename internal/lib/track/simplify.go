// Package track derives simplifications, times and lengths from ordered
// position lists.
package track

import (
	"math"

	"github.com/dpup/navcore/internal/lib/geo"
	"github.com/dpup/navcore/internal/metrics"
)

// SignificantPositions returns the ascending indices of the positions kept by
// the Douglas-Peucker algorithm for the given threshold in meters. The first
// and the last index are always kept. Positions without coordinates never
// split a segment.
func SignificantPositions[P geo.Position](positions []P, thresholdMeters float64) []int {
	metrics.TrackSimplifications.Inc()
	switch len(positions) {
	case 0:
		return []int{}
	case 1:
		return []int{0}
	}
	result := douglasPeucker(positions, 0, len(positions)-1, thresholdMeters)
	metrics.TrackPositionsDropped.Add(float64(len(positions) - len(result)))
	return result
}

func douglasPeucker[P geo.Position](positions []P, from, to int, threshold float64) []int {
	pointA, pointB := positions[from], positions[to]
	maximumDistanceIndex := -1
	maximumDistance := 0.0
	for i := from + 1; i < to; i++ {
		position := positions[i]
		if !position.HasCoordinates() {
			continue
		}
		distance, ok := geo.OrthogonalDistance(position, pointA, pointB)
		if !ok {
			continue
		}
		if math.Abs(distance) > maximumDistance {
			maximumDistance = math.Abs(distance)
			maximumDistanceIndex = i
		}
	}

	if maximumDistanceIndex == -1 || maximumDistance <= threshold {
		return []int{from, to}
	}
	left := douglasPeucker(positions, from, maximumDistanceIndex, threshold)
	right := douglasPeucker(positions, maximumDistanceIndex, to, threshold)
	// the split index ends left and starts right
	return append(left[:len(left)-1], right...)
}
