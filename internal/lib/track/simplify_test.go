package track

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/dpup/navcore/internal/lib/geo"
	"github.com/dpup/navcore/internal/metrics"
)

func zigzag() []*geo.SimplePosition {
	return []*geo.SimplePosition{
		geo.NewCoordinate(10, 50),
		geo.NewCoordinate(10.25, 50.0005),
		geo.NewCoordinate(10.5, 50.01),
		geo.NewCoordinate(10.75, 50.0005),
		geo.NewCoordinate(11, 50),
	}
}

func TestSignificantPositions(t *testing.T) {
	tests := []struct {
		threshold float64
		expected  []int
	}{
		{100, []int{0, 1, 2, 3, 4}},
		{600, []int{0, 2, 4}},
		{1000, []int{0, 4}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, SignificantPositions(zigzag(), tt.threshold), "threshold %v", tt.threshold)
	}
}

func TestSignificantPositionsSmallLists(t *testing.T) {
	assert.Equal(t, []int{}, SignificantPositions([]*geo.SimplePosition{}, 5))
	assert.Equal(t, []int{0}, SignificantPositions([]*geo.SimplePosition{geo.NewCoordinate(1, 2)}, 5))
	assert.Equal(t, []int{0, 1}, SignificantPositions([]*geo.SimplePosition{geo.NewCoordinate(1, 2), geo.NewCoordinate(2, 3)}, 5))
}

func TestSignificantPositionsSkipsPositionsWithoutCoordinates(t *testing.T) {
	positions := zigzag()
	positions[2] = geo.NewPosition(nil, nil, nil, nil, geo.Ptr("no fix"))
	assert.Equal(t, []int{0, 4}, SignificantPositions(positions, 200))
}

func TestSignificantPositionsMetrics(t *testing.T) {
	runs := testutil.ToFloat64(metrics.TrackSimplifications)
	dropped := testutil.ToFloat64(metrics.TrackPositionsDropped)

	SignificantPositions(zigzag(), 1000)

	assert.Equal(t, runs+1, testutil.ToFloat64(metrics.TrackSimplifications))
	assert.Equal(t, dropped+3, testutil.ToFloat64(metrics.TrackPositionsDropped))
}
