package track

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpup/navcore/internal/lib/aggregation"
	"github.com/dpup/navcore/internal/lib/geo"
)

func TestSegments(t *testing.T) {
	positions := []geo.Position{
		timed(10, 50, 0),
		timed(10.5, 50, 30*time.Minute),
		geo.NewCoordinate(11, 50),
	}
	batch := Segments(positions)
	require.Len(t, batch, 2)

	require.NotNil(t, batch[1].Distance)
	assert.InDelta(t, 35847.81, *batch[1].Distance, 0.01)
	require.NotNil(t, batch[1].Time)
	assert.Equal(t, int64(30*60*1000), *batch[1].Time)

	require.NotNil(t, batch[2].Distance)
	assert.Nil(t, batch[2].Time)
}

func TestSegmentsFeedAggregator(t *testing.T) {
	positions := []*geo.SimplePosition{
		timed(10, 50, 0),
		timed(10.5, 50, 30*time.Minute),
		timed(11, 50, time.Hour),
	}
	a := aggregation.NewAggregator()
	require.NoError(t, a.Apply(Segments(positions)))

	total := a.TotalDistanceAndTime()
	length := Length(positions)
	assert.InDelta(t, *length.Distance, *total.Distance, 1e-9)
	assert.Equal(t, *length.Time, *total.Time)
}

func TestLength(t *testing.T) {
	positions := []*geo.SimplePosition{
		timed(10, 50, 0),
		timed(10.5, 50, 30*time.Minute),
		timed(11, 50, time.Hour),
	}
	length := Length(positions)
	assert.InDelta(t, 71695.62, *length.Distance, 0.01)
	assert.Equal(t, int64(time.Hour/time.Millisecond), *length.Time)
}

func TestLengthTimeUsesTheLargerOfSpanAndSum(t *testing.T) {
	// a jump back in time shrinks the span below the summed positive deltas
	positions := []*geo.SimplePosition{
		timed(10, 50, 0),
		timed(10.5, 50, time.Hour),
		timed(11, 50, 30*time.Minute),
		timed(11.5, 50, 90*time.Minute),
	}
	length := Length(positions)
	assert.Equal(t, int64(2*time.Hour/time.Millisecond), *length.Time)

	// unordered times without positive deltas fall back to the span
	positions = []*geo.SimplePosition{
		timed(10, 50, time.Hour),
		timed(10.5, 50, 0),
	}
	length = Length(positions)
	assert.Equal(t, int64(time.Hour/time.Millisecond), *length.Time)
}

func TestLengthWithoutTimes(t *testing.T) {
	length := Length([]*geo.SimplePosition{geo.NewCoordinate(10, 50), geo.NewCoordinate(11, 50)})
	assert.InDelta(t, 71695.219, *length.Distance, 0.002)
	assert.Equal(t, int64(0), *length.Time)

	empty := Length([]*geo.SimplePosition{})
	assert.True(t, empty.Equal(aggregation.Zero()))
}

func TestLengthWithProgress(t *testing.T) {
	positions := make([]*geo.SimplePosition, 0, 5)
	for i := 0; i < 5; i++ {
		positions = append(positions, geo.NewCoordinate(10+float64(i)*0.1, 50))
	}
	var reports []aggregation.DistanceAndTime
	_, err := LengthWithProgress(context.Background(), positions, 2, func(d aggregation.DistanceAndTime) {
		reports = append(reports, d)
	})
	require.NoError(t, err)
	assert.Len(t, reports, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = LengthWithProgress(ctx, positions, 2, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
