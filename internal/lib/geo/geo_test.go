package geo

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	a := NewCoordinate(10.032, 53.56948)
	b := NewCoordinate(10.032, 53.569481)

	distance, ok := a.DistanceTo(b)
	require.True(t, ok)
	assert.InDelta(t, 0.111, distance, 1e-9)

	distance, ok = DistanceToCoords(NewCoordinate(1.504, 53.0902), 0.0833, 52.1219)
	require.True(t, ok)
	assert.InDelta(t, 144472.547, distance, 0.002)

	distance, ok = a.DistanceTo(a)
	require.True(t, ok)
	assert.Equal(t, 0.0, distance)
}

func TestDistanceUnknownWithoutCoordinates(t *testing.T) {
	a := NewCoordinate(10.032, 53.56948)
	noLatitude := NewPosition(Ptr(10.0), nil, nil, nil, nil)

	_, ok := a.DistanceTo(noLatitude)
	assert.False(t, ok)
	_, ok = noLatitude.DistanceTo(a)
	assert.False(t, ok)
	_, ok = Angle(a, noLatitude)
	assert.False(t, ok)
}

func TestAngle(t *testing.T) {
	angle, ok := NewCoordinate(10.032, 53.56948).AngleTo(NewCoordinate(10.032001, 53.56948))
	require.True(t, ok)
	assert.InDelta(t, 90.0, angle, 1e-6)

	angle, ok = Angle(NewCoordinate(13.405, 52.52), NewCoordinate(2.3522, 48.8566))
	require.True(t, ok)
	assert.InDelta(t, 246.0, angle, 1.0)
}

func TestOrthogonalDistance(t *testing.T) {
	a := NewCoordinate(10, 50)
	b := NewCoordinate(11, 50)

	north, ok := NewCoordinate(10.5, 50.01).OrthogonalDistanceTo(a, b)
	require.True(t, ok)
	assert.InDelta(t, -992.4689486688936, north, 0.01)

	south, ok := OrthogonalDistance(NewCoordinate(10.5, 49.99), a, b)
	require.True(t, ok)
	assert.InDelta(t, 1232.1122912842895, south, 0.01)

	// the great circle between a and b bulges north of the parallel
	onParallel, ok := OrthogonalDistance(NewCoordinate(10.5, 50.0), a, b)
	require.True(t, ok)
	assert.InDelta(t, 119.82263497362322, onParallel, 0.01)

	onLine, ok := OrthogonalDistance(a, a, b)
	require.True(t, ok)
	assert.Equal(t, 0.0, onLine)

	_, ok = OrthogonalDistance(NewPosition(nil, Ptr(50.0), nil, nil, nil), a, b)
	assert.False(t, ok)
}

func TestElevationDelta(t *testing.T) {
	a := NewPosition(Ptr(10.0), Ptr(50.0), Ptr(100.0), nil, nil)
	b := NewPosition(Ptr(10.1), Ptr(50.1), Ptr(250.5), nil, nil)

	delta, ok := a.ElevationDeltaTo(b)
	require.True(t, ok)
	assert.Equal(t, 150.5, delta)

	_, ok = ElevationDelta(a, NewCoordinate(10, 50))
	assert.False(t, ok)
}

func TestTimeDelta(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	a := NewPosition(Ptr(10.0), Ptr(50.0), nil, Ptr(start), nil)
	b := NewPosition(Ptr(10.1), Ptr(50.1), nil, Ptr(start.Add(90*time.Second)), nil)

	delta, ok := a.TimeDeltaTo(b)
	require.True(t, ok)
	assert.Equal(t, int64(90000), delta)

	delta, ok = TimeDelta(b, a)
	require.True(t, ok)
	assert.Equal(t, int64(-90000), delta)

	_, ok = TimeDelta(a, NewCoordinate(10, 50))
	assert.False(t, ok)
}

func TestSpeed(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	a := NewPosition(Ptr(1.504), Ptr(53.0902), nil, Ptr(start), nil)
	b := NewPosition(Ptr(0.0833), Ptr(52.1219), nil, Ptr(start.Add(time.Hour)), nil)

	speed, ok := a.SpeedTo(b)
	require.True(t, ok)
	assert.InDelta(t, 144.472547, speed, 1e-5)

	// direction of time does not change the sign
	speed, ok = Speed(b, a)
	require.True(t, ok)
	assert.InDelta(t, 144.472547, speed, 1e-5)
}

func TestSpeedUnknown(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	a := NewPosition(Ptr(1.504), Ptr(53.0902), nil, Ptr(start), nil)

	tests := []struct {
		name  string
		other Position
	}{
		{"no time", NewCoordinate(0.0833, 52.1219)},
		{"zero interval", NewPosition(Ptr(0.0833), Ptr(52.1219), nil, Ptr(start), nil)},
		{"zero distance", NewPosition(Ptr(1.504), Ptr(53.0902), nil, Ptr(start.Add(time.Minute)), nil)},
		{"no coordinates", NewPosition(nil, nil, nil, Ptr(start.Add(time.Minute)), nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Speed(a, tt.other)
			assert.False(t, ok)
		})
	}
}

func TestDerivedOperationsWithNaN(t *testing.T) {
	_, ok := Distance(NewCoordinate(math.NaN(), 50), NewCoordinate(10, 50))
	assert.False(t, ok)
}

func TestSimplePositionEqual(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	a := NewPosition(Ptr(10.0), Ptr(50.0), Ptr(0.0), Ptr(start), Ptr("A"))
	b := NewPosition(Ptr(10.0), Ptr(50.0), Ptr(0.0), Ptr(start.In(time.FixedZone("CEST", 7200))), Ptr("A"))
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	absentElevation := NewPosition(Ptr(10.0), Ptr(50.0), nil, Ptr(start), Ptr("A"))
	assert.False(t, a.Equal(absentElevation))
	assert.NotEqual(t, a.Hash(), absentElevation.Hash())

	emptyDescription := NewPosition(Ptr(10.0), Ptr(50.0), Ptr(0.0), Ptr(start), Ptr(""))
	noDescription := NewPosition(Ptr(10.0), Ptr(50.0), Ptr(0.0), Ptr(start), nil)
	assert.False(t, emptyDescription.Equal(noDescription))
	assert.NotEqual(t, emptyDescription.Hash(), noDescription.Hash())

	withSpeed := FromPosition(a)
	withSpeed.SetSpeed(Ptr(12.5))
	assert.False(t, a.Equal(withSpeed))
	assert.True(t, a.Equal(FromPosition(a)))
}

func TestSimplePositionString(t *testing.T) {
	p := NewPosition(Ptr(10.032), Ptr(53.56948), Ptr(12.5), nil, Ptr("Hamburg"))
	assert.Equal(t, "SimplePosition[longitude=10.032, latitude=53.56948, elevation=12.5, description=Hamburg]", p.String())

	empty := NewPosition(nil, nil, nil, nil, nil)
	assert.Equal(t, "SimplePosition[longitude=<nil>, latitude=<nil>, description=<nil>]", empty.String())
	assert.False(t, empty.HasCoordinates())
	assert.False(t, empty.HasTime())
}
