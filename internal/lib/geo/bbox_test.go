package geo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundingBoxFromPositions(t *testing.T) {
	positions := []*SimplePosition{
		NewCoordinate(10.0, 50.0),
		NewCoordinate(12.5, 48.0),
		NewCoordinate(11.0, 52.0),
	}
	box := NewBoundingBoxFromPositions(positions)
	assert.True(t, box.Equal(NewBoundingBoxFromCoordinates(12.5, 52.0, 10.0, 48.0)))
	assert.True(t, FromPosition(box.SouthEast()).Equal(NewCoordinate(12.5, 48.0)))
	assert.True(t, FromPosition(box.NorthWest()).Equal(NewCoordinate(10.0, 52.0)))
}

func TestBoundingBoxFromSinglePosition(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	position := NewPosition(Ptr(10.032), Ptr(53.56948), nil, Ptr(at), nil)
	box := NewBoundingBoxFromPositions([]*SimplePosition{position})

	assert.True(t, FromPosition(box.NorthEast).Equal(position))
	assert.True(t, FromPosition(box.SouthWest).Equal(position))
	assert.True(t, box.Contains(position))
	assert.True(t, box.ContainsBox(box))
}

func TestBoundingBoxFromEmptyList(t *testing.T) {
	box := NewBoundingBoxFromPositions([]*SimplePosition{})
	assert.True(t, box.Equal(NewBoundingBoxFromCoordinates(-180, -90, 180, 90)))
	assert.False(t, box.Contains(NewCoordinate(0, 0)))
}

func TestBoundingBoxScanSkipsMissingCoordinates(t *testing.T) {
	early := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)
	positions := []Position{
		NewPosition(Ptr(10.0), Ptr(50.0), nil, Ptr(early.Add(time.Minute)), nil),
		// longitude without latitude still widens the longitude range
		NewPosition(Ptr(20.0), nil, nil, Ptr(late.Add(time.Hour)), nil),
		// no longitude is skipped entirely
		NewPosition(nil, Ptr(80.0), nil, Ptr(early.Add(-time.Hour)), nil),
		NewPosition(Ptr(11.0), Ptr(51.0), nil, Ptr(late), nil),
		NewPosition(Ptr(10.5), Ptr(50.5), nil, Ptr(early), nil),
	}
	box := NewBoundingBoxFromPositions(positions)

	assert.Equal(t, 20.0, *box.NorthEast.Longitude())
	assert.Equal(t, 51.0, *box.NorthEast.Latitude())
	assert.Equal(t, 10.0, *box.SouthWest.Longitude())
	assert.Equal(t, 50.0, *box.SouthWest.Latitude())
	require.True(t, box.NorthEast.HasTime())
	require.True(t, box.SouthWest.HasTime())
	assert.True(t, box.NorthEast.Time().Equal(late))
	assert.True(t, box.SouthWest.Time().Equal(early))
}

func TestBoundingBoxWithoutTimes(t *testing.T) {
	box := NewBoundingBoxFromPositions([]*SimplePosition{NewCoordinate(1, 2), NewCoordinate(3, 4)})
	assert.False(t, box.NorthEast.HasTime())
	assert.False(t, box.SouthWest.HasTime())
	assert.False(t, box.Center().HasTime())
}

func TestBoundingBoxContains(t *testing.T) {
	box := NewBoundingBoxFromCoordinates(12.5, 52.0, 10.0, 48.0)

	assert.True(t, box.Contains(NewCoordinate(11.0, 50.0)))
	assert.True(t, box.Contains(NewCoordinate(12.5, 52.0)), "edges are inclusive")
	assert.True(t, box.Contains(NewCoordinate(10.0, 48.0)), "edges are inclusive")
	assert.False(t, box.Contains(NewCoordinate(12.6, 50.0)))
	assert.False(t, box.Contains(NewCoordinate(11.0, 47.9)))
	assert.False(t, box.Contains(NewPosition(Ptr(11.0), nil, nil, nil, nil)))

	assert.True(t, box.ContainsBox(box))
	assert.True(t, box.ContainsBox(NewBoundingBoxFromCoordinates(12.0, 51.0, 11.0, 49.0)))
	assert.False(t, box.ContainsBox(NewBoundingBoxFromCoordinates(13.0, 51.0, 11.0, 49.0)))
}

func TestBoundingBoxCenter(t *testing.T) {
	center := NewBoundingBoxFromCoordinates(12.5, 52.0, 10.0, 48.0).Center()
	assert.Equal(t, 11.25, *center.Longitude())
	assert.Equal(t, 50.0, *center.Latitude())

	center = NewBoundingBoxFromCoordinates(10.0, 5.0, -10.0, -5.0).Center()
	assert.Equal(t, 0.0, *center.Longitude())
	assert.Equal(t, 0.0, *center.Latitude())

	early := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	box := NewBoundingBox(
		NewPosition(Ptr(12.0), Ptr(52.0), nil, Ptr(early.Add(2*time.Hour)), nil),
		NewPosition(Ptr(10.0), Ptr(48.0), nil, Ptr(early), nil),
	)
	center = box.Center()
	require.True(t, center.HasTime())
	assert.True(t, center.Time().Equal(early.Add(time.Hour)))
}

func TestBoundingBoxSquareSize(t *testing.T) {
	box := NewBoundingBoxFromCoordinates(12.5, 52.0, 10.0, 48.0)
	assert.Equal(t, 10.0, box.SquareSize())
}

func TestBoundingBoxString(t *testing.T) {
	box := NewBoundingBoxFromCoordinates(2, 1, 0, -1)
	assert.Equal(t, "BoundingBox[northEast=SimplePosition[longitude=2, latitude=1, description=<nil>], "+
		"southWest=SimplePosition[longitude=0, latitude=-1, description=<nil>]]", box.String())
}

func TestBoundingBoxWithIncompleteCorner(t *testing.T) {
	noLatitude := NewPosition(Ptr(12.5), nil, nil, nil, nil)
	box := NewBoundingBox(noLatitude, NewCoordinate(10.0, 48.0))

	assert.False(t, box.HasCoordinates())
	assert.False(t, box.Contains(NewCoordinate(11.0, 50.0)))
	assert.False(t, box.ContainsBox(NewBoundingBoxFromCoordinates(11.0, 50.0, 10.5, 49.0)))
	assert.Equal(t, 0.0, box.SquareSize())
	assert.False(t, box.Center().HasCoordinates())

	assert.True(t, NewBoundingBoxFromCoordinates(12.5, 52.0, 10.0, 48.0).HasCoordinates())
}
