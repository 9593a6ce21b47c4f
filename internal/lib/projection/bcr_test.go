package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBcrAltitudeToElevation(t *testing.T) {
	assert.Equal(t, -0.09, BcrAltitudeToElevation(210945415705))
	assert.Equal(t, 6.0, BcrAltitudeToElevation(210945415755))
	assert.Equal(t, 146.0, BcrAltitudeToElevation(210945416903))
}

func TestElevationToBcrAltitude(t *testing.T) {
	assert.Equal(t, int64(210945415755), ElevationToBcrAltitude(6.0))
	assert.Equal(t, int64(210945416903), ElevationToBcrAltitude(146.0))
	assert.Equal(t, int64(210945415705), ElevationToBcrAltitude(0.0))
	assert.Equal(t, int64(210945416525), ElevationToBcrAltitude(100.0))
}

func TestBcrCalibrationPointsInvert(t *testing.T) {
	for _, elevation := range []float64{6.0, 146.0} {
		assert.Equal(t, elevation, BcrAltitudeToElevation(ElevationToBcrAltitude(elevation)))
	}
	assert.Equal(t, 99.91, BcrAltitudeToElevation(ElevationToBcrAltitude(100.0)))
}
