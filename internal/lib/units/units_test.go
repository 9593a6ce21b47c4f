package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearConversions(t *testing.T) {
	assert.InDelta(t, 3.048, FeetToMeters(10), 1e-12)
	assert.InDelta(t, 10.0, MetersToFeet(3.048), 1e-12)
	assert.InDelta(t, 6.2137119223733395, KilometersToStatuteMiles(10), 1e-12)
	assert.InDelta(t, 16.09344, StatuteMilesToKilometers(10), 1e-12)
	assert.InDelta(t, 18.520043, NauticalMilesToKilometers(10), 1e-12)
	assert.InDelta(t, 10.0, KilometersToNauticalMiles(18.520043), 1e-12)
}

func TestSpeedConversions(t *testing.T) {
	assert.InDelta(t, 3.6, MsToKmh(1.0), 1e-12)
	assert.InDelta(t, 20.0, KmhToMs(72.0), 1e-12)
	assert.InDelta(t, 42.0, KmhToMs(MsToKmh(42.0)), 1e-12)
}

func TestDegreesToDdmm(t *testing.T) {
	tests := []struct {
		degrees float64
		ddmm    float64
	}{
		{48.6239566, 4837.4374},
		{9.0567266, 903.4036},
		{50.79276, 5047.5657},
		{9.45327, 927.1962},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.ddmm, DegreesToDdmm(tt.degrees), 1e-9, "degrees %v", tt.degrees)
	}
}

func TestDdmmToDegrees(t *testing.T) {
	assert.InDelta(t, 48.6239566, DdmmToDegrees(4837.4374), 1e-9)
	assert.InDelta(t, 9.0557233, DdmmToDegrees(903.3434), 1e-9)
	// the fraction floors away from zero for negative values
	assert.InDelta(t, -48.6239567, DdmmToDegrees(-4837.4374), 1e-9)
}

func TestNmea(t *testing.T) {
	value, orientation := LongitudeToNmea(10.032)
	assert.InDelta(t, 1001.92, value, 1e-9)
	assert.Equal(t, East, orientation)

	value, orientation = LatitudeToNmea(-53.56948)
	assert.InDelta(t, 5334.1688, value, 1e-9)
	assert.Equal(t, South, orientation)

	assert.InDelta(t, 10.032, NmeaToDegrees(1001.92, East), 1e-10)
	assert.InDelta(t, -53.56948, NmeaToDegrees(5334.1688, South), 1e-10)
	assert.InDelta(t, -10.032, NmeaToDegrees(1001.92, West), 1e-10)
}

func TestFractionRounding(t *testing.T) {
	assert.Equal(t, 1.24, RoundFraction(1.235, 2))
	assert.Equal(t, -1.0, RoundFraction(-1.5, 0))
	assert.Equal(t, 2.0, RoundFraction(1.5, 0))
	assert.Equal(t, -0.09, CeilFraction(-0.0976, 2))
	assert.Equal(t, 0.12, FloorFraction(0.1299, 2))
}
