package geodesy

import "errors"

// WGS-84 ellipsoid parameters
const (
	EquatorialRadius = 6378137.0
	Flattening       = 1.0 / 298.257223563
)

const (
	// convergenceEpsilon bounds the change of the longitude auxiliary between
	// two iterations, in radians.
	convergenceEpsilon = 0.5e-13
	// maxIterations caps the fixed-point loop for near-antipodal inputs.
	maxIterations = 100000
)

// ErrNotConverged is returned by SolveChecked when the iteration cap is reached.
var ErrNotConverged = errors.New("geodesic inverse solution did not converge")

// Bearing is the result of the inverse geodesic problem between two points
type Bearing struct {
	// Azimuth from the first to the second point in degrees, 0 = north,
	// clockwise, within [0, 360)
	Azimuth float64 `json:"azimuth"`
	// BackAzimuth from the second point back to the first, same convention
	BackAzimuth float64 `json:"back_azimuth"`
	// Distance in meters with millimeter precision
	Distance float64 `json:"distance_meters"`
}

// IsZero reports whether b is the result for identical or unsolvable points
func (b Bearing) IsZero() bool {
	return b == Bearing{}
}
