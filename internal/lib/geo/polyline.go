package geo

import (
	"errors"
	"fmt"

	"github.com/twpayne/go-polyline"
)

// ErrInvalidPolyline is returned for encoded polylines that cannot be decoded
var ErrInvalidPolyline = errors.New("invalid encoded polyline")

// DecodePolyline decodes a Google encoded polyline into positions
func DecodePolyline(encoded string) ([]*SimplePosition, error) {
	if encoded == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidPolyline)
	}

	coords, rest, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolyline, err)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrInvalidPolyline, len(rest))
	}

	positions := make([]*SimplePosition, len(coords))
	for i, coord := range coords {
		if !isValidCoordinate(coord[1], coord[0]) {
			return nil, fmt.Errorf("%w: coordinate %d out of range", ErrInvalidPolyline, i)
		}
		positions[i] = NewCoordinate(coord[1], coord[0])
	}
	return positions, nil
}

// EncodePolyline encodes the positions that have coordinates. Other
// positions are skipped.
func EncodePolyline(positions []Position) string {
	coords := make([][]float64, 0, len(positions))
	for _, p := range positions {
		if !p.HasCoordinates() {
			continue
		}
		coords = append(coords, []float64{*p.Latitude(), *p.Longitude()})
	}
	return string(polyline.EncodeCoords(coords))
}

func isValidCoordinate(longitude, latitude float64) bool {
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}
