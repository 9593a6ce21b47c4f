// Package export renders positions and bounding boxes as KML and GeoJSON.
package export

import (
	"bytes"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/twpayne/go-kml/v2"

	"github.com/dpup/navcore/internal/lib/geo"
)

// Bound converts a bounding box into an orb.Bound. A box without coordinates
// yields the zero bound.
func Bound(box *geo.BoundingBox) orb.Bound {
	if box == nil || !box.HasCoordinates() {
		return orb.Bound{}
	}
	return orb.Bound{
		Min: orb.Point{*box.SouthWest.Longitude(), *box.SouthWest.Latitude()},
		Max: orb.Point{*box.NorthEast.Longitude(), *box.NorthEast.Latitude()},
	}
}

// KML renders the positions with coordinates as a LineString placemark and,
// when box has coordinates, the box as a Polygon placemark.
func KML[P geo.Position](name string, positions []P, box *geo.BoundingBox) ([]byte, error) {
	var coordinates []kml.Coordinate
	for _, p := range positions {
		if !p.HasCoordinates() {
			continue
		}
		coordinate := kml.Coordinate{Lon: *p.Longitude(), Lat: *p.Latitude()}
		if p.Elevation() != nil {
			coordinate.Alt = *p.Elevation()
		}
		coordinates = append(coordinates, coordinate)
	}

	children := []kml.Element{
		kml.Name(name),
		kml.Placemark(
			kml.Name(name),
			kml.LineString(
				kml.Tessellate(true),
				kml.Coordinates(coordinates...),
			),
		),
	}
	if box != nil && box.HasCoordinates() {
		ring := Bound(box).ToRing()
		corners := make([]kml.Coordinate, len(ring))
		for i, point := range ring {
			corners[i] = kml.Coordinate{Lon: point.Lon(), Lat: point.Lat()}
		}
		children = append(children, kml.Placemark(
			kml.Name(name+" bounds"),
			kml.Polygon(
				kml.OuterBoundaryIs(
					kml.LinearRing(kml.Coordinates(corners...)),
				),
			),
		))
	}

	var buf bytes.Buffer
	if err := kml.KML(kml.Document(children...)).WriteIndent(&buf, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to render KML: %w", err)
	}
	return buf.Bytes(), nil
}

// GeoJSON renders the positions with coordinates as a LineString feature and,
// when box has coordinates, the box as a Polygon feature with a bbox member.
func GeoJSON[P geo.Position](name string, positions []P, box *geo.BoundingBox) ([]byte, error) {
	line := make(orb.LineString, 0, len(positions))
	for _, p := range positions {
		if !p.HasCoordinates() {
			continue
		}
		line = append(line, orb.Point{*p.Longitude(), *p.Latitude()})
	}

	fc := geojson.NewFeatureCollection()
	track := geojson.NewFeature(line)
	track.Properties["name"] = name
	fc.Append(track)

	if box != nil && box.HasCoordinates() {
		bound := Bound(box)
		area := geojson.NewFeature(bound.ToPolygon())
		area.Properties["name"] = name + " bounds"
		area.BBox = geojson.NewBBox(bound)
		fc.Append(area)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to render GeoJSON: %w", err)
	}
	return data, nil
}
