package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/dpup/navcore/internal/lib/aggregation"
	"github.com/dpup/navcore/internal/lib/datum"
	"github.com/dpup/navcore/internal/lib/export"
	"github.com/dpup/navcore/internal/lib/format"
	"github.com/dpup/navcore/internal/lib/geo"
	"github.com/dpup/navcore/internal/lib/geodesy"
	"github.com/dpup/navcore/internal/lib/projection"
	"github.com/dpup/navcore/internal/lib/track"
	"github.com/dpup/navcore/internal/lib/units"
)

func handleBearing(_ context.Context, a *app) error {
	fs := flag.NewFlagSet("bearing", flag.ExitOnError)
	lon1 := fs.Float64("lon1", 0, "Longitude of first point")
	lat1 := fs.Float64("lat1", 0, "Latitude of first point")
	lon2 := fs.Float64("lon2", 0, "Longitude of second point")
	lat2 := fs.Float64("lat2", 0, "Latitude of second point")
	checked := fs.Bool("checked", false, "Fail instead of returning zero when the solver does not converge")

	fs.Parse(a.args)

	var bearing geodesy.Bearing
	if *checked {
		var err error
		if bearing, err = geodesy.SolveChecked(*lon1, *lat1, *lon2, *lat2); err != nil {
			return err
		}
	} else {
		bearing = geodesy.Solve(*lon1, *lat1, *lon2, *lat2)
	}

	fmt.Printf("Bearing between points:\n")
	fmt.Printf("  Point 1: (%s, %s)\n", a.value(format.Position, *lon1), a.value(format.Position, *lat1))
	fmt.Printf("  Point 2: (%s, %s)\n", a.value(format.Position, *lon2), a.value(format.Position, *lat2))
	fmt.Printf("  Azimuth: %s\n", a.value(format.Heading, bearing.Azimuth))
	fmt.Printf("  Back azimuth: %s\n", a.value(format.Heading, bearing.BackAzimuth))
	fmt.Printf("  Distance: %.3f meters (%.2f km, %.2f miles, %.2f nautical miles)\n",
		bearing.Distance, bearing.Distance/units.MetersOfAKilometer,
		units.KilometersToStatuteMiles(bearing.Distance/units.MetersOfAKilometer),
		units.KilometersToNauticalMiles(bearing.Distance/units.MetersOfAKilometer))
	return nil
}

func handleMercator(_ context.Context, a *app) error {
	fs := flag.NewFlagSet("mercator", flag.ExitOnError)
	inverse := fs.Bool("inverse", false, "Convert Mercator units back to WGS84")
	lon := fs.Float64("lon", 0, "Longitude in degrees")
	lat := fs.Float64("lat", 0, "Latitude in degrees")
	x := fs.Int64("x", 0, "Mercator x")
	y := fs.Int64("y", 0, "Mercator y")

	fs.Parse(a.args)

	if *inverse {
		fmt.Printf("WGS84: (%s, %s)\n",
			a.value(format.Position, projection.MercatorXToLongitude(*x)),
			a.value(format.Position, projection.MercatorYToLatitude(*y)))
		return nil
	}
	fmt.Printf("Mercator: x=%d y=%d\n", projection.LongitudeToMercatorX(*lon), projection.LatitudeToMercatorY(*lat))
	return nil
}

func handleGaussKrueger(_ context.Context, a *app) error {
	fs := flag.NewFlagSet("gauss-krueger", flag.ExitOnError)
	inverse := fs.Bool("inverse", false, "Convert WGS84 to Gauss-Krueger instead")
	right := fs.Float64("right", 0, "Gauss-Krueger right value (strip in the millions digit)")
	height := fs.Float64("height", 0, "Gauss-Krueger height value")
	lon := fs.Float64("lon", 0, "Longitude in degrees")
	lat := fs.Float64("lat", 0, "Latitude in degrees")

	fs.Parse(a.args)

	if *inverse {
		r, h := projection.Wgs84ToGaussKrueger(*lon, *lat)
		fmt.Printf("Gauss-Krueger: right=%.3f height=%.3f\n", r, h)
		return nil
	}
	if *right == 0 && *height == 0 {
		fmt.Println("Example usage:")
		fmt.Println("  navcalc gauss-krueger --right 3500000 --height 5400000")
		fmt.Println("  navcalc gauss-krueger --inverse --lon 8.4 --lat 49.0")
		os.Exit(1)
	}
	longitude, latitude := projection.GaussKruegerToWgs84(*right, *height)
	fmt.Printf("WGS84: (%s, %s)\n", a.value(format.Position, longitude), a.value(format.Position, latitude))
	return nil
}

func handleBcr(_ context.Context, a *app) error {
	fs := flag.NewFlagSet("bcr", flag.ExitOnError)
	altitude := fs.Int64("altitude", 0, "BCR altitude units")
	elevation := fs.Float64("elevation", 0, "Elevation in meters")
	toAltitude := fs.Bool("to-altitude", false, "Convert --elevation to BCR altitude units")

	fs.Parse(a.args)

	if *toAltitude {
		fmt.Printf("BCR altitude: %d\n", projection.ElevationToBcrAltitude(*elevation))
		return nil
	}
	fmt.Printf("Elevation: %s meters\n", a.value(format.Elevation, projection.BcrAltitudeToElevation(*altitude)))
	return nil
}

func handleGcj02(_ context.Context, a *app) error {
	fs := flag.NewFlagSet("gcj02", flag.ExitOnError)
	lon := fs.Float64("lon", 0, "Longitude in degrees")
	lat := fs.Float64("lat", 0, "Latitude in degrees")
	inverse := fs.Bool("inverse", false, "Convert GCJ-02 back to WGS84")
	threshold := fs.Float64("threshold", 0, "Iterate the inverse until it moves less than this many degrees")

	fs.Parse(a.args)

	if !datum.InRegion(*lon, *lat) {
		a.logger.Info("Coordinates outside the offset region, returned unchanged",
			zap.Float64("longitude", *lon), zap.Float64("latitude", *lat))
	}

	var longitude, latitude float64
	switch {
	case *inverse && *threshold > 0:
		longitude, latitude = datum.Gcj02ToWgs84Iterative(*lon, *lat, *threshold, 30)
	case *inverse:
		longitude, latitude = datum.Gcj02ToWgs84(*lon, *lat)
	default:
		longitude, latitude = datum.Wgs84ToGcj02(*lon, *lat)
	}
	fmt.Printf("Result: (%s, %s)\n", a.value(format.Position, longitude), a.value(format.Position, latitude))
	return nil
}

func handleDdmm(_ context.Context, a *app) error {
	fs := flag.NewFlagSet("ddmm", flag.ExitOnError)
	degrees := fs.Float64("degrees", 0, "Decimal degrees")
	ddmm := fs.Float64("ddmm", 0, "Packed DDMM.mmmm value")
	decode := fs.Bool("decode", false, "Convert --ddmm to decimal degrees")

	fs.Parse(a.args)

	if *decode {
		fmt.Printf("Degrees: %s\n", a.value(format.Position, units.DdmmToDegrees(*ddmm)))
		return nil
	}
	longitude, east := units.LongitudeToNmea(*degrees)
	latitude, north := units.LatitudeToNmea(*degrees)
	fmt.Printf("DDMM.mmmm: %s\n", format.Exact(geo.Ptr(units.DegreesToDdmm(*degrees)), 4))
	fmt.Printf("NMEA as longitude: %s %s\n", format.Exact(&longitude, 4), east)
	fmt.Printf("NMEA as latitude: %s %s\n", format.Exact(&latitude, 4), north)
	return nil
}

func handleBoundingBox(_ context.Context, a *app) error {
	fs := flag.NewFlagSet("bbox", flag.ExitOnError)
	polylineStr := fs.String("polyline", "", "Encoded polyline string")

	fs.Parse(a.args)

	positions, err := a.decodePolyline(*polylineStr)
	if err != nil {
		return err
	}
	box := geo.NewBoundingBoxFromPositions(positions)
	center := box.Center()

	fmt.Printf("Bounding box of %d positions:\n", len(positions))
	fmt.Printf("  North east: (%s, %s)\n",
		format.String(a.format, format.Position, box.NorthEast.Longitude()),
		format.String(a.format, format.Position, box.NorthEast.Latitude()))
	fmt.Printf("  South west: (%s, %s)\n",
		format.String(a.format, format.Position, box.SouthWest.Longitude()),
		format.String(a.format, format.Position, box.SouthWest.Latitude()))
	fmt.Printf("  Center: (%s, %s)\n",
		format.String(a.format, format.Position, center.Longitude()),
		format.String(a.format, format.Position, center.Latitude()))
	fmt.Printf("  Square size: %g\n", box.SquareSize())
	return nil
}

func handleSimplify(_ context.Context, a *app) error {
	fs := flag.NewFlagSet("simplify", flag.ExitOnError)
	polylineStr := fs.String("polyline", "", "Encoded polyline string")
	threshold := fs.Float64("threshold", a.cfg.Simplify.ThresholdMeters, "Threshold distance in meters")

	fs.Parse(a.args)

	positions, err := a.decodePolyline(*polylineStr)
	if err != nil {
		return err
	}
	indices := track.SignificantPositions(positions, *threshold)

	kept := make([]geo.Position, 0, len(indices))
	for _, index := range indices {
		kept = append(kept, positions[index])
	}

	fmt.Printf("Simplified %d positions to %d (threshold %.1f meters):\n", len(positions), len(indices), *threshold)
	fmt.Printf("  Indices: %v\n", indices)
	fmt.Printf("  Polyline: %s\n", geo.EncodePolyline(kept))
	return nil
}

func handleAggregate(ctx context.Context, a *app) error {
	fs := flag.NewFlagSet("aggregate", flag.ExitOnError)
	polylineStr := fs.String("polyline", "", "Encoded polyline string")
	speed := fs.Float64("speed", 0, "Assign times assuming this constant speed in km/h")

	fs.Parse(a.args)

	positions, err := a.decodePolyline(*polylineStr)
	if err != nil {
		return err
	}
	if *speed > 0 {
		assignTimes(positions, units.KmhToMs(*speed), time.Now())
	}

	aggregator := aggregation.NewAggregator(aggregation.WithLogger(a.logger))
	unregister := aggregator.AddListener(func(first, last int) {
		a.logger.Debug("Aggregation changed", zap.Int("first", first), zap.Int("last", last))
	})
	defer unregister()

	if len(positions) > 1 {
		if err := aggregator.Apply(track.Segments(positions)); err != nil {
			return err
		}
	}

	length, err := track.LengthWithProgress(ctx, positions, 100, func(partial aggregation.DistanceAndTime) {
		a.logger.Debug("Length progress", zap.Stringer("partial", partial))
	})
	if err != nil {
		return err
	}

	highest := aggregator.HighestIndex()
	distances := aggregator.DistancesFromStart(0, highest)
	times := aggregator.TimesFromStart(0, highest)

	fmt.Printf("Cumulative distance and time along %d positions:\n", len(positions))
	for i := range distances {
		fmt.Printf("  %3d: %12.3f m %10d ms\n", i, distances[i], times[i])
	}
	total := aggregator.TotalDistanceAndTime()
	fmt.Printf("  Total: %.3f meters in %s\n", total.DistanceOrZero(), time.Duration(total.TimeOrZero())*time.Millisecond)
	fmt.Printf("  Track length: %.3f meters in %s\n", length.DistanceOrZero(), time.Duration(length.TimeOrZero())*time.Millisecond)
	return nil
}

// assignTimes spaces the positions in time as if traveled at metersPerSecond
func assignTimes(positions []*geo.SimplePosition, metersPerSecond float64, start time.Time) {
	at := start
	for i, p := range positions {
		if i > 0 {
			if d, ok := positions[i-1].DistanceTo(p); ok {
				at = at.Add(time.Duration(d / metersPerSecond * float64(time.Second)))
			}
		}
		t := at
		p.SetTime(&t)
	}
}

func handleExport(_ context.Context, a *app) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	polylineStr := fs.String("polyline", "", "Encoded polyline string")
	output := fs.String("format", "geojson", "Output format: kml or geojson")
	name := fs.String("name", "track", "Name of the exported track")
	withBox := fs.Bool("bbox", true, "Include the bounding box")

	fs.Parse(a.args)

	positions, err := a.decodePolyline(*polylineStr)
	if err != nil {
		return err
	}
	var box *geo.BoundingBox
	if *withBox {
		box = geo.NewBoundingBoxFromPositions(positions)
	}

	var data []byte
	switch *output {
	case "kml":
		data, err = export.KML(*name, positions, box)
	case "geojson":
		data, err = export.GeoJSON(*name, positions, box)
	default:
		return fmt.Errorf("unknown export format %q", *output)
	}
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(append(data, '\n'))
	return err
}

func handleFormat(_ context.Context, a *app) error {
	fs := flag.NewFlagSet("format", flag.ExitOnError)
	quantityName := fs.String("quantity", "position", "Quantity: position, elevation, heading, speed, temperature or accuracy")
	value := fs.Float64("value", 0, "Value to format")
	exact := fs.Int("exact", -1, "Render exactly this many fraction digits instead")

	fs.Parse(a.args)

	if *exact >= 0 {
		fmt.Println(format.Exact(value, *exact))
		return nil
	}
	q, ok := format.ParseQuantity(*quantityName)
	if !ok {
		return errors.New("unknown quantity " + *quantityName)
	}
	fmt.Printf("String: %s\n", format.String(a.format, q, value))
	if d := format.Decimal(a.format, q, value); d != nil {
		fmt.Printf("Decimal: %s\n", d.String())
	}
	return nil
}

func handleConfig(_ context.Context, a *app) error {
	data, err := a.cfg.YAML()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
