package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/dpup/navcore/internal/config"
	"github.com/dpup/navcore/internal/lib/format"
	"github.com/dpup/navcore/internal/lib/geo"
	"github.com/dpup/navcore/internal/logging"
)

// app carries what every command needs
type app struct {
	cfg    *config.Config
	format format.Config
	logger *zap.Logger
	args   []string
}

type command func(ctx context.Context, a *app) error

var commands = map[string]command{
	"bearing":       handleBearing,
	"mercator":      handleMercator,
	"gauss-krueger": handleGaussKrueger,
	"bcr":           handleBcr,
	"gcj02":         handleGcj02,
	"ddmm":          handleDdmm,
	"bbox":          handleBoundingBox,
	"simplify":      handleSimplify,
	"aggregate":     handleAggregate,
	"export":        handleExport,
	"format":        handleFormat,
	"config":        handleConfig,
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML configuration file")
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	name := flag.Arg(0)
	if name == "help" {
		printUsage()
		return
	}
	handler, ok := commands[name]
	if !ok {
		fmt.Printf("Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{
		cfg:    cfg,
		format: cfg.Format.Formatter(),
		logger: logger,
		args:   flag.Args()[1:],
	}
	if err := handler(ctx, a); err != nil {
		logger.Error("Command failed", zap.String("command", name), zap.Error(err))
		stop()
		os.Exit(1)
	}
}

// value renders v with the configured digits for q
func (a *app) value(q format.Quantity, v float64) string {
	return format.String(a.format, q, &v)
}

func (a *app) decodePolyline(encoded string) ([]*geo.SimplePosition, error) {
	if encoded == "" {
		return nil, fmt.Errorf("--polyline is required")
	}
	positions, err := geo.DecodePolyline(encoded)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Decoded polyline", zap.Int("positions", len(positions)))
	return positions, nil
}

func printUsage() {
	fmt.Println("Navigation calculation utilities")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  navcalc [--config file.yaml] <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  bearing        Ellipsoidal distance and azimuths between two points")
	fmt.Println("  mercator       Convert between WGS84 and spherical Mercator units")
	fmt.Println("  gauss-krueger  Convert between WGS84 and Gauss-Krueger grid coordinates")
	fmt.Println("  bcr            Convert between BCR altitude units and elevation")
	fmt.Println("  gcj02          Apply or remove the GCJ-02 offset")
	fmt.Println("  ddmm           Convert between decimal degrees and DDMM.mmmm")
	fmt.Println("  bbox           Bounding box of an encoded polyline")
	fmt.Println("  simplify       Douglas-Peucker simplification of an encoded polyline")
	fmt.Println("  aggregate      Cumulative distances along an encoded polyline")
	fmt.Println("  export         Render an encoded polyline as KML or GeoJSON")
	fmt.Println("  format         Format a value for a quantity")
	fmt.Println("  config         Print the effective configuration")
	fmt.Println("  help           Show this help message")
	fmt.Println()
	fmt.Println("Environment variables prefixed with NAVCORE__ override configuration keys,")
	fmt.Println("for example NAVCORE__LOGGING__LEVEL=debug.")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  navcalc bearing --lon1 13.405 --lat1 52.52 --lon2 2.3522 --lat2 48.8566")
	fmt.Println("  navcalc gauss-krueger --right 3500000 --height 5400000")
	fmt.Println("  navcalc simplify --polyline \"_p~iF~ps|U_ulLnnqC_mqNvxq`@\" --threshold 1000")
}
