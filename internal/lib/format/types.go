package format

// Quantity selects which configured fraction digit count applies to a value
type Quantity int

const (
	Position Quantity = iota
	Elevation
	Heading
	Speed
	Temperature
	Accuracy
)

// String returns the quantity name used in configuration keys
func (q Quantity) String() string {
	switch q {
	case Position:
		return "position"
	case Elevation:
		return "elevation"
	case Heading:
		return "heading"
	case Speed:
		return "speed"
	case Temperature:
		return "temperature"
	case Accuracy:
		return "accuracy"
	}
	return "unknown"
}

// Quantities lists every Quantity in declaration order
var Quantities = []Quantity{Position, Elevation, Heading, Speed, Temperature, Accuracy}

// ParseQuantity maps a configuration name back to its Quantity
func ParseQuantity(name string) (Quantity, bool) {
	for _, q := range Quantities {
		if q.String() == name {
			return q, true
		}
	}
	return 0, false
}

// Config holds the maximum fraction digits per quantity and the switch that
// enables rounding to them
type Config struct {
	PositionMaximumFractionDigits    int
	ElevationMaximumFractionDigits   int
	HeadingMaximumFractionDigits     int
	SpeedMaximumFractionDigits       int
	TemperatureMaximumFractionDigits int
	AccuracyMaximumFractionDigits    int

	ReduceDecimalPlacesToReasonablePrecision bool
}

// DefaultConfig returns the default fraction digits
func DefaultConfig() Config {
	return Config{
		PositionMaximumFractionDigits:            7,
		ElevationMaximumFractionDigits:           1,
		HeadingMaximumFractionDigits:             1,
		SpeedMaximumFractionDigits:               1,
		TemperatureMaximumFractionDigits:         1,
		AccuracyMaximumFractionDigits:            6,
		ReduceDecimalPlacesToReasonablePrecision: true,
	}
}

// MaximumFractionDigits returns the configured digit count for q
func (c Config) MaximumFractionDigits(q Quantity) int {
	switch q {
	case Position:
		return c.PositionMaximumFractionDigits
	case Elevation:
		return c.ElevationMaximumFractionDigits
	case Heading:
		return c.HeadingMaximumFractionDigits
	case Speed:
		return c.SpeedMaximumFractionDigits
	case Temperature:
		return c.TemperatureMaximumFractionDigits
	case Accuracy:
		return c.AccuracyMaximumFractionDigits
	}
	panic("format: unknown quantity")
}
