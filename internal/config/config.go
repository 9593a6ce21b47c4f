package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/dpup/navcore/internal/lib/format"
)

// EnvPrefix precedes every environment override. Nested keys are separated by
// a double underscore, e.g. NAVCORE__FORMAT__POSITION_MAXIMUM_FRACTION_DIGITS.
const EnvPrefix = "NAVCORE__"

// Config holds all configuration for navcore tooling
type Config struct {
	Format   FormatConfig   `yaml:"format"`
	Logging  LoggingConfig  `yaml:"logging"`
	Simplify SimplifyConfig `yaml:"simplify"`
}

// FormatConfig holds the fraction digits used when rendering each quantity
type FormatConfig struct {
	PositionMaximumFractionDigits    int  `yaml:"position_maximum_fraction_digits"`
	ElevationMaximumFractionDigits   int  `yaml:"elevation_maximum_fraction_digits"`
	HeadingMaximumFractionDigits     int  `yaml:"heading_maximum_fraction_digits"`
	SpeedMaximumFractionDigits       int  `yaml:"speed_maximum_fraction_digits"`
	TemperatureMaximumFractionDigits int  `yaml:"temperature_maximum_fraction_digits"`
	AccuracyMaximumFractionDigits    int  `yaml:"accuracy_maximum_fraction_digits"`
	ReducePrecision                  bool `yaml:"reduce_decimal_places_to_reasonable_precision"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// SimplifyConfig holds track simplification settings
type SimplifyConfig struct {
	ThresholdMeters float64 `yaml:"threshold_meters"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	f := format.DefaultConfig()
	return &Config{
		Format: FormatConfig{
			PositionMaximumFractionDigits:    f.PositionMaximumFractionDigits,
			ElevationMaximumFractionDigits:   f.ElevationMaximumFractionDigits,
			HeadingMaximumFractionDigits:     f.HeadingMaximumFractionDigits,
			SpeedMaximumFractionDigits:       f.SpeedMaximumFractionDigits,
			TemperatureMaximumFractionDigits: f.TemperatureMaximumFractionDigits,
			AccuracyMaximumFractionDigits:    f.AccuracyMaximumFractionDigits,
			ReducePrecision:                  f.ReduceDecimalPlacesToReasonablePrecision,
		},
		Logging: LoggingConfig{
			Level:       "info",
			Development: false,
		},
		Simplify: SimplifyConfig{
			ThresholdMeters: 5.0,
		},
	}
}

// Load layers the defaults, an optional YAML file and NAVCORE__ environment
// variables, in that order. An empty path skips the file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultValues(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func defaultValues() map[string]interface{} {
	d := DefaultConfig()
	return map[string]interface{}{
		"format.position_maximum_fraction_digits":              d.Format.PositionMaximumFractionDigits,
		"format.elevation_maximum_fraction_digits":             d.Format.ElevationMaximumFractionDigits,
		"format.heading_maximum_fraction_digits":               d.Format.HeadingMaximumFractionDigits,
		"format.speed_maximum_fraction_digits":                 d.Format.SpeedMaximumFractionDigits,
		"format.temperature_maximum_fraction_digits":           d.Format.TemperatureMaximumFractionDigits,
		"format.accuracy_maximum_fraction_digits":              d.Format.AccuracyMaximumFractionDigits,
		"format.reduce_decimal_places_to_reasonable_precision": d.Format.ReducePrecision,
		"logging.level":                                        d.Logging.Level,
		"logging.development":                                  d.Logging.Development,
		"simplify.threshold_meters":                            d.Simplify.ThresholdMeters,
	}
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	f := c.Format.Formatter()
	for _, q := range format.Quantities {
		if n := f.MaximumFractionDigits(q); n < 0 || n > format.MaximumRenderedFractionDigits {
			errs = append(errs, fmt.Errorf("format.%s_maximum_fraction_digits must be between 0 and %d, got %d",
				q, format.MaximumRenderedFractionDigits, n))
		}
	}

	if !logLevels[c.Logging.Level] {
		errs = append(errs, fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level))
	}

	if c.Simplify.ThresholdMeters < 0 {
		errs = append(errs, fmt.Errorf("simplify.threshold_meters must not be negative, got %v", c.Simplify.ThresholdMeters))
	}

	return errors.Join(errs...)
}

// Formatter converts the section into the value threaded through format calls.
func (f FormatConfig) Formatter() format.Config {
	return format.Config{
		PositionMaximumFractionDigits:            f.PositionMaximumFractionDigits,
		ElevationMaximumFractionDigits:           f.ElevationMaximumFractionDigits,
		HeadingMaximumFractionDigits:             f.HeadingMaximumFractionDigits,
		SpeedMaximumFractionDigits:               f.SpeedMaximumFractionDigits,
		TemperatureMaximumFractionDigits:         f.TemperatureMaximumFractionDigits,
		AccuracyMaximumFractionDigits:            f.AccuracyMaximumFractionDigits,
		ReduceDecimalPlacesToReasonablePrecision: f.ReducePrecision,
	}
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	return yamlv3.Marshal(c)
}
