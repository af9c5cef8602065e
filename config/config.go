package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to the env tag of every field.
const EnvPrefix = "CRAWLER_"

var (
	// ErrForecastExceedsLag is returned when the forecast distance is longer
	// than the lag which triggers a step. Such a walker would plant each foot
	// beyond the point at which it must immediately step again.
	ErrForecastExceedsLag = errors.New("forecast distance exceeds max leg lag")

	// ErrInvalid is returned for any other out-of-range setting.
	ErrInvalid = errors.New("invalid config")
)

// Config holds the settings of a walker. It is immutable once a walker has
// been constructed from it. Distances are in world units, angles in degrees,
// speeds in units per second.
type Config struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`

	// Layout
	LegsPerSide         int     `yaml:"legs_per_side" env:"LEGS_PER_SIDE"`
	LegDistanceFromBody float64 `yaml:"leg_distance_from_body" env:"LEG_DISTANCE_FROM_BODY"`
	AngleBetweenLegs    float64 `yaml:"angle_between_legs" env:"ANGLE_BETWEEN_LEGS"`

	// Terrain
	MaxClimbHeight  float64 `yaml:"max_climb_height" env:"MAX_CLIMB_HEIGHT"`
	MaximumDownstep float64 `yaml:"maximum_downstep" env:"MAXIMUM_DOWNSTEP"`

	// Stepping
	MaxLegLag                float64 `yaml:"max_leg_lag" env:"MAX_LEG_LAG"`
	MaxDistForLegToBeInRange float64 `yaml:"max_dist_for_leg_to_be_in_range" env:"MAX_DIST_FOR_LEG_TO_BE_IN_RANGE"`
	LegSpeed                 float64 `yaml:"leg_speed" env:"LEG_SPEED"`
	ForecastDistance         float64 `yaml:"forecast_distance" env:"FORECAST_DISTANCE"`
	StepHeight               float64 `yaml:"step_height" env:"STEP_HEIGHT"`
}

// Default returns the config of a six-legged walker about the size of a
// large dog.
func Default() Config {
	return Config{
		LogLevel:                 "info",
		LegsPerSide:              3,
		LegDistanceFromBody:      1.5,
		AngleBetweenLegs:         40,
		MaxClimbHeight:           1.0,
		MaximumDownstep:          1.0,
		MaxLegLag:                1.0,
		MaxDistForLegToBeInRange: 0.1,
		LegSpeed:                 6.0,
		ForecastDistance:         0.5,
		StepHeight:               0.4,
	}
}

// Validate returns an error if the config can't produce a working walker.
func (c Config) Validate() error {
	if c.ForecastDistance > c.MaxLegLag {
		return fmt.Errorf("%w: forecast_distance=%0.2f, max_leg_lag=%0.2f", ErrForecastExceedsLag, c.ForecastDistance, c.MaxLegLag)
	}

	if c.LegsPerSide < 1 {
		return fmt.Errorf("%w: legs_per_side must be at least 1, got %d", ErrInvalid, c.LegsPerSide)
	}

	if c.LegSpeed <= 0 {
		return fmt.Errorf("%w: leg_speed must be positive, got %0.2f", ErrInvalid, c.LegSpeed)
	}

	nonNegative := []struct {
		name string
		val  float64
	}{
		{"leg_distance_from_body", c.LegDistanceFromBody},
		{"max_climb_height", c.MaxClimbHeight},
		{"maximum_downstep", c.MaximumDownstep},
		{"max_leg_lag", c.MaxLegLag},
		{"max_dist_for_leg_to_be_in_range", c.MaxDistForLegToBeInRange},
		{"forecast_distance", c.ForecastDistance},
		{"step_height", c.StepHeight},
	}

	for _, f := range nonNegative {
		if f.val < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %0.2f", ErrInvalid, f.name, f.val)
		}
	}

	return nil
}

// Load reads the config from a YAML file, then applies any overrides from the
// environment, then validates it. If the file doesn't exist, the defaults
// are used.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
