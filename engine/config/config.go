// Package config loads steering tuning from YAML and applies it to
// behaviour instances.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the file name of the embedded defaults.
const DefaultFile = "steering.yaml"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

//go:embed steering.yaml
var defaultYAML []byte

type Config struct {
	Logging     LoggingConfig     `yaml:"logging"`
	Simulation  SimulationConfig  `yaml:"simulation"`
	Seek        SeekConfig        `yaml:"seek"`
	Arrive      ArriveConfig      `yaml:"arrive"`
	Pursue      PursueConfig      `yaml:"pursue"`
	FaceHeading FaceHeadingConfig `yaml:"face_heading"`
	Wander      WanderConfig      `yaml:"wander"`
	AvoidWalls  AvoidWallsConfig  `yaml:"avoid_walls"`
	Walls       []WallConfig      `yaml:"walls"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type SimulationConfig struct {
	TickRate float64 `yaml:"tick_rate"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
}

type SeekConfig struct {
	CloseEnoughDistance float64 `yaml:"close_enough_distance"`
}

type ArriveConfig struct {
	BrakingDistance     float64 `yaml:"braking_distance"`
	CloseEnoughDistance float64 `yaml:"close_enough_distance"`
	NoSlow              bool    `yaml:"no_slow"`
	NoStop              bool    `yaml:"no_stop"`
	NeverCompletes      bool    `yaml:"never_completes"`
}

type PursueConfig struct {
	MaxPredict          float64 `yaml:"max_predict"`
	CloseEnoughDistance float64 `yaml:"close_enough_distance"`
	NeverCompletes      bool    `yaml:"never_completes"`
}

type FaceHeadingConfig struct {
	SlowingAngleDegrees     float64 `yaml:"slowing_angle_degrees"`
	CloseEnoughAngleDegrees float64 `yaml:"close_enough_angle_degrees"`
}

type WanderConfig struct {
	CircleRate          float64 `yaml:"circle_rate"`
	CircleRadius        float64 `yaml:"circle_radius"`
	CircleOffset        float64 `yaml:"circle_offset"`
	MaximumSlideDegrees float64 `yaml:"maximum_slide_degrees"`
	CloseEnoughDistance float64 `yaml:"close_enough_distance"`
	NeverCompletes      bool    `yaml:"never_completes"`
}

type AvoidWallsConfig struct {
	SteeringMultiplier  float64   `yaml:"steering_multiplier"`
	ForceMultiplier     float64   `yaml:"force_multiplier"`
	LookAheadMultiplier float64   `yaml:"look_ahead_multiplier"`
	FeelerSpreadDegrees float64   `yaml:"feeler_spread_degrees"`
	ShowVisualizer      bool      `yaml:"show_visualizer"`
	ShowOnlyWhenBlocked bool      `yaml:"show_only_when_blocked"`
	ClearColor          YAMLColor `yaml:"clear_color"`
	BlockedColor        YAMLColor `yaml:"blocked_color"`
}

type WallConfig struct {
	A      [2]float64 `yaml:"a"`
	B      [2]float64 `yaml:"b"`
	Radius float64    `yaml:"radius"`
}

// Default returns the embedded configuration.
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal embedded %s: %w", DefaultFile, err)
	}
	return &cfg, nil
}

// Parse overlays data on the embedded defaults and validates the result.
// Keys missing from data keep their default values.
func Parse(data []byte) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads path from disk and overlays it on the defaults. An empty path
// or a missing file yields the embedded defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default()
	}
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values no behaviour can recover from. Non-positive
// braking distances, horizons and radii are allowed; behaviours clamp them.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value float64
		min   float64
	}{
		{"simulation.tick_rate", c.Simulation.TickRate, 1},
		{"simulation.width", c.Simulation.Width, 1},
		{"simulation.height", c.Simulation.Height, 1},
		{"seek.close_enough_distance", c.Seek.CloseEnoughDistance, 0},
		{"arrive.close_enough_distance", c.Arrive.CloseEnoughDistance, 0},
		{"pursue.close_enough_distance", c.Pursue.CloseEnoughDistance, 0},
		{"wander.close_enough_distance", c.Wander.CloseEnoughDistance, 0},
		{"avoid_walls.steering_multiplier", c.AvoidWalls.SteeringMultiplier, 0},
		{"avoid_walls.force_multiplier", c.AvoidWalls.ForceMultiplier, 0},
		{"avoid_walls.look_ahead_multiplier", c.AvoidWalls.LookAheadMultiplier, 0},
	}
	for _, chk := range checks {
		if math.IsNaN(chk.value) || math.IsInf(chk.value, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidConfig, chk.name)
		}
		if chk.value < chk.min {
			return fmt.Errorf("%w: %s must be >= %g, got %g", ErrInvalidConfig, chk.name, chk.min, chk.value)
		}
	}
	floats := []struct {
		name  string
		value float64
	}{
		{"arrive.braking_distance", c.Arrive.BrakingDistance},
		{"pursue.max_predict", c.Pursue.MaxPredict},
		{"wander.circle_rate", c.Wander.CircleRate},
		{"wander.circle_radius", c.Wander.CircleRadius},
		{"wander.circle_offset", c.Wander.CircleOffset},
		{"wander.maximum_slide_degrees", c.Wander.MaximumSlideDegrees},
		{"face_heading.slowing_angle_degrees", c.FaceHeading.SlowingAngleDegrees},
		{"face_heading.close_enough_angle_degrees", c.FaceHeading.CloseEnoughAngleDegrees},
		{"avoid_walls.feeler_spread_degrees", c.AvoidWalls.FeelerSpreadDegrees},
	}
	for _, f := range floats {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidConfig, f.name)
		}
	}
	for i, w := range c.Walls {
		if w.A == w.B {
			return fmt.Errorf("%w: walls[%d] has coincident endpoints", ErrInvalidConfig, i)
		}
	}
	return nil
}
