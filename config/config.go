// Package config defines host configuration and its layered loading
package config

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-pong/logger"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/physics"
)

// Config contains process configuration
// Tuning keys are flat at the top level (ramp_rate, lock_timeout, ...)
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error
	LogLevel string `koanf:"log_level"`

	// LogFile receives log output; empty discards since the terminal owns stdout
	LogFile string `koanf:"log_file"`

	// Physics selects the engine: boundary or chipmunk
	Physics string `koanf:"physics"`

	// MetricsAddr serves /metrics when set, e.g. "localhost:9090"
	MetricsAddr string `koanf:"metrics_addr"`

	// StatsviewAddr serves the runtime stats viewer when set
	StatsviewAddr string `koanf:"statsview_addr"`

	// SentryDSN enables crash reporting when set
	SentryDSN string `koanf:"sentry_dsn"`

	// Audio enables bounce and goal tones
	Audio bool `koanf:"audio"`

	// FrameInterval is the render and input cadence
	FrameInterval time.Duration `koanf:"frame_interval"`

	parameter.Tuning `koanf:",squash"`
}

// New returns a Config with defaults
func New() *Config {
	return &Config{
		LogLevel:      "info",
		Physics:       physics.EngineBoundary,
		Audio:         true,
		FrameInterval: parameter.FrameUpdateInterval,
		Tuning:        parameter.DefaultTuning(),
	}
}

// Validate checks the config, errors wrap ErrInvalidConfig
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Physics {
	case physics.EngineBoundary, physics.EngineChipmunk:
	default:
		return fmt.Errorf("%w: unknown physics engine %q", ErrInvalidConfig, c.Physics)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame_interval must be positive", ErrInvalidConfig)
	}
	if err := c.Tuning.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
