// Package weather generates synthetic, range-constrained weather observations
// at a fixed time increment.
package weather

import (
	"fmt"
	"math"
	"time"

	"github.com/chrissnell/snowsim/internal/constants"
	"github.com/chrissnell/snowsim/internal/types"
)

// Config bounds every random draw the generator makes
type Config struct {
	// StepMinutes is the gap between consecutive observations
	StepMinutes int

	// TempMin and TempMax bound the temperature in °C, both inclusive
	TempMin int
	TempMax int

	// Continuous draws one-decimal temperatures instead of whole degrees
	Continuous bool

	// Humidity is drawn from HumidityLow, HumidityLow+HumidityStep, ... below HumidityHigh
	HumidityLow  int
	HumidityHigh int
	HumidityStep int

	// PressureMin and PressureMax bound the barometric pressure in hPa
	PressureMin float64
	PressureMax float64
}

// DefaultConfig returns the canonical generator ranges
func DefaultConfig() Config {
	return Config{
		StepMinutes:  constants.DefaultStepMinutes,
		TempMin:      -8,
		TempMax:      3,
		HumidityLow:  40,
		HumidityHigh: 100,
		HumidityStep: 10,
		PressureMin:  995.6,
		PressureMax:  1009.1,
	}
}

// MaxStepMinutes is the longest step a time.Duration can hold
const MaxStepMinutes = math.MaxInt64 / int64(time.Minute)

// Validate reports the first misconfigured range
func (c Config) Validate() error {
	switch {
	case c.StepMinutes <= 0:
		return fmt.Errorf("step minutes must be positive, got %d: %w", c.StepMinutes, types.ErrInvalidRange)
	case int64(c.StepMinutes) > MaxStepMinutes:
		return fmt.Errorf("step minutes %d exceeds %d: %w", c.StepMinutes, MaxStepMinutes, types.ErrInvalidRange)
	case c.TempMin > c.TempMax:
		return fmt.Errorf("temperature min %d exceeds max %d: %w", c.TempMin, c.TempMax, types.ErrInvalidRange)
	case c.HumidityStep <= 0:
		return fmt.Errorf("humidity step must be positive, got %d: %w", c.HumidityStep, types.ErrInvalidRange)
	case c.HumidityLow >= c.HumidityHigh:
		return fmt.Errorf("humidity low %d must be below high %d: %w", c.HumidityLow, c.HumidityHigh, types.ErrInvalidRange)
	case !finite(c.PressureMin) || !finite(c.PressureMax):
		return fmt.Errorf("pressure bounds must be finite, got %v and %v: %w", c.PressureMin, c.PressureMax, types.ErrInvalidRange)
	case c.PressureMin > c.PressureMax:
		return fmt.Errorf("pressure min %.1f exceeds max %.1f: %w", c.PressureMin, c.PressureMax, types.ErrInvalidRange)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Generator produces observations. It holds no state besides its config and
// random source, so the same timestamp and draws always give the same result.
type Generator struct {
	cfg  Config
	rnd  RandomSource
	step time.Duration
}

// NewGenerator validates cfg and returns a generator drawing from rnd
func NewGenerator(cfg Config, rnd RandomSource) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rnd == nil {
		return nil, fmt.Errorf("random source is required: %w", types.ErrInvalidRange)
	}

	return &Generator{
		cfg:  cfg,
		rnd:  rnd,
		step: time.Duration(cfg.StepMinutes) * time.Minute,
	}, nil
}

// Step returns the increment between observations
func (g *Generator) Step() time.Duration {
	return g.step
}

// Generate returns the observation that follows one taken at prev
func (g *Generator) Generate(prev time.Time) types.Observation {
	return g.Observe(prev.Add(g.step))
}

// Observe draws a fresh observation stamped with ts
func (g *Generator) Observe(ts time.Time) types.Observation {
	temp := g.temperature()

	return types.Observation{
		Timestamp:   ts,
		Temperature: temp,
		Dewpoint:    types.Dewpoint(temp),
		Humidity:    g.rnd.SteppedRange(g.cfg.HumidityLow, g.cfg.HumidityHigh, g.cfg.HumidityStep),
		Pressure:    types.RoundTenth(g.rnd.FloatRange(g.cfg.PressureMin, g.cfg.PressureMax)),
	}
}

func (g *Generator) temperature() float64 {
	if g.cfg.Continuous {
		return types.RoundTenth(g.rnd.FloatRange(float64(g.cfg.TempMin), float64(g.cfg.TempMax)))
	}
	return float64(g.rnd.IntRange(g.cfg.TempMin, g.cfg.TempMax))
}
