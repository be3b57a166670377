// Package precip classifies observations as snow or rain and computes the
// precipitation amount from humidity/pressure lookup tables.
package precip

import (
	"fmt"
	"math"

	"github.com/chrissnell/snowsim/internal/types"
)

// Config controls classification and scaling
type Config struct {
	// SnowThresholdInclusive classifies exactly 0 °C as snow (temp <= 0).
	// When false only temperatures strictly below zero are snow.
	SnowThresholdInclusive bool

	// Duration multiplies every tabulated amount
	Duration float64
}

// DefaultConfig returns the canonical model settings
func DefaultConfig() Config {
	return Config{
		SnowThresholdInclusive: true,
		Duration:               1,
	}
}

// Model is a pure function of its config and the observation it is given
type Model struct {
	cfg Config
}

// Validate rejects a negative or non-finite duration
func (c Config) Validate() error {
	switch {
	case math.IsNaN(c.Duration) || math.IsInf(c.Duration, 0):
		return fmt.Errorf("duration must be finite, got %v: %w", c.Duration, types.ErrInvalidRange)
	case c.Duration < 0:
		return fmt.Errorf("duration must not be negative, got %v: %w", c.Duration, types.ErrInvalidRange)
	}
	return nil
}

// NewModel validates cfg and returns a Model
func NewModel(cfg Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Model{cfg: cfg}, nil
}

// Classify returns Snow or Rain. There is no dry outcome; a dry step is simply
// one whose amount is zero.
func (m *Model) Classify(obs types.Observation) types.PrecipitationKind {
	if obs.Temperature < 0 || (m.cfg.SnowThresholdInclusive && obs.Temperature == 0) {
		return types.Snow
	}
	return types.Rain
}

// Amount returns the scaled precipitation amount for obs
func (m *Model) Amount(obs types.Observation) float64 {
	return BaseAmount(obs.Humidity, obs.Pressure) * m.cfg.Duration
}

// Evaluate classifies obs and computes its amount in one call
func (m *Model) Evaluate(obs types.Observation) types.Precipitation {
	return types.Precipitation{
		Kind:   m.Classify(obs),
		Amount: m.Amount(obs),
	}
}
