// Package simulation drives a snow engine from a start timestamp until a step
// count or end timestamp is reached, handing each step to a sink.
package simulation

import (
	"fmt"
	"time"

	"github.com/chrissnell/snowsim/internal/precip"
	"github.com/chrissnell/snowsim/internal/snow"
	"github.com/chrissnell/snowsim/internal/types"
	"github.com/chrissnell/snowsim/internal/weather"
	"github.com/chrissnell/snowsim/pkg/config"
)

// timestampLayouts are tried in order when parsing start/until values
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Settings is a fully resolved, validated simulation
type Settings struct {
	Name  string
	Start time.Time

	// Exactly one of Steps and Until is set
	Steps int
	Until time.Time

	Seed int64

	Weather weather.Config
	Precip  precip.Config
	Snow    snow.Config
}

// NewSettings resolves data against its preset and validates the result.
// A nil seed picks one from the clock.
func NewSettings(data config.SimulationData) (*Settings, error) {
	sim, err := data.Resolve()
	if err != nil {
		return nil, err
	}

	s := &Settings{
		Name:  sim.Name,
		Steps: sim.Steps,
	}

	if s.Start, err = ParseTimestamp(sim.Start); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if sim.Until != "" {
		if s.Until, err = ParseTimestamp(sim.Until); err != nil {
			return nil, fmt.Errorf("until: %w", err)
		}
	}

	if sim.Seed != nil {
		s.Seed = *sim.Seed
	} else {
		s.Seed = time.Now().UnixNano()
	}

	s.Weather = weather.Config{
		StepMinutes:  sim.StepMinutes,
		TempMin:      sim.Temperature.Min,
		TempMax:      sim.Temperature.Max,
		Continuous:   sim.Temperature.Continuous,
		HumidityLow:  sim.Humidity.Low,
		HumidityHigh: sim.Humidity.High,
		HumidityStep: sim.Humidity.Step,
		PressureMin:  sim.Pressure.Min,
		PressureMax:  sim.Pressure.Max,
	}
	s.Precip = precip.Config{
		SnowThresholdInclusive: *sim.SnowThresholdInclusive,
		Duration:               sim.Duration,
	}
	s.Snow = snow.DefaultConfig()
	s.Snow.Accumulation.Mode = snow.BandMode(sim.BandMode)
	s.Snow.ApplyMelt = *sim.ApplyMelt

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks termination settings and every component config
func (s *Settings) Validate() error {
	switch {
	case s.Steps < 0:
		return fmt.Errorf("steps must not be negative, got %d: %w", s.Steps, types.ErrInvalidRange)
	case s.Steps > 0 && !s.Until.IsZero():
		return fmt.Errorf("steps and until are mutually exclusive: %w", types.ErrInvalidRange)
	case s.Steps == 0 && s.Until.IsZero():
		return fmt.Errorf("one of steps or until is required: %w", types.ErrInvalidRange)
	case !s.Until.IsZero() && s.Until.Before(s.Start):
		return fmt.Errorf("until %s is before start %s: %w",
			s.Until.Format(time.RFC3339), s.Start.Format(time.RFC3339), types.ErrInvalidTimestamp)
	}

	if err := s.Weather.Validate(); err != nil {
		return err
	}
	if err := s.Precip.Validate(); err != nil {
		return err
	}
	return s.Snow.Accumulation.Validate()
}

// ParseTimestamp accepts RFC 3339 or a handful of plain date/time layouts.
// Layouts without a zone are read as UTC.
func ParseTimestamp(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, fmt.Errorf("empty timestamp: %w", types.ErrInvalidTimestamp)
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable timestamp %q: %w", v, types.ErrInvalidTimestamp)
}
