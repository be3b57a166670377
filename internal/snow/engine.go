// Package snow owns the running snow total and applies the accumulation,
// rain and melt rules once per simulation step.
package snow

import (
	"fmt"
	"math"
	"time"

	"github.com/chrissnell/snowsim/internal/precip"
	"github.com/chrissnell/snowsim/internal/types"
	"github.com/chrissnell/snowsim/internal/weather"
	"go.uber.org/zap"
)

// Config controls the accumulation and melt rules
type Config struct {
	Accumulation Accumulator

	// ApplyMelt subtracts the melt amount on warm steps. When false the melt is
	// still computed and reported but leaves the total untouched.
	ApplyMelt bool
}

// DefaultConfig returns the canonical engine settings
func DefaultConfig() Config {
	return Config{
		Accumulation: DefaultAccumulator(),
	}
}

// State is the only thing carried from one step to the next
type State struct {
	Observation types.Observation
	TotalSnow   float64
}

// Outcome describes the arithmetic of a single step
type Outcome struct {
	Precipitation types.Precipitation
	SnowAdded     float64
	RainRemoved   float64
	Melt          float64
	MeltApplied   bool
}

// Engine advances a State. It keeps no total of its own, so independent runs
// never share snow.
type Engine struct {
	gen    *weather.Generator
	model  *precip.Model
	cfg    Config
	logger *zap.SugaredLogger
}

// NewEngine wires a generator and precipitation model into an Engine
func NewEngine(gen *weather.Generator, model *precip.Model, cfg Config, logger *zap.SugaredLogger) (*Engine, error) {
	if gen == nil || model == nil {
		return nil, fmt.Errorf("engine requires a generator and a precipitation model")
	}
	if err := cfg.Accumulation.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Engine{
		gen:    gen,
		model:  model,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Initial returns the starting state: an observation at start and no snow
func (e *Engine) Initial(start time.Time) State {
	return State{Observation: e.gen.Observe(start)}
}

// Step applies the current observation's precipitation to the total, then
// generates the next observation.
func (e *Engine) Step(s State) (State, Outcome) {
	cur := s.Observation
	total := s.TotalSnow

	out := Outcome{Precipitation: e.model.Evaluate(cur)}

	switch out.Precipitation.Kind {
	case types.Snow:
		out.SnowAdded = e.cfg.Accumulation.Add(cur.Temperature, out.Precipitation.Amount)
		total += out.SnowAdded
	case types.Rain:
		out.RainRemoved = out.Precipitation.Amount
		total -= out.RainRemoved
	}

	if cur.Temperature > 0 {
		out.Melt = MeltAmount(cur.Temperature)
		if e.cfg.ApplyMelt {
			total -= out.Melt
			out.MeltApplied = true
		}
	}

	total = math.Max(total, 0)

	next := State{
		Observation: e.gen.Generate(cur.Timestamp),
		TotalSnow:   total,
	}

	e.logger.Debugw("snow step",
		"time", cur.Timestamp,
		"temperature", cur.Temperature,
		"kind", out.Precipitation.Kind,
		"amount", out.Precipitation.Amount,
		"melt", out.Melt,
		"total_snow", total,
	)

	return next, out
}
