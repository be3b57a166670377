package simulation

import (
	"context"
	"fmt"

	"github.com/chrissnell/snowsim/internal/precip"
	"github.com/chrissnell/snowsim/internal/snow"
	"github.com/chrissnell/snowsim/internal/types"
	"github.com/chrissnell/snowsim/internal/weather"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sink receives each step as soon as it is computed
type Sink interface {
	WriteStep(rec types.StepRecord) error
}

// SinkFunc adapts a function to the Sink interface
type SinkFunc func(rec types.StepRecord) error

func (f SinkFunc) WriteStep(rec types.StepRecord) error {
	return f(rec)
}

// Runner executes one simulation. A Runner is single-use and not safe for
// concurrent use; run independent simulations with independent Runners.
type Runner struct {
	id       uuid.UUID
	settings *Settings
	engine   *snow.Engine
	sink     Sink
	logger   *zap.SugaredLogger
	history  []types.StepRecord
}

// NewRunner builds a runner whose randomness is seeded from settings.Seed
func NewRunner(settings *Settings, sink Sink, logger *zap.SugaredLogger) (*Runner, error) {
	return NewRunnerWithSource(settings, weather.NewRandomSource(settings.Seed), sink, logger)
}

// NewRunnerWithSource builds a runner drawing from rnd
func NewRunnerWithSource(settings *Settings, rnd weather.RandomSource, sink Sink, logger *zap.SugaredLogger) (*Runner, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	gen, err := weather.NewGenerator(settings.Weather, rnd)
	if err != nil {
		return nil, fmt.Errorf("error creating weather generator: %w", err)
	}
	model, err := precip.NewModel(settings.Precip)
	if err != nil {
		return nil, fmt.Errorf("error creating precipitation model: %w", err)
	}

	id := uuid.New()
	engine, err := snow.NewEngine(gen, model, settings.Snow, logger.With("run_id", id.String()))
	if err != nil {
		return nil, fmt.Errorf("error creating snow engine: %w", err)
	}

	return &Runner{
		id:       id,
		settings: settings,
		engine:   engine,
		sink:     sink,
		logger:   logger,
	}, nil
}

// ID returns the run identifier used in log entries and summaries
func (r *Runner) ID() uuid.UUID {
	return r.id
}

// History returns every step recorded so far
func (r *Runner) History() []types.StepRecord {
	return r.history
}

// Run steps the engine until the configured step count or end timestamp is
// reached. Cancellation is checked between steps.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	r.logger.Infow("starting simulation",
		"run_id", r.id.String(),
		"name", r.settings.Name,
		"start", r.settings.Start,
		"steps", r.settings.Steps,
		"until", r.settings.Until,
		"seed", r.settings.Seed,
	)

	state := r.engine.Initial(r.settings.Start)

	for step := 1; r.more(step, state); step++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next, out := r.engine.Step(state)
		rec := types.StepRecord{
			Step:          step,
			Timestamp:     next.Observation.Timestamp,
			Temperature:   next.Observation.Temperature,
			Dewpoint:      next.Observation.Dewpoint,
			Humidity:      next.Observation.Humidity,
			Pressure:      next.Observation.Pressure,
			TotalSnow:     next.TotalSnow,
			Precipitation: out.Precipitation.Kind,
			Amount:        out.Precipitation.Amount,
			Melt:          out.Melt,
		}
		r.history = append(r.history, rec)

		if r.sink != nil {
			if err := r.sink.WriteStep(rec); err != nil {
				return nil, fmt.Errorf("error writing step %d: %w", step, err)
			}
		}
		state = next
	}

	summary := Summarize(r.id.String(), r.settings.Name, r.history)
	r.logger.Infow("simulation complete",
		"run_id", summary.RunID,
		"steps", summary.Steps,
		"total_snow", summary.FinalSnow,
		"peak_snow", summary.PeakSnow,
	)
	return &summary, nil
}

func (r *Runner) more(step int, state snow.State) bool {
	if r.settings.Steps > 0 {
		return step <= r.settings.Steps
	}
	return state.Observation.Timestamp.Before(r.settings.Until)
}
