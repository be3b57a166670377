package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/chrissnell/snowsim/internal/simulation"
	"github.com/chrissnell/snowsim/pkg/config"
	"github.com/chrissnell/snowsim/pkg/responseformat"
	"go.uber.org/zap"
)

// App represents the main application
type App struct {
	cfg    *config.ConfigData
	out    io.Writer
	logger *zap.SugaredLogger
}

// New creates a new application instance writing rendered output to out
func New(cfg *config.ConfigData, out io.Writer, logger *zap.SugaredLogger) *App {
	return &App{
		cfg:    cfg,
		out:    out,
		logger: logger,
	}
}

// Run executes the configured simulation. It returns early with the context's
// error if a shutdown signal arrives mid-run.
func (a *App) Run(ctx context.Context) error {
	settings, err := simulation.NewSettings(a.cfg.Simulation)
	if err != nil {
		return fmt.Errorf("invalid simulation settings: %w", err)
	}

	outFormat, err := responseformat.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return err
	}
	formatter := responseformat.NewFormatter(a.out, outFormat)

	var sink simulation.Sink = formatter
	if a.cfg.Output.FinalOnly {
		sink = nil
	}

	runner, err := simulation.NewRunner(settings, sink, a.logger)
	if err != nil {
		return err
	}

	// Set up signal handling
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := runner.Run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			a.logger.Info("shutdown signal received, simulation aborted")
		}
		return err
	}

	if a.cfg.Output.FinalOnly {
		if history := runner.History(); len(history) > 0 {
			if err := formatter.WriteStep(history[len(history)-1]); err != nil {
				return err
			}
		}
	}

	return formatter.WriteSummary(*summary)
}
