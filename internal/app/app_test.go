package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/chrissnell/snowsim/internal/types"
	"github.com/chrissnell/snowsim/pkg/config"
	"go.uber.org/zap/zaptest"
)

func seed(v int64) *int64 {
	return &v
}

func TestRunPrintsEveryStep(t *testing.T) {
	var out bytes.Buffer
	cfg := &config.ConfigData{
		Simulation: config.SimulationData{Steps: 3, Seed: seed(1)},
		Output:     config.OutputData{Format: "json"},
	}

	if err := New(cfg, &out, zaptest.NewLogger(t).Sugar()).Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	// Three step records plus the summary, one JSON object per line
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, expected 4:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[3], `"run_id"`) {
		t.Errorf("last line is not a summary: %s", lines[3])
	}
}

func TestRunFinalOnly(t *testing.T) {
	var out bytes.Buffer
	cfg := &config.ConfigData{
		Simulation: config.SimulationData{Until: "2022-01-01 01:00", Seed: seed(1)},
		Output:     config.OutputData{FinalOnly: true},
	}

	if err := New(cfg, &out, zaptest.NewLogger(t).Sugar()).Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	text := out.String()
	if n := strings.Count(text, "Date: "); n != 1 {
		t.Errorf("printed %d steps, expected only the final one", n)
	}
	if !strings.Contains(text, "Date: 2022, January, 01 01:00AM") {
		t.Errorf("final step not at the end timestamp:\n%s", text)
	}
	if !strings.Contains(text, "Steps: 12") {
		t.Errorf("summary should report 12 steps:\n%s", text)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	cfg := &config.ConfigData{
		Simulation: config.SimulationData{Start: "not a date"},
	}
	err := New(cfg, &bytes.Buffer{}, zaptest.NewLogger(t).Sugar()).Run(context.Background())
	if !errors.Is(err, types.ErrInvalidTimestamp) {
		t.Fatalf("expected ErrInvalidTimestamp, got %v", err)
	}

	cfg = &config.ConfigData{Output: config.OutputData{Format: "xml"}}
	if err := New(cfg, &bytes.Buffer{}, zaptest.NewLogger(t).Sugar()).Run(context.Background()); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
