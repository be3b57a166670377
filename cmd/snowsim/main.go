package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chrissnell/snowsim/internal/app"
	"github.com/chrissnell/snowsim/internal/constants"
	"github.com/chrissnell/snowsim/internal/log"
	"github.com/chrissnell/snowsim/pkg/config"
)

func main() {
	cfgFile := flag.String("config", "", "Path to configuration source:\n\t\t\t  YAML: snowsim.yaml\n\t\t\t  SQLite: snowsim.db\n\t\t\t  Leave empty to run a preset with flag overrides only")
	cfgBackend := flag.String("config-backend", "yaml", "Configuration backend type: 'yaml' for YAML files, 'sqlite' for SQLite databases")
	simName := flag.String("simulation", constants.DefaultSimulationName, "Simulation to load from a SQLite configuration")
	preset := flag.String("preset", "", "Parameter preset: "+strings.Join(config.PresetNames(), ", "))
	start := flag.String("start", "", "Start timestamp, e.g. 2022-01-01T00:00:00Z or \"2022-01-01 00:00\"")
	until := flag.String("until", "", "Run until this timestamp instead of a fixed number of steps")
	steps := flag.Int("steps", 0, "Number of steps to simulate")
	seed := flag.Int64("seed", 0, "Random seed for reproducible runs (default: clock)")
	format := flag.String("format", "", "Output format: text, json or msgpack")
	finalOnly := flag.Bool("final-only", false, "Only print the final step")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	logFile := flag.String("log-file", "", "Also write logs to this file, rotated by size")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("snowsim %s\n", constants.Version)
		os.Exit(0)
	}

	// Set up logging
	if err := log.InitWithFile(*debug, log.FileOptions{Path: *logFile, MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 28}); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfgData, err := loadConfig(*cfgFile, *cfgBackend, *simName)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *cfgFile != "" {
		log.Infof("Loaded %s configuration from %s", *cfgBackend, *cfgFile)
	}

	// Flags given on the command line win over the config source
	flag.Visit(func(f *flag.Flag) {
		log.Debugf("Overriding %s from the command line: %s", f.Name, f.Value)
		switch f.Name {
		case "preset":
			cfgData.Simulation.Preset = *preset
		case "start":
			cfgData.Simulation.Start = *start
		case "until":
			cfgData.Simulation.Until = *until
			cfgData.Simulation.Steps = 0
		case "steps":
			cfgData.Simulation.Steps = *steps
			cfgData.Simulation.Until = ""
		case "seed":
			cfgData.Simulation.Seed = seed
		case "format":
			cfgData.Output.Format = *format
		case "final-only":
			cfgData.Output.FinalOnly = *finalOnly
		}
	})

	if cfgData.Simulation.Seed == nil {
		log.Warnf("No seed configured, seeding from the clock; the logged seed reproduces this run")
	}

	if err := app.New(cfgData, os.Stdout, log.GetSugaredLogger()).Run(context.Background()); err != nil {
		log.Errorf("Simulation error: %v", err)
		log.Sync()
		os.Exit(1)
	}
}

func loadConfig(cfgFile, cfgBackend, simName string) (*config.ConfigData, error) {
	if cfgFile == "" {
		return &config.ConfigData{}, nil
	}

	filename, _ := filepath.Abs(cfgFile)

	var provider config.ConfigProvider

	switch cfgBackend {
	case "yaml":
		provider = config.NewYAMLProvider(filename)
	case "sqlite":
		sqliteProvider, err := config.NewSQLiteProvider(filename)
		if err != nil {
			return nil, fmt.Errorf("error creating SQLite provider: %w", err)
		}
		sqliteProvider.UseSimulation(simName)
		provider = sqliteProvider
	default:
		return nil, fmt.Errorf("unsupported configuration backend: %s. Use 'yaml' or 'sqlite'", cfgBackend)
	}
	defer provider.Close()

	cfgData, err := provider.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error reading config file. Did you pass the -config flag? Run with -h for help: %w", err)
	}

	return cfgData, nil
}
