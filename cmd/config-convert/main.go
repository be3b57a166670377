package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chrissnell/snowsim/pkg/config"
)

func main() {
	var (
		yamlFile   = flag.String("yaml", "", "Path to YAML configuration file (required)")
		sqliteFile = flag.String("sqlite", "", "Path to SQLite database file (required)")
		name       = flag.String("name", "", "Store the simulation under this name (default: name from YAML, then 'default')")
		dryRun     = flag.Bool("dry-run", false, "Show what would be done without executing")
	)
	flag.Parse()

	if *yamlFile == "" || *sqliteFile == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -yaml <snowsim.yaml> -sqlite <snowsim.db>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Check if YAML file exists
	if _, err := os.Stat(*yamlFile); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: YAML file does not exist: %s\n", *yamlFile)
		os.Exit(1)
	}

	fmt.Printf("Converting YAML configuration to SQLite...\n")
	fmt.Printf("  Source: %s\n", *yamlFile)
	fmt.Printf("  Target: %s\n", *sqliteFile)

	configData, err := config.NewYAMLProvider(*yamlFile).LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading YAML configuration: %v\n", err)
		os.Exit(1)
	}
	if *name != "" {
		configData.Simulation.Name = *name
	}

	// Resolve only to catch bad presets before anything is written
	if _, err := configData.Simulation.Resolve(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in simulation configuration: %v\n", err)
		os.Exit(1)
	}

	printConfigSummary(configData)

	if *dryRun {
		fmt.Println("DRY RUN complete - no database written")
		return
	}

	provider, err := config.NewSQLiteProvider(*sqliteFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening SQLite database: %v\n", err)
		os.Exit(1)
	}
	defer provider.Close()

	if err := provider.InitSchema(); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating schema: %v\n", err)
		os.Exit(1)
	}

	if err := provider.SaveConfig(configData); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving configuration: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✓ Conversion complete")
}

func printConfigSummary(cfg *config.ConfigData) {
	sim := cfg.Simulation
	name := sim.Name
	if name == "" {
		name = "default"
	}
	preset := sim.Preset
	if preset == "" {
		preset = config.DefaultPreset
	}

	fmt.Printf("  Simulation: %s (preset %s)\n", name, preset)
	if sim.Start != "" {
		fmt.Printf("    Start: %s\n", sim.Start)
	}
	switch {
	case sim.Until != "":
		fmt.Printf("    Until: %s\n", sim.Until)
	case sim.Steps > 0:
		fmt.Printf("    Steps: %d\n", sim.Steps)
	}
	if sim.Seed != nil {
		fmt.Printf("    Seed: %d\n", *sim.Seed)
	}
	if cfg.Output.Format != "" {
		fmt.Printf("  Output format: %s\n", cfg.Output.Format)
	}
}
