package config

import (
	"fmt"
	"sort"

	"github.com/chrissnell/snowsim/internal/constants"
	"github.com/chrissnell/snowsim/internal/types"
)

// DefaultPreset is used when a simulation names no preset
const DefaultPreset = "canonical"

// presets are the known parameter sets. Each is a full SimulationData so that
// Resolve never has to invent a value.
var presets = map[string]func() SimulationData{
	"canonical": canonicalPreset,
	"narrow": func() SimulationData {
		s := canonicalPreset()
		s.Temperature.Max = 2
		return s
	},
	"humid": func() SimulationData {
		s := canonicalPreset()
		s.Humidity = &HumidityData{Low: 70, High: 110, Step: 10}
		return s
	},
	"continuous": func() SimulationData {
		s := canonicalPreset()
		s.Temperature.Continuous = true
		return s
	},
	"legacy": func() SimulationData {
		s := canonicalPreset()
		s.SnowThresholdInclusive = boolPtr(false)
		s.BandMode = "legacy"
		return s
	},
	"melting": func() SimulationData {
		s := canonicalPreset()
		s.ApplyMelt = boolPtr(true)
		return s
	},
}

func canonicalPreset() SimulationData {
	return SimulationData{
		Name:        constants.DefaultSimulationName,
		Preset:      DefaultPreset,
		Start:       "2022-01-01T00:00:00Z",
		Steps:       288,
		StepMinutes: constants.DefaultStepMinutes,
		Duration:    1,
		Temperature: &TemperatureData{Min: -8, Max: 3},
		Humidity:    &HumidityData{Low: 40, High: 100, Step: 10},
		Pressure:    &PressureData{Min: 995.6, Max: 1009.1},

		SnowThresholdInclusive: boolPtr(true),
		BandMode:               "exclusive",
		ApplyMelt:              boolPtr(false),
	}
}

// PresetNames returns the known preset names in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a fresh copy of the named preset
func Preset(name string) (SimulationData, error) {
	if name == "" {
		name = DefaultPreset
	}
	p, ok := presets[name]
	if !ok {
		return SimulationData{}, fmt.Errorf("%q (known: %v): %w", name, PresetNames(), types.ErrUnknownPreset)
	}
	return p(), nil
}

// Resolve overlays the values set in s onto its preset and returns the result
func (s SimulationData) Resolve() (SimulationData, error) {
	out, err := Preset(s.Preset)
	if err != nil {
		return SimulationData{}, err
	}

	if s.Name != "" {
		out.Name = s.Name
	}
	if s.Start != "" {
		out.Start = s.Start
	}
	if s.Until != "" {
		out.Until = s.Until
		// An end timestamp replaces the preset's step count unless both were given.
		out.Steps = s.Steps
	} else if s.Steps != 0 {
		out.Steps = s.Steps
	}
	if s.StepMinutes != 0 {
		out.StepMinutes = s.StepMinutes
	}
	if s.Seed != nil {
		seed := *s.Seed
		out.Seed = &seed
	}
	if s.Duration != 0 {
		out.Duration = s.Duration
	}
	if s.Temperature != nil {
		t := *s.Temperature
		out.Temperature = &t
	}
	if s.Humidity != nil {
		h := *s.Humidity
		out.Humidity = &h
	}
	if s.Pressure != nil {
		p := *s.Pressure
		out.Pressure = &p
	}
	if s.SnowThresholdInclusive != nil {
		out.SnowThresholdInclusive = boolPtr(*s.SnowThresholdInclusive)
	}
	if s.BandMode != "" {
		out.BandMode = s.BandMode
	}
	if s.ApplyMelt != nil {
		out.ApplyMelt = boolPtr(*s.ApplyMelt)
	}

	return out, nil
}

func boolPtr(b bool) *bool {
	return &b
}
