package snow

import (
	"math"
	"testing"
)

func TestAccumulatorAdd(t *testing.T) {
	tests := []struct {
		name     string
		mode     BandMode
		temp     float64
		expected float64
	}{
		{name: "exclusive -1", mode: BandModeExclusive, temp: -1, expected: 0.05},
		{name: "exclusive -3", mode: BandModeExclusive, temp: -3, expected: 0.05},
		{name: "exclusive -4", mode: BandModeExclusive, temp: -4, expected: 0.2},
		{name: "exclusive -6", mode: BandModeExclusive, temp: -6, expected: 0.2},
		{name: "exclusive -7", mode: BandModeExclusive, temp: -7, expected: 0.5},
		{name: "exclusive 0", mode: BandModeExclusive, temp: 0, expected: 0.5},
		{name: "exclusive between bands", mode: BandModeExclusive, temp: -3.5, expected: 0.5},
		{name: "legacy -2 adds both", mode: BandModeLegacy, temp: -2, expected: 0.55},
		{name: "legacy -5", mode: BandModeLegacy, temp: -5, expected: 0.2},
		{name: "legacy -8", mode: BandModeLegacy, temp: -8, expected: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := DefaultAccumulator()
			acc.Mode = tt.mode

			if got := acc.Add(tt.temp, 1); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Add(%v, 1) = %v, expected %v", tt.temp, got, tt.expected)
			}
		})
	}
}

func TestAccumulatorOverlappingBandsBothApply(t *testing.T) {
	acc := Accumulator{
		Bands: []Band{
			{Name: "wide", Min: -5, Max: 0, Rate: 0.1},
			{Name: "narrow", Min: -2, Max: -1, Rate: 0.3},
		},
		DefaultRate: 0.5,
		Mode:        BandModeExclusive,
	}

	if got := acc.Add(-1.5, 2); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("Add = %v, expected 0.8 from both bands", got)
	}
	if got := acc.Add(-4, 2); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("Add = %v, expected 0.2 from the wide band only", got)
	}
}

func TestMeltAmount(t *testing.T) {
	tests := []struct {
		temp     float64
		expected float64
	}{
		{temp: 0, expected: 0},
		{temp: 1, expected: 0.05},
		{temp: 2, expected: 0.1},
		{temp: 3, expected: 0.15},
		{temp: 4, expected: 0},
		{temp: 1.5, expected: 0},
		{temp: -2, expected: 0},
	}

	for _, tt := range tests {
		if got := MeltAmount(tt.temp); got != tt.expected {
			t.Errorf("MeltAmount(%v) = %v, expected %v", tt.temp, got, tt.expected)
		}
	}
}
