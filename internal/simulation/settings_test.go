package simulation

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/chrissnell/snowsim/internal/snow"
	"github.com/chrissnell/snowsim/internal/types"
	"github.com/chrissnell/snowsim/internal/weather"
	"github.com/chrissnell/snowsim/pkg/config"
)

func TestNewSettingsDefaults(t *testing.T) {
	s := mustSettings(t, config.SimulationData{Seed: seed(5)})

	if !s.Start.Equal(start) {
		t.Errorf("start = %v, expected %v", s.Start, start)
	}
	if s.Steps != 288 || !s.Until.IsZero() {
		t.Errorf("steps/until = %d/%v", s.Steps, s.Until)
	}
	if s.Seed != 5 {
		t.Errorf("seed = %d, expected 5", s.Seed)
	}
	if s.Weather.TempMin != -8 || s.Weather.TempMax != 3 || s.Weather.StepMinutes != 5 {
		t.Errorf("weather = %+v", s.Weather)
	}
	if !s.Precip.SnowThresholdInclusive || s.Precip.Duration != 1 {
		t.Errorf("precip = %+v", s.Precip)
	}
	if s.Snow.Accumulation.Mode != snow.BandModeExclusive || s.Snow.ApplyMelt {
		t.Errorf("snow = %+v", s.Snow)
	}
}

func TestNewSettingsLegacyPreset(t *testing.T) {
	s := mustSettings(t, config.SimulationData{Preset: "legacy", Seed: seed(5)})

	if s.Precip.SnowThresholdInclusive {
		t.Error("legacy preset should use the strict snow threshold")
	}
	if s.Snow.Accumulation.Mode != snow.BandModeLegacy {
		t.Errorf("band mode = %q, expected legacy", s.Snow.Accumulation.Mode)
	}
}

func TestNewSettingsErrors(t *testing.T) {
	tests := []struct {
		name string
		data config.SimulationData
		want error
	}{
		{
			name: "bad start",
			data: config.SimulationData{Start: "2022-13-45"},
			want: types.ErrInvalidTimestamp,
		},
		{
			name: "bad until",
			data: config.SimulationData{Until: "tomorrow"},
			want: types.ErrInvalidTimestamp,
		},
		{
			name: "until before start",
			data: config.SimulationData{Until: "2021-12-31"},
			want: types.ErrInvalidTimestamp,
		},
		{
			name: "steps and until",
			data: config.SimulationData{Steps: 10, Until: "2022-01-02"},
			want: types.ErrInvalidRange,
		},
		{
			name: "negative steps",
			data: config.SimulationData{Steps: -1},
			want: types.ErrInvalidRange,
		},
		{
			name: "inverted temperature",
			data: config.SimulationData{Temperature: &config.TemperatureData{Min: 3, Max: -8}},
			want: types.ErrInvalidRange,
		},
		{
			name: "zero humidity step",
			data: config.SimulationData{Humidity: &config.HumidityData{Low: 40, High: 100}},
			want: types.ErrInvalidRange,
		},
		{
			name: "negative duration",
			data: config.SimulationData{Duration: -2},
			want: types.ErrInvalidRange,
		},
		{
			name: "NaN duration",
			data: config.SimulationData{Duration: math.NaN(), Steps: 50},
			want: types.ErrInvalidRange,
		},
		{
			name: "step overflows duration",
			data: config.SimulationData{StepMinutes: int(weather.MaxStepMinutes) + 1, Until: "2022-01-02"},
			want: types.ErrInvalidRange,
		},
		{
			name: "unknown band mode",
			data: config.SimulationData{BandMode: "ranked"},
			want: types.ErrInvalidRange,
		},
		{
			name: "unknown preset",
			data: config.SimulationData{Preset: "tropical"},
			want: types.ErrUnknownPreset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSettings(tt.data); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2022, 3, 4, 5, 6, 0, 0, time.UTC)

	for _, v := range []string{"2022-03-04T05:06:00Z", "2022-03-04 05:06:00", "2022-03-04 05:06", "2022-03-04T05:06"} {
		got, err := ParseTimestamp(v)
		if err != nil {
			t.Errorf("ParseTimestamp(%q): %v", v, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseTimestamp(%q) = %v, expected %v", v, got, want)
		}
	}

	if _, err := ParseTimestamp(""); !errors.Is(err, types.ErrInvalidTimestamp) {
		t.Errorf("expected ErrInvalidTimestamp for empty value, got %v", err)
	}
}
