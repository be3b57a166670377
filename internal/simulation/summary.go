package simulation

import (
	"time"

	"github.com/chrissnell/snowsim/internal/types"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a finished run
type Summary struct {
	RunID string `json:"run_id"`
	Name  string `json:"name"`

	Steps     int        `json:"steps"`
	Start     *time.Time `json:"start,omitempty"`
	End       *time.Time `json:"end,omitempty"`
	SnowSteps int        `json:"snow_steps"`
	RainSteps int        `json:"rain_steps"`
	WetSteps  int        `json:"wet_steps"`

	FinalSnow float64 `json:"final_snow"`
	PeakSnow  float64 `json:"peak_snow"`

	MeanTemperature   float64 `json:"mean_temperature"`
	StdDevTemperature float64 `json:"stddev_temperature"`
	MeanHumidity      float64 `json:"mean_humidity"`
	MeanPressure      float64 `json:"mean_pressure"`
}

// Summarize computes run statistics from the recorded steps. WetSteps counts
// steps whose precipitation amount was above zero.
func Summarize(runID, name string, history []types.StepRecord) Summary {
	s := Summary{
		RunID: runID,
		Name:  name,
		Steps: len(history),
	}
	if len(history) == 0 {
		return s
	}

	temps := make([]float64, len(history))
	humidity := make([]float64, len(history))
	pressure := make([]float64, len(history))
	snowTotals := make([]float64, len(history))

	for i, rec := range history {
		temps[i] = rec.Temperature
		humidity[i] = float64(rec.Humidity)
		pressure[i] = rec.Pressure
		snowTotals[i] = rec.TotalSnow

		switch rec.Precipitation {
		case types.Snow:
			s.SnowSteps++
		case types.Rain:
			s.RainSteps++
		}
		if rec.Amount > 0 {
			s.WetSteps++
		}
	}

	first, last := history[0].Timestamp, history[len(history)-1].Timestamp
	s.Start, s.End = &first, &last
	s.FinalSnow = snowTotals[len(snowTotals)-1]
	s.PeakSnow = floats.Max(snowTotals)

	if len(temps) > 1 {
		s.MeanTemperature, s.StdDevTemperature = stat.MeanStdDev(temps, nil)
	} else {
		s.MeanTemperature = temps[0]
	}
	s.MeanHumidity = stat.Mean(humidity, nil)
	s.MeanPressure = stat.Mean(pressure, nil)

	return s
}
