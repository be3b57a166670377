package types

import (
	"math"
	"time"
)

// Observation is one synthetic weather sample. Values are never mutated after
// the generator hands them out.
type Observation struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature float64   `json:"temperature"`
	Dewpoint    float64   `json:"dewpoint"`
	Humidity    int       `json:"humidity"`
	Pressure    float64   `json:"barometric_pressure"`
}

// Dewpoint derives the dewpoint from a temperature. Halves round to even so
// continuous temperatures like 0.5 land on -2.
func Dewpoint(temperature float64) float64 {
	return math.RoundToEven(temperature - 2)
}

// RoundTenth rounds v to one decimal place. Values that round to zero come
// back as +0, never -0.
func RoundTenth(v float64) float64 {
	r := math.Round(v*10) / 10
	if r == 0 {
		return 0
	}
	return r
}

// PrecipitationKind classifies what falls during a step
type PrecipitationKind string

const (
	Snow PrecipitationKind = "snow"
	Rain PrecipitationKind = "rain"
)

// Precipitation is the classification and amount derived from one observation
type Precipitation struct {
	Kind   PrecipitationKind `json:"kind"`
	Amount float64           `json:"amount"`
}

// StepRecord is the per-step state handed to output sinks
type StepRecord struct {
	Step          int               `json:"step"`
	Timestamp     time.Time         `json:"timestamp"`
	Temperature   float64           `json:"temperature"`
	Dewpoint      float64           `json:"dewpoint"`
	Humidity      int               `json:"humidity"`
	Pressure      float64           `json:"barometric_pressure"`
	TotalSnow     float64           `json:"total_snow"`
	Precipitation PrecipitationKind `json:"precipitation"`
	Amount        float64           `json:"precipitation_amount"`
	Melt          float64           `json:"melt,omitempty"`
}
