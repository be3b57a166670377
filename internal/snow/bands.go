package snow

import (
	"fmt"

	"github.com/chrissnell/snowsim/internal/types"
)

// Band converts precipitation to snow at Rate when the temperature is within [Min, Max]
type Band struct {
	Name string
	Min  float64
	Max  float64
	Rate float64
}

// Contains reports whether temp falls inside the band, bounds included
func (b Band) Contains(temp float64) bool {
	return temp >= b.Min && temp <= b.Max
}

// BandMode selects how bands that don't match fall back to the default rate
type BandMode string

const (
	// BandModeExclusive checks every band independently and applies the
	// default rate only when none matched.
	BandModeExclusive BandMode = "exclusive"

	// BandModeLegacy checks every band independently, but the last band carries
	// an else branch: the default rate is added whenever the last band misses,
	// even if an earlier band already matched.
	BandModeLegacy BandMode = "legacy"
)

// Accumulator turns a snow precipitation amount into added snow depth
type Accumulator struct {
	Bands       []Band
	DefaultRate float64
	Mode        BandMode
}

// DefaultAccumulator returns the canonical bands: light snow near freezing,
// denser snow a few degrees colder, everything else at the default rate.
func DefaultAccumulator() Accumulator {
	return Accumulator{
		Bands: []Band{
			{Name: "near-freezing", Min: -3, Max: -1, Rate: 0.05},
			{Name: "cold", Min: -6, Max: -4, Rate: 0.2},
		},
		DefaultRate: 0.5,
		Mode:        BandModeExclusive,
	}
}

// Validate checks band bounds, rates and mode
func (a Accumulator) Validate() error {
	switch a.Mode {
	case BandModeExclusive:
	case BandModeLegacy:
		if len(a.Bands) == 0 {
			return fmt.Errorf("legacy band mode needs at least one band: %w", types.ErrInvalidRange)
		}
	default:
		return fmt.Errorf("unknown band mode %q: %w", a.Mode, types.ErrInvalidRange)
	}

	if a.DefaultRate < 0 {
		return fmt.Errorf("default rate must not be negative: %w", types.ErrInvalidRange)
	}
	for _, b := range a.Bands {
		if b.Min > b.Max {
			return fmt.Errorf("band %q min %.1f exceeds max %.1f: %w", b.Name, b.Min, b.Max, types.ErrInvalidRange)
		}
		if b.Rate < 0 {
			return fmt.Errorf("band %q rate must not be negative: %w", b.Name, types.ErrInvalidRange)
		}
	}
	return nil
}

// Add returns the snow depth that amount of precipitation adds at temp
func (a Accumulator) Add(temp, amount float64) float64 {
	var added float64
	matched := false
	last := len(a.Bands) - 1

	for i, b := range a.Bands {
		if b.Contains(temp) {
			added += amount * b.Rate
			matched = true
			continue
		}
		if a.Mode == BandModeLegacy && i == last {
			added += amount * a.DefaultRate
		}
	}

	if a.Mode == BandModeExclusive && !matched {
		added += amount * a.DefaultRate
	}
	return added
}
