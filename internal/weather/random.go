package weather

import "math/rand"

// RandomSource supplies the uniform draws the generator needs. Tests inject
// scripted sources; production runs use a seeded MathRandSource.
type RandomSource interface {
	// IntRange returns an integer in [min, max], both inclusive
	IntRange(min, max int) int

	// FloatRange returns a real number in [min, max]
	FloatRange(min, max float64) float64

	// SteppedRange returns low + k*step for some k >= 0, strictly below high
	SteppedRange(low, high, step int) int
}

// MathRandSource is a RandomSource backed by math/rand
type MathRandSource struct {
	r *rand.Rand
}

// NewRandomSource returns a deterministic source for the given seed
func NewRandomSource(seed int64) *MathRandSource {
	return &MathRandSource{r: rand.New(rand.NewSource(seed))}
}

func (m *MathRandSource) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + m.r.Intn(max-min+1)
}

func (m *MathRandSource) FloatRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + m.r.Float64()*(max-min)
}

func (m *MathRandSource) SteppedRange(low, high, step int) int {
	n := steps(low, high, step)
	if n <= 1 {
		return low
	}
	return low + step*m.r.Intn(n)
}

// steps counts the values low, low+step, ... that are strictly below high
func steps(low, high, step int) int {
	if step <= 0 || high <= low {
		return 0
	}
	return (high - low + step - 1) / step
}
