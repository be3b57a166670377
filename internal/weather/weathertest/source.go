// Package weathertest provides scripted random sources for tests.
package weathertest

// ScriptedSource replays fixed draws in order, cycling when a script runs out.
// IntRange pulls from Ints, SteppedRange from Steps and FloatRange from Floats.
// Draws are not clamped to the requested range.
type ScriptedSource struct {
	Ints   []int
	Steps  []int
	Floats []float64

	ii, si, fi int
}

func (s *ScriptedSource) IntRange(min, max int) int {
	if len(s.Ints) == 0 {
		return min
	}
	v := s.Ints[s.ii%len(s.Ints)]
	s.ii++
	return v
}

func (s *ScriptedSource) FloatRange(min, max float64) float64 {
	if len(s.Floats) == 0 {
		return min
	}
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return v
}

func (s *ScriptedSource) SteppedRange(low, high, step int) int {
	if len(s.Steps) == 0 {
		return low
	}
	v := s.Steps[s.si%len(s.Steps)]
	s.si++
	return v
}
