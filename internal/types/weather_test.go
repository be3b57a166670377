package types

import (
	"math"
	"testing"
)

func TestRoundTenth(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{1006.04, 1006.0},
		{1006.05, 1006.1},
		{-2.35, -2.4},
		{-0.04, 0},
		{0.04, 0},
	}

	for _, tt := range tests {
		got := RoundTenth(tt.in)
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("RoundTenth(%v) = %v, expected %v", tt.in, got, tt.expected)
		}
		if got == 0 && math.Signbit(got) {
			t.Errorf("RoundTenth(%v) returned -0", tt.in)
		}
	}
}
