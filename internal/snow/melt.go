package snow

// MeltAmount returns the snow lost at a whole-degree temperature above freezing.
// Anything else, including fractional temperatures, melts nothing.
func MeltAmount(temp float64) float64 {
	switch temp {
	case 1:
		return 0.05
	case 2:
		return 0.1
	case 3:
		return 0.15
	default:
		return 0
	}
}
