package precip

// bracket is an open pressure interval (Lower, Upper) in hPa
type bracket struct {
	Upper float64
	Lower float64
	Base  float64
}

func (b bracket) contains(pressure float64) bool {
	return b.Upper > pressure && pressure > b.Lower
}

// amountTable maps humidity to its pressure brackets. Brackets are strict, so a
// pressure sitting exactly on a boundary matches nothing and yields zero.
var amountTable = map[int][]bracket{
	100: {
		{Upper: 1009.1, Lower: 1005.8, Base: 1},
		{Upper: 1005.8, Lower: 1002.4, Base: 2},
		{Upper: 1002.4, Lower: 999.0, Base: 3},
		{Upper: 999.0, Lower: 995.6, Base: 4},
	},
	90: {
		{Upper: 1005.8, Lower: 1002.4, Base: 1},
		{Upper: 1002.4, Lower: 999.0, Base: 2},
		{Upper: 999.0, Lower: 995.6, Base: 3},
	},
	80: {
		{Upper: 1002.4, Lower: 999.0, Base: 1},
		{Upper: 999.0, Lower: 995.6, Base: 2},
	},
	70: {
		{Upper: 999.0, Lower: 995.6, Base: 1},
	},
}

// BaseAmount returns the tabulated precipitation for a humidity/pressure pair,
// or zero when the pair is not in the table.
func BaseAmount(humidity int, pressure float64) float64 {
	for _, b := range amountTable[humidity] {
		if b.contains(pressure) {
			return b.Base
		}
	}
	return 0
}
