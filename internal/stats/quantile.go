package stats

import (
	"math"
	"sort"
)

// Quartiles returns the 25th, 50th and 75th percentiles of values using linear
// interpolation between closest ranks. NaN inputs are ignored.
func Quartiles(values []float64) (q1, q2, q3 float64) {
	cp := dropNaN(values)
	sort.Float64s(cp)
	return quantile(cp, 0.25), quantile(cp, 0.5), quantile(cp, 0.75)
}

func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
