package stats

import (
	"fmt"
	"math"
)

// CorrMatrix holds a symmetric Pearson correlation matrix across numeric columns.
type CorrMatrix struct {
	Columns []string
	Values  [][]float64 // row-major, Values[i][j]
}

type pairAcc struct {
	n     float64
	sumX  float64
	sumY  float64
	sumXX float64
	sumYY float64
	sumXY float64
}

func (pa *pairAcc) add(x, y float64) {
	pa.n++
	pa.sumX += x
	pa.sumY += y
	pa.sumXX += x * x
	pa.sumYY += y * y
	pa.sumXY += x * y
}

// r returns the coefficient, NaN when fewer than two pairs exist or either side is constant.
func (pa *pairAcc) r() float64 {
	if pa.n < 2 {
		return math.NaN()
	}
	denom := math.Sqrt((pa.n*pa.sumXX - pa.sumX*pa.sumX) * (pa.n*pa.sumYY - pa.sumY*pa.sumY))
	if denom == 0 || math.IsNaN(denom) {
		return math.NaN()
	}
	r := (pa.n*pa.sumXY - pa.sumX*pa.sumY) / denom
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}

// Correlation computes pairwise Pearson coefficients using, for each pair,
// only the rows where both values are present (NaN marks missing).
func Correlation(names []string, cols [][]float64) (*CorrMatrix, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("correlation: %d names for %d columns", len(names), len(cols))
	}
	n := len(cols)
	for i := 1; i < n; i++ {
		if len(cols[i]) != len(cols[0]) {
			return nil, fmt.Errorf("correlation: column %q has %d rows, expected %d", names[i], len(cols[i]), len(cols[0]))
		}
	}
	mat := make([][]float64, n)
	for i := range mat {
		mat[i] = make([]float64, n)
	}
	for a := 0; a < n; a++ {
		for b := a; b < n; b++ {
			var pa pairAcc
			for row := range cols[a] {
				x, y := cols[a][row], cols[b][row]
				if math.IsNaN(x) || math.IsNaN(y) {
					continue
				}
				pa.add(x, y)
			}
			r := pa.r()
			if a == b && !math.IsNaN(r) {
				r = 1
			}
			mat[a][b] = r
			mat[b][a] = r
		}
	}
	return &CorrMatrix{Columns: append([]string(nil), names...), Values: mat}, nil
}
