// Package stats computes the descriptive statistics used by the report.
package stats

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Summary describes the non-missing values of a numeric column.
// Fields are NaN when undefined: everything for an empty sample, Std for a
// single value.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	Std    float64
	Min    float64
	Max    float64
}

// Describe computes count, mean, median, sample standard deviation, min and max.
// NaN inputs are ignored.
func Describe(values []float64) Summary {
	s := stats.Sample{Xs: dropNaN(values)}
	out := Summary{Count: len(s.Xs)}
	if out.Count == 0 {
		nan := math.NaN()
		out.Mean, out.Median, out.Std, out.Min, out.Max = nan, nan, nan, nan, nan
		return out
	}
	s.Sort()
	out.Mean = s.Mean()
	out.Median = quantile(s.Xs, 0.5)
	out.Min, out.Max = s.Bounds()
	if out.Count < 2 {
		out.Std = math.NaN()
	} else {
		out.Std = s.StdDev()
	}
	return out
}

func dropNaN(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
