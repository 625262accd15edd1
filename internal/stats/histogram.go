package stats

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

const maxBins = 200

// Bin is one histogram bucket covering [Lo, Hi); the last bin includes Hi.
type Bin struct {
	Lo, Hi float64
	Count  int
}

// Histogram buckets the non-NaN values into equal-width bins. The bin count
// follows the "auto" rule: the smaller width of Sturges and
// Freedman-Diaconis, falling back to Sturges when the IQR is zero.
func Histogram(values []float64) []Bin {
	xs := dropNaN(values)
	if len(xs) == 0 {
		return nil
	}
	sort.Float64s(xs)
	lo, hi := xs[0], xs[len(xs)-1]
	nb := 1
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	} else {
		nb = binCount(xs, hi-lo)
	}
	width := (hi - lo) / float64(nb)
	bins := make([]Bin, nb)
	for i := range bins {
		bins[i] = Bin{Lo: lo + float64(i)*width, Hi: lo + float64(i+1)*width}
	}
	bins[nb-1].Hi = hi
	for _, x := range xs {
		i := int((x - lo) / width)
		if i >= nb {
			i = nb - 1
		}
		if i < 0 {
			i = 0
		}
		bins[i].Count++
	}
	return bins
}

func binCount(sorted []float64, span float64) int {
	n := float64(len(sorted))
	sturges := span / (math.Log2(n) + 1)
	width := sturges
	iqr := quantile(sorted, 0.75) - quantile(sorted, 0.25)
	if fd := 2 * iqr * math.Pow(n, -1.0/3); fd > 0 && fd < sturges {
		width = fd
	}
	nb := int(math.Ceil(span / width))
	if nb < 1 {
		nb = 1
	}
	if nb > maxBins {
		nb = maxBins
	}
	return nb
}

// DensityPoint is one sample of a kernel density curve.
type DensityPoint struct {
	X, Y float64
}

// Density evaluates a Gaussian kernel density estimate of the non-NaN values
// at points evenly spaced over [min, max], scaled by scale (use
// count*binWidth to overlay a histogram). It returns nil when the sample has
// fewer than two distinct values.
func Density(values []float64, points int, scale float64) []DensityPoint {
	s := stats.Sample{Xs: dropNaN(values)}
	if len(s.Xs) < 2 || points < 2 {
		return nil
	}
	lo, hi := s.Bounds()
	if lo == hi {
		return nil
	}
	kde := &stats.KDE{Sample: s}
	out := make([]DensityPoint, points)
	step := (hi - lo) / float64(points-1)
	for i := range out {
		x := lo + float64(i)*step
		out[i] = DensityPoint{X: x, Y: kde.PDF(x) * scale}
	}
	return out
}
