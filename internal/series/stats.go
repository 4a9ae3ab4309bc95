package series

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultBins is the bucket count used for mutual information when callers
// have no reason to pick another.
const DefaultBins = 10

// ErrBins is returned when a mutual-information bin count is below 2.
var ErrBins = errors.New("bin count must be at least 2")

// Correlation returns the Pearson correlation of the two series over their
// aligned timestamps. Rows where either aligned value is NaN (resampling
// gaps) are dropped before measuring. Symmetric, in [-1, 1]. NaN when fewer
// than 2 complete rows remain or when either column has zero variance.
func (s *Series) Correlation(other *Series) float64 {
	x, y := completeRows(s.AlignWith(other))
	if len(x) < 2 {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}

// MutualInformation returns the discrete mutual information, in nats, between
// the two series over their aligned timestamps. Rows where either aligned
// value is NaN are dropped, the same policy as Correlation. Each surviving
// column is independently discretized into bins equal-width buckets over its
// own min..max range. Non-negative; NaN when no complete rows remain.
func (s *Series) MutualInformation(other *Series, bins int) (float64, error) {
	if bins < 2 {
		return 0, ErrBins
	}
	x, y := completeRows(s.AlignWith(other))
	if len(x) == 0 {
		return math.NaN(), nil
	}
	return mutualInfo(discretize(x, bins), discretize(y, bins), bins), nil
}

// completeRows drops aligned rows where either column is NaN.
func completeRows(a Aligned) (x, y []float64) {
	for i := range a.Series1 {
		if math.IsNaN(a.Series1[i]) || math.IsNaN(a.Series2[i]) {
			continue
		}
		x = append(x, a.Series1[i])
		y = append(y, a.Series2[i])
	}
	return x, y
}

// discretize maps each value to an equal-width bucket index in [0, bins).
// A constant column collapses into bucket 0.
func discretize(vals []float64, bins int) []int {
	lo := floats.Min(vals)
	width := (floats.Max(vals) - lo) / float64(bins)

	out := make([]int, len(vals))
	for i, v := range vals {
		if width == 0 {
			continue
		}
		b := int((v - lo) / width)
		if b >= bins {
			b = bins - 1 // the max value lands on the upper edge
		}
		out[i] = b
	}
	return out
}

// mutualInfo computes I(X;Y) = sum p(x,y) ln(p(x,y)/(p(x)p(y))) over the
// joint bucket counts, skipping empty cells.
func mutualInfo(x, y []int, bins int) float64 {
	n := float64(len(x))
	joint := make([]float64, bins*bins)
	rowSum := make([]float64, bins)
	colSum := make([]float64, bins)
	for i := range x {
		joint[x[i]*bins+y[i]]++
		rowSum[x[i]]++
		colSum[y[i]]++
	}

	mi := 0.0
	for i := 0; i < bins; i++ {
		for j := 0; j < bins; j++ {
			c := joint[i*bins+j]
			if c == 0 {
				continue
			}
			mi += (c / n) * math.Log(c*n/(rowSum[i]*colSum[j]))
		}
	}
	if mi < 0 {
		mi = 0 // rounding can push an independent pair fractionally negative
	}
	return mi
}
