package numeric

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/areumfire/finplan-engine/internal/planerr"
)

// Mean returns the arithmetic mean, 0 for an empty input.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// Median returns the 50th percentile via Percentile's linear interpolation.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	p, _ := Percentile(xs, 50)
	return p
}

// StdDev returns the sample standard deviation (Bessel-corrected, N-1
// divisor). 0 for inputs with fewer than two observations. The choice of
// sample over population divisor is fixed here and used consistently by
// every caller in this module, per spec.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}

// Percentile returns the p-th percentile (0-100) of xs using linear
// interpolation between adjacent ranks. p=0 returns the min, p=100 the max.
func Percentile(xs []float64, p float64) (float64, error) {
	if p < 0 || p > 100 {
		return 0, planerr.Validation("p", "percentile must be in [0, 100], got %v", p)
	}
	if len(xs) == 0 {
		return 0, nil
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0], nil
	}

	rank := (p / 100) * float64(len(sorted)-1)
	lo := int(rank)
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[len(sorted)-1], nil
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo]), nil
}

// PearsonCorrelation returns the Pearson correlation coefficient of two
// equal-length vectors, or 0 if either has zero variance.
func PearsonCorrelation(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, planerr.Validation("ys", "vectors must have equal length, got %d and %d", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return 0, nil
	}
	if StdDev(xs) == 0 || StdDev(ys) == 0 {
		return 0, nil
	}
	return stat.Correlation(xs, ys, nil), nil
}
