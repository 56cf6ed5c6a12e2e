package assumptions

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/areumfire/finplan-engine/internal/planerr"
)

// CheckCalibration validates a bundle's internal consistency. It is not
// called from any runtime code path: bundles are compile-time constants
// baked in via go:embed, so the only place a malformed bundle can surface
// is a test against the fixture itself, per spec.md §7.
func CheckCalibration(b Bundle) error {
	if err := checkRegimeProbabilities(b); err != nil {
		return err
	}
	if err := checkCorrelationMatrix(b); err != nil {
		return err
	}
	return nil
}

func checkRegimeProbabilities(b Bundle) error {
	var sum float64
	for _, r := range b.Regimes {
		sum += r.Probability
	}
	if len(b.Regimes) > 0 && math.Abs(sum-1.0) > 1e-6 {
		return planerr.Calibration("regimes", "regime probabilities sum to %f, want 1.0", sum)
	}
	return nil
}

// checkCorrelationMatrix assembles the bundle's full correlation matrix and
// verifies it is symmetric, unit-diagonal, and positive definite. The
// definiteness check uses gonum's Cholesky factorization, which succeeds
// only for positive definite matrices, so a singular (merely semi-definite)
// correlation matrix is rejected as well.
func checkCorrelationMatrix(b Bundle) error {
	ids := make([]AssetID, 0, len(b.Assets))
	for id := range b.Assets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	n := len(ids)
	if n == 0 {
		return nil
	}

	data := make([]float64, n*n)
	for i, a := range ids {
		for j, c := range ids {
			v := b.Correlation(a, c)
			if v < -1.0-1e-9 || v > 1.0+1e-9 {
				return planerr.Calibration("correlations", "correlation(%s,%s)=%f out of [-1,1]", a, c, v)
			}
			data[i*n+j] = v
		}
	}

	for i := 0; i < n; i++ {
		if math.Abs(data[i*n+i]-1.0) > 1e-9 {
			return planerr.Calibration("correlations", "diagonal entry for %s is %f, want 1.0", ids[i], data[i*n+i])
		}
		for j := i + 1; j < n; j++ {
			if math.Abs(data[i*n+j]-data[j*n+i]) > 1e-9 {
				return planerr.Calibration("correlations", "correlation(%s,%s) is asymmetric", ids[i], ids[j])
			}
		}
	}

	sym := mat.NewSymDense(n, data)
	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return planerr.Calibration("correlations", "correlation matrix is not positive definite")
	}
	return nil
}
