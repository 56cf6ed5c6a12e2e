package numeric

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeanMedianEmpty(t *testing.T) {
	require.Equal(t, 0.0, Mean(nil))
	require.Equal(t, 0.0, Median(nil))
	require.Equal(t, 0.0, StdDev(nil))
}

func TestMean(t *testing.T) {
	require.InDelta(t, 3.0, Mean([]float64{1, 2, 3, 4, 5}), 1e-9)
}

func TestPercentileBounds(t *testing.T) {
	xs := []float64{5, 1, 3, 2, 4}
	lo, err := Percentile(xs, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, lo)

	hi, err := Percentile(xs, 100)
	require.NoError(t, err)
	require.Equal(t, 5.0, hi)

	mid, err := Percentile(xs, 50)
	require.NoError(t, err)
	require.Equal(t, 3.0, mid)
}

func TestPercentileInterpolates(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	p, err := Percentile(xs, 25)
	require.NoError(t, err)
	require.InDelta(t, 1.75, p, 1e-9)
}

func TestPercentileRejectsOutOfRange(t *testing.T) {
	_, err := Percentile([]float64{1, 2, 3}, 101)
	require.Error(t, err)
	_, err = Percentile([]float64{1, 2, 3}, -1)
	require.Error(t, err)
}

func TestPearsonCorrelationZeroVariance(t *testing.T) {
	c, err := PearsonCorrelation([]float64{1, 1, 1}, []float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 0.0, c)
}

func TestPearsonCorrelationPerfect(t *testing.T) {
	c, err := PearsonCorrelation([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
	require.NoError(t, err)
	require.InDelta(t, 1.0, c, 1e-9)
}

func TestPearsonCorrelationRejectsMismatchedLengths(t *testing.T) {
	_, err := PearsonCorrelation([]float64{1, 2}, []float64{1, 2, 3})
	require.Error(t, err)
}
