package numeric

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeededRNGDeterministic(t *testing.T) {
	a := NewSeededRNG(42)
	b := NewSeededRNG(42)

	for i := 0; i < 1000; i++ {
		require.Equal(t, a.StandardNormal(), b.StandardNormal())
	}
}

func TestSeededRNGDistinctSeedsDiverge(t *testing.T) {
	a := NewSeededRNG(1)
	b := NewSeededRNG(2)

	same := true
	for i := 0; i < 50; i++ {
		if a.StandardNormal() != b.StandardNormal() {
			same = false
			break
		}
	}
	require.False(t, same)
}

func TestSeededRNGFloat64InUnitInterval(t *testing.T) {
	r := NewSeededRNG(7)
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestSeededRNGNormalRoughlyCentered(t *testing.T) {
	r := NewSeededRNG(99)
	var sum float64
	const n = 20000
	for i := 0; i < n; i++ {
		sum += r.Normal(0, 1)
	}
	mean := sum / n
	require.InDelta(t, 0, mean, 0.05)
}
