package projector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/areumfire/finplan-engine/internal/assumptions"
)

func bundle(t *testing.T) assumptions.Bundle {
	t.Helper()
	b, err := assumptions.Get("IN", "2024-Q4")
	require.NoError(t, err)
	return b
}

func baselineInputs() Inputs {
	return Inputs{
		CurrentAge:        30,
		RetirementAge:     60,
		LifeExpectancy:    85,
		CurrentSavings:    1_000_000,
		MonthlyInvestment: 25_000,
		MonthlyExpenses:   50_000,
		AssetAllocation: map[assumptions.AssetID]float64{
			"equity_index": 70,
			"debt_index":   30,
		},
	}
}

func findAge(t *testing.T, timeline []YearlyRecord, age int) YearlyRecord {
	t.Helper()
	for _, r := range timeline {
		if r.Age == age {
			return r
		}
	}
	t.Fatalf("no timeline entry for age %d", age)
	return YearlyRecord{}
}

func TestBaselineProjection(t *testing.T) {
	b := bundle(t)
	result, err := Project(baselineInputs(), b)
	require.NoError(t, err)

	require.Len(t, result.Timeline, 55)

	at59 := findAge(t, result.Timeline, 59)
	at60 := findAge(t, result.Timeline, 60)
	require.Greater(t, at59.Contributions, 0.0)
	require.Equal(t, 0.0, at60.Contributions)
	require.Equal(t, 0.0, at59.Withdrawals)
	require.Greater(t, at60.Withdrawals, 0.0)

	require.Greater(t, result.RetirementCorpusNeeded, 10_000_000.0)

	at40 := findAge(t, result.Timeline, 40)
	at50 := findAge(t, result.Timeline, 50)
	require.Greater(t, at50.PortfolioValue, at40.PortfolioValue)
}

func TestDepletionDetection(t *testing.T) {
	b := bundle(t)
	in := baselineInputs()
	in.CurrentSavings = 100_000
	in.MonthlyInvestment = 5_000

	result, err := Project(in, b)
	require.NoError(t, err)

	require.Equal(t, MetricDepletion, result.SuccessMetric)
	require.NotNil(t, result.DepletionAge)
	require.Less(t, len(result.Timeline), 55)
}

func TestSurplusDetection(t *testing.T) {
	b := bundle(t)
	in := baselineInputs()
	in.CurrentSavings = 50_000_000
	in.MonthlyInvestment = 100_000

	result, err := Project(in, b)
	require.NoError(t, err)

	require.Equal(t, MetricSurplus, result.SuccessMetric)
	require.Greater(t, result.FinalPortfolioValue, result.RetirementCorpusNeeded*2)
}

func TestAllocationErrorRejectsBadWeights(t *testing.T) {
	b := bundle(t)
	in := baselineInputs()
	in.AssetAllocation = map[assumptions.AssetID]float64{
		"equity_index": 70,
		"debt_index":   20,
	}

	_, err := Project(in, b)
	require.Error(t, err)
	require.Contains(t, err.Error(), "allocation")
}

func TestProjectionIsDeterministic(t *testing.T) {
	b := bundle(t)
	in := baselineInputs()

	r1, err := Project(in, b)
	require.NoError(t, err)
	r2, err := Project(in, b)
	require.NoError(t, err)
	require.Equal(t, r1, r2)
}

func TestTimelineYearOffsetsAreStrictlyIncreasing(t *testing.T) {
	b := bundle(t)
	result, err := Project(baselineInputs(), b)
	require.NoError(t, err)

	for i, r := range result.Timeline {
		require.Equal(t, i, r.YearOffset)
	}
}

func TestPortfolioValueNeverNegative(t *testing.T) {
	b := bundle(t)
	in := baselineInputs()
	in.CurrentSavings = 0
	in.MonthlyInvestment = 0

	result, err := Project(in, b)
	require.NoError(t, err)
	for _, r := range result.Timeline {
		require.GreaterOrEqual(t, r.PortfolioValue, 0.0)
	}
}

func TestUnknownAssetInAllocationIsValidationError(t *testing.T) {
	b := bundle(t)
	in := baselineInputs()
	in.AssetAllocation = map[assumptions.AssetID]float64{
		"not_a_real_asset": 100,
	}
	_, err := Project(in, b)
	require.Error(t, err)
}
