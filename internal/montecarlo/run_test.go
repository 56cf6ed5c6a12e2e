package montecarlo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/areumfire/finplan-engine/internal/assumptions"
	"github.com/areumfire/finplan-engine/internal/projector"
)

func bundle(t *testing.T) assumptions.Bundle {
	t.Helper()
	b, err := assumptions.Get("IN", "2024-Q4")
	require.NoError(t, err)
	return b
}

func baselineInputs(equity, debt float64) projector.Inputs {
	return projector.Inputs{
		CurrentAge:        30,
		RetirementAge:     60,
		LifeExpectancy:    85,
		CurrentSavings:    1_000_000,
		MonthlyInvestment: 25_000,
		MonthlyExpenses:   50_000,
		AssetAllocation: map[assumptions.AssetID]float64{
			"equity_index": equity,
			"debt_index":   debt,
		},
	}
}

func TestMonteCarloReproducibility(t *testing.T) {
	b := bundle(t)
	in := baselineInputs(70, 30)
	cfg := Config{NumSimulations: 100, Seed: 12345, TimeStep: Annual}

	r1, err := Run(in, b, cfg)
	require.NoError(t, err)
	r2, err := Run(in, b, cfg)
	require.NoError(t, err)

	require.Equal(t, r1.SuccessProbability, r2.SuccessProbability)
	require.Equal(t, r1.MedianOutcome, r2.MedianOutcome)
}

func TestMonteCarloRiskMonotonicity(t *testing.T) {
	b := bundle(t)
	cfg := Config{NumSimulations: 200, Seed: 7, TimeStep: Annual}

	conservative, err := Run(baselineInputs(30, 70), b, cfg)
	require.NoError(t, err)
	aggressive, err := Run(baselineInputs(90, 10), b, cfg)
	require.NoError(t, err)

	require.Greater(t, aggressive.TerminalDistribution.StdDev, conservative.TerminalDistribution.StdDev)
}

func TestMonteCarloPercentileMonotonicity(t *testing.T) {
	b := bundle(t)
	in := baselineInputs(70, 30)
	cfg := Config{NumSimulations: 300, Seed: 42, TimeStep: Annual}

	result, err := Run(in, b, cfg)
	require.NoError(t, err)

	p10 := result.P10.Timeline[len(result.P10.Timeline)-1].PortfolioValue
	p50 := result.P50.Timeline[len(result.P50.Timeline)-1].PortfolioValue
	p90 := result.P90.Timeline[len(result.P90.Timeline)-1].PortfolioValue

	require.LessOrEqual(t, p10, p50)
	require.LessOrEqual(t, p50, p90)
}

func TestMonteCarloSuccessComplementsShortfall(t *testing.T) {
	b := bundle(t)
	in := baselineInputs(70, 30)
	cfg := Config{NumSimulations: 150, Seed: 99, TimeStep: Annual}

	result, err := Run(in, b, cfg)
	require.NoError(t, err)
	require.InDelta(t, 1.0, result.SuccessProbability+result.ShortfallRisk.Probability, 1e-12)
}

func TestMonteCarloRejectsNonPositiveSimulations(t *testing.T) {
	b := bundle(t)
	_, err := Run(baselineInputs(70, 30), b, Config{NumSimulations: 0, Seed: 1})
	require.Error(t, err)
}

func TestMonteCarloWorkerCountDoesNotAffectResult(t *testing.T) {
	b := bundle(t)
	in := baselineInputs(70, 30)

	sequential, err := Run(in, b, Config{NumSimulations: 120, Seed: 55, TimeStep: Annual, Workers: 1})
	require.NoError(t, err)
	parallel, err := Run(in, b, Config{NumSimulations: 120, Seed: 55, TimeStep: Annual, Workers: 8})
	require.NoError(t, err)

	require.Equal(t, sequential.SuccessProbability, parallel.SuccessProbability)
	require.Equal(t, sequential.MedianOutcome, parallel.MedianOutcome)
	require.Equal(t, sequential.TerminalDistribution.TerminalValues, parallel.TerminalDistribution.TerminalValues)
}

func TestMonteCarloRejectsMonthlyTimeStep(t *testing.T) {
	b := bundle(t)
	_, err := Run(baselineInputs(70, 30), b, Config{NumSimulations: 10, Seed: 1, TimeStep: Monthly})
	require.Error(t, err)
}
