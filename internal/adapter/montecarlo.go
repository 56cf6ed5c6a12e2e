package adapter

import (
	"fmt"

	"github.com/areumfire/finplan-engine/internal/assumptions"
	"github.com/areumfire/finplan-engine/internal/montecarlo"
	"github.com/areumfire/finplan-engine/internal/projector"
)

var monteCarloRetirementSteps = []Step{
	{Label: "Validating household inputs", DurationMs: 180},
	{Label: "Loading market assumptions", DurationMs: 120},
	{Label: "Running 1,000 simulated futures", DurationMs: 620},
	{Label: "Ranking outcomes by terminal value", DurationMs: 140},
}

// MonteCarloReport is the report shape for MonteCarloRetirement.
type MonteCarloReport struct {
	SuccessProbability float64
	MedianOutcome      float64
	P10TerminalValue   float64
	P90TerminalValue   float64
	Recommendation     string
	AssumptionsVersion string
}

// MonteCarloRetirement runs the simulator with the spec's fixed defaults
// (N=1000, seed=42) and summarizes the outcome distribution, per
// spec.md §4.7.
func MonteCarloRetirement(in projector.Inputs, bundle assumptions.Bundle) (Response, error) {
	cfg := montecarlo.DefaultConfig()
	result, err := montecarlo.Run(in, bundle, cfg)
	if err != nil {
		return Response{}, err
	}

	p10Terminal := terminalValue(result.P10)
	p90Terminal := terminalValue(result.P90)

	var recommendation string
	if result.SuccessProbability < 0.8 {
		monthsUntilRetirement := (in.RetirementAge - in.CurrentAge) * 12
		gap := result.P50.RetirementCorpusNeeded - result.P50.ProjectedCorpusAtRetirement
		if gap < 0 {
			gap = 0
		}
		var raise float64
		if monthsUntilRetirement > 0 {
			raise = gap / float64(monthsUntilRetirement)
		}
		recommendation = fmt.Sprintf(
			"success probability %.1f%% is below the 80%% target; consider raising the monthly SIP by roughly %.2f",
			result.SuccessProbability*100, raise,
		)
	} else {
		recommendation = fmt.Sprintf("success probability %.1f%% meets the 80%% target", result.SuccessProbability*100)
	}

	return Response{
		Steps: monteCarloRetirementSteps,
		Report: MonteCarloReport{
			SuccessProbability: result.SuccessProbability,
			MedianOutcome:      result.MedianOutcome,
			P10TerminalValue:   p10Terminal,
			P90TerminalValue:   p90Terminal,
			Recommendation:     recommendation,
			AssumptionsVersion: result.AssumptionsVersion,
		},
	}, nil
}

func terminalValue(r projector.Result) float64 {
	if len(r.Timeline) == 0 {
		return 0
	}
	return r.Timeline[len(r.Timeline)-1].PortfolioValue
}
