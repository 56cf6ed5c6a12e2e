package adapter

import (
	"github.com/areumfire/finplan-engine/internal/assumptions"
	"github.com/areumfire/finplan-engine/internal/projector"
)

var retirementOptimizationSteps = []Step{
	{Label: "Validating household inputs", DurationMs: 180},
	{Label: "Loading market assumptions", DurationMs: 120},
	{Label: "Projecting retirement cashflows", DurationMs: 340},
	{Label: "Evaluating corpus adequacy", DurationMs: 160},
}

// RetirementReport is the report shape for RetirementOptimization.
type RetirementReport struct {
	CorpusAtRetirement float64
	CorpusNeeded       float64
	FinalPortfolioValue float64
	SuccessMetric      projector.SuccessMetric
	Recommendation     string
	AssumptionsVersion string
}

// RetirementOptimization runs the deterministic projector and summarizes
// whether the household is on track for retirement, per spec.md §4.7.
func RetirementOptimization(in projector.Inputs, bundle assumptions.Bundle) (Response, error) {
	result, err := projector.Project(in, bundle)
	if err != nil {
		return Response{}, err
	}

	var recommendation string
	switch result.SuccessMetric {
	case projector.MetricDepletion:
		recommendation = "portfolio depletes before life expectancy; increase contributions or reduce planned expenses"
	case projector.MetricShortfall:
		recommendation = "projected corpus falls short of the target by more than 10%; consider raising monthly investment"
	case projector.MetricOnTrack:
		recommendation = "projected corpus is within 10% of the target; household is on track"
	case projector.MetricSurplus:
		recommendation = "projected corpus exceeds the target; household has room to fund additional goals"
	}

	return Response{
		Steps: retirementOptimizationSteps,
		Report: RetirementReport{
			CorpusAtRetirement:  result.ProjectedCorpusAtRetirement,
			CorpusNeeded:        result.RetirementCorpusNeeded,
			FinalPortfolioValue: result.FinalPortfolioValue,
			SuccessMetric:       result.SuccessMetric,
			Recommendation:      recommendation,
			AssumptionsVersion:  result.AssumptionsVersion,
		},
	}, nil
}
