package adapter

import (
	"github.com/areumfire/finplan-engine/internal/assumptions"
	"github.com/areumfire/finplan-engine/internal/projector"
)

var portfolioProjectionSteps = []Step{
	{Label: "Validating household inputs", DurationMs: 180},
	{Label: "Loading market assumptions", DurationMs: 120},
	{Label: "Projecting portfolio value over time", DurationMs: 340},
	{Label: "Marking milestone ages", DurationMs: 90},
}

// Milestone is the projected portfolio value at one milestone age.
type Milestone struct {
	Age            int
	PortfolioValue float64
}

// PortfolioReport is the report shape for PortfolioProjection.
type PortfolioReport struct {
	Milestones         []Milestone
	FinalPortfolioValue float64
	AssumptionsVersion  string
}

// milestoneAges are the ages the UI highlights on a portfolio projection
// chart. Ages the household's timeline never reaches (because the
// projection starts later, or ends earlier on depletion) are simply
// omitted, never padded.
var milestoneAges = []int{40, 50, 60}

// Milestones pulls the timeline entries at ages 40, 50, and 60 out of a
// projection result. An age the timeline never reaches — because the
// household starts later in life, or the portfolio depletes early — is
// simply omitted, never padded with a zero.
func Milestones(result projector.Result) []Milestone {
	byAge := make(map[int]float64, len(result.Timeline))
	for _, r := range result.Timeline {
		byAge[r.Age] = r.PortfolioValue
	}

	milestones := make([]Milestone, 0, len(milestoneAges))
	for _, age := range milestoneAges {
		if v, ok := byAge[age]; ok {
			milestones = append(milestones, Milestone{Age: age, PortfolioValue: v})
		}
	}
	return milestones
}

// PortfolioProjection runs the deterministic projector and highlights the
// portfolio value at ages 40, 50, and 60, per spec.md §4.7.
func PortfolioProjection(in projector.Inputs, bundle assumptions.Bundle) (Response, error) {
	result, err := projector.Project(in, bundle)
	if err != nil {
		return Response{}, err
	}

	return Response{
		Steps: portfolioProjectionSteps,
		Report: PortfolioReport{
			Milestones:          Milestones(result),
			FinalPortfolioValue: result.FinalPortfolioValue,
			AssumptionsVersion:  result.AssumptionsVersion,
		},
	}, nil
}
