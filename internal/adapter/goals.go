package adapter

import (
	"github.com/areumfire/finplan-engine/internal/assumptions"
	"github.com/areumfire/finplan-engine/internal/goals"
)

var goalFundingSteps = []Step{
	{Label: "Validating goals and budget", DurationMs: 140},
	{Label: "Prioritizing goals", DurationMs: 90},
	{Label: "Allocating monthly budget", DurationMs: 160},
}

// GoalReport is the report shape for GoalFunding.
type GoalReport struct {
	goals.Result
}

// GoalFunding runs the goal allocator against a provided monthly budget,
// per spec.md §4.7.
func GoalFunding(goalsIn []goals.Input, monthlyBudget float64, bundle assumptions.Bundle, currentYear int) (Response, error) {
	result, err := goals.Allocate(goalsIn, monthlyBudget, bundle, currentYear)
	if err != nil {
		return Response{}, err
	}
	return Response{
		Steps:  goalFundingSteps,
		Report: GoalReport{Result: result},
	}, nil
}
