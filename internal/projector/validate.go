package projector

import (
	"math"

	"github.com/areumfire/finplan-engine/internal/assumptions"
	"github.com/areumfire/finplan-engine/internal/planerr"
)

const allocationTolerance = 0.01

// Validate enforces spec.md §3.2's documented invariants before any
// projection runs. It never mutates inputs; callers that want clamping
// (spec.md §4.3 step 1's "round ages to integers; clamp monetary inputs")
// are expected to have already produced a well-formed Inputs value — this
// function only verifies, it does not sanitize.
func Validate(in Inputs, bundle assumptions.Bundle) error {
	if in.CurrentAge < 18 || in.CurrentAge > 100 {
		return planerr.Validation("current_age", "current_age must be in [18, 100], got %d", in.CurrentAge)
	}
	if in.RetirementAge <= in.CurrentAge {
		return planerr.Validation("retirement_age", "retirement_age (%d) must exceed current_age (%d)", in.RetirementAge, in.CurrentAge)
	}
	if in.LifeExpectancy <= in.RetirementAge {
		return planerr.Validation("life_expectancy", "life_expectancy (%d) must exceed retirement_age (%d)", in.LifeExpectancy, in.RetirementAge)
	}
	if in.CurrentSavings < 0 {
		return planerr.Validation("current_savings", "current_savings must be non-negative, got %f", in.CurrentSavings)
	}
	if in.MonthlyInvestment < 0 {
		return planerr.Validation("monthly_investment", "monthly_investment must be non-negative, got %f", in.MonthlyInvestment)
	}
	if in.MonthlyExpenses < 0 {
		return planerr.Validation("monthly_expenses", "monthly_expenses must be non-negative, got %f", in.MonthlyExpenses)
	}

	if len(in.AssetAllocation) == 0 {
		return planerr.Validation("asset_allocation", "asset_allocation must not be empty")
	}
	var sum float64
	for id, weight := range in.AssetAllocation {
		if weight < 0 || weight > 100 {
			return planerr.Validation("asset_allocation", "weight for %s must be in [0, 100], got %f", id, weight)
		}
		if !bundle.HasAsset(id) {
			return planerr.Validation("asset_allocation", "asset %s is not present in assumptions bundle %s", id, bundle.Key())
		}
		sum += weight
	}
	if math.Abs(sum-100.0) > allocationTolerance {
		return planerr.Validation("asset_allocation", "asset_allocation weights must sum to 100%%, got %f", sum)
	}

	return nil
}
