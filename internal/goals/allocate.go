package goals

import (
	"fmt"
	"math"
	"sort"

	"github.com/areumfire/finplan-engine/internal/assumptions"
	"github.com/areumfire/finplan-engine/internal/numeric"
	"github.com/areumfire/finplan-engine/internal/planerr"
)

// plannedGoal carries the per-goal figures computed in step 2 of spec.md
// §4.5, ahead of the priority sort and greedy allocation.
type plannedGoal struct {
	input         Input
	years         int
	fvTarget      float64
	grownSavings  float64
	remainingNeed float64
	requiredSIP   float64
}

// Allocate distributes monthlyBudget across goals by priority, per
// spec.md §4.5. currentYear is the calendar year allocation is computed
// against; it is an explicit parameter (rather than an implicit read of
// wall-clock time) so that, like every other engine entry point, identical
// arguments always produce an identical result.
func Allocate(goalsIn []Input, monthlyBudget float64, bundle assumptions.Bundle, currentYear int) (Result, error) {
	if monthlyBudget < 0 {
		return Result{}, planerr.Validation("monthly_budget", "monthly_budget must be non-negative, got %v", monthlyBudget)
	}

	inflation := bundle.Inflation.Mean()

	planned := make([]plannedGoal, 0, len(goalsIn))
	for _, g := range goalsIn {
		g = g.withID()
		years := g.TargetYear - currentYear
		if years <= 0 {
			return Result{}, planerr.Validation("target_year", "goal %q target_year must be strictly in the future, got %d", g.ID, g.TargetYear)
		}

		fvTarget := g.TargetAmount * math.Pow(1+inflation, float64(years))

		grownSavings, err := numeric.FutureValue(g.CurrentSavings, PlanningAnnualReturn, years)
		if err != nil {
			return Result{}, err
		}

		remainingNeed := fvTarget - grownSavings
		if remainingNeed < 0 {
			remainingNeed = 0
		}

		var requiredSIP float64
		if remainingNeed > 0 {
			requiredSIP, err = numeric.RequiredPayment(remainingNeed, PlanningAnnualReturn/12, years*12, true)
			if err != nil {
				return Result{}, err
			}
		}

		planned = append(planned, plannedGoal{
			input:         g,
			years:         years,
			fvTarget:      fvTarget,
			grownSavings:  grownSavings,
			remainingNeed: remainingNeed,
			requiredSIP:   requiredSIP,
		})
	}

	sort.SliceStable(planned, func(i, j int) bool {
		pi, pj := planned[i].input.Priority.rank(), planned[j].input.Priority.rank()
		if pi != pj {
			return pi < pj
		}
		return planned[i].years < planned[j].years
	})

	result := Result{
		Allocations: make([]Allocation, 0, len(planned)),
	}

	remaining := monthlyBudget
	var totalRequired float64

	for _, pg := range planned {
		totalRequired += pg.requiredSIP

		var granted float64
		var feasibility Feasibility

		switch {
		case remaining >= pg.requiredSIP:
			granted = pg.requiredSIP
			feasibility = FeasibilityOnTrack
			remaining -= granted
		case remaining > 0:
			granted = remaining
			ratio := 1.0
			if pg.requiredSIP > 0 {
				ratio = granted / pg.requiredSIP
			}
			if ratio > 0.70 {
				feasibility = FeasibilityTight
			} else {
				feasibility = FeasibilityUnderfunded
			}
			remaining = 0
			result.Conflicts = append(result.Conflicts, fmt.Sprintf(
				"goal %q (%s) is only partially funded: needs %.2f/month, granted %.2f/month",
				pg.input.Name, pg.input.ID, pg.requiredSIP, granted,
			))
		default:
			granted = 0
			feasibility = FeasibilityImpossible
			result.Conflicts = append(result.Conflicts, fmt.Sprintf(
				"goal %q (%s) receives no funding: budget exhausted by higher-priority goals",
				pg.input.Name, pg.input.ID,
			))
		}

		projectedValue, err := numeric.FutureValueAnnuity(granted, PlanningAnnualReturn/12, pg.years*12, true)
		if err != nil {
			return Result{}, err
		}
		projectedValue += pg.grownSavings

		shortfall := pg.fvTarget - projectedValue
		if shortfall < 0 {
			shortfall = 0
		}

		result.Allocations = append(result.Allocations, Allocation{
			GoalID:         pg.input.ID,
			MonthlySIP:     granted,
			RequiredSIP:    pg.requiredSIP,
			Feasibility:    feasibility,
			ProjectedValue: projectedValue,
			Shortfall:      shortfall,
		})
	}

	result.TotalMonthly = monthlyBudget - remaining
	result.Unallocated = remaining
	if monthlyBudget > 0 {
		result.BudgetUtilization = 100 * result.TotalMonthly / monthlyBudget
	}

	if totalRequired > monthlyBudget {
		result.Recommendations = append(result.Recommendations, fmt.Sprintf(
			"increase monthly budget by %.2f to fully fund every goal, or defer underfunded/impossible goals",
			totalRequired-monthlyBudget,
		))
	}
	if remaining > 0 {
		result.Recommendations = append(result.Recommendations, fmt.Sprintf(
			"%.2f/month is unallocated after funding every goal in full", remaining,
		))
	}

	return result, nil
}
