// Package goals implements the priority-greedy goal allocator of
// spec.md §3.6 and §4.5: given a fixed monthly budget and a set of goals,
// it distributes the budget by priority and classifies each goal's
// feasibility.
package goals

import "github.com/google/uuid"

// Priority is a goal's funding priority. Goals are allocated high before
// medium before low.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// PlanningAnnualReturn is the fixed annual return every goal's required SIP
// is computed against, independent of the user's actual portfolio
// allocation. This is a deliberate, documented simplification (spec.md §9)
// that keeps goal SIPs comparable across users regardless of how
// aggressively any one of them is invested; it is a named constant rather
// than an inline literal specifically so it is never silently drifted.
const PlanningAnnualReturn = 0.10

// Feasibility is the closed set of per-goal funding outcomes.
type Feasibility string

const (
	FeasibilityOnTrack     Feasibility = "on-track"
	FeasibilityTight       Feasibility = "tight"
	FeasibilityUnderfunded Feasibility = "underfunded"
	FeasibilityImpossible  Feasibility = "impossible"
)

// Input describes one funding goal.
type Input struct {
	ID             string
	Name           string
	TargetAmount   float64
	TargetYear     int
	Priority       Priority
	CurrentSavings float64
}

// withID returns a copy of in with a generated ID if none was supplied.
func (in Input) withID() Input {
	if in.ID != "" {
		return in
	}
	in.ID = uuid.NewString()
	return in
}

// Allocation is one goal's funding outcome.
type Allocation struct {
	GoalID         string
	MonthlySIP     float64
	RequiredSIP    float64
	Feasibility    Feasibility
	ProjectedValue float64
	Shortfall      float64
}

// Result is the aggregate outcome of allocating a budget across goals.
type Result struct {
	Allocations       []Allocation
	TotalMonthly      float64
	Unallocated       float64
	BudgetUtilization float64
	Conflicts         []string
	Recommendations   []string
}
