package goals

import (
	"strings"
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

func TestAllocateRejectsNegativeBudget(t *testing.T) {
	_, err := Allocate(nil, -1, bundle(t), 2026)
	require.Error(t, err)
}

func TestAllocateRejectsPastTargetYear(t *testing.T) {
	_, err := Allocate([]Input{{
		ID: "g1", Name: "car", TargetAmount: 100000, TargetYear: 2020, Priority: PriorityHigh,
	}}, 10000, bundle(t), 2026)
	require.Error(t, err)
}

func TestAllocateEmptyGoalListLeavesEverythingUnallocated(t *testing.T) {
	result, err := Allocate(nil, 50000, bundle(t), 2026)
	require.NoError(t, err)
	require.Empty(t, result.Allocations)
	require.Equal(t, 50000.0, result.Unallocated)
	require.Equal(t, 0.0, result.TotalMonthly)
}

func TestAllocateGoalAlreadyFundedGetsZeroSIPAndOnTrack(t *testing.T) {
	result, err := Allocate([]Input{{
		ID: "g1", Name: "vacation", TargetAmount: 100000, TargetYear: 2027,
		Priority: PriorityMedium, CurrentSavings: 10_000_000,
	}}, 20000, bundle(t), 2026)
	require.NoError(t, err)
	require.Len(t, result.Allocations, 1)
	require.Equal(t, 0.0, result.Allocations[0].MonthlySIP)
	require.Equal(t, FeasibilityOnTrack, result.Allocations[0].Feasibility)
}

func TestAllocatePriorityOrdering(t *testing.T) {
	goals := []Input{
		{ID: "low-goal", Name: "gadget", TargetAmount: 5_000_000, TargetYear: 2036, Priority: PriorityLow},
		{ID: "high-goal-1", Name: "home down payment", TargetAmount: 3_000_000, TargetYear: 2031, Priority: PriorityHigh},
		{ID: "high-goal-2", Name: "child education", TargetAmount: 4_000_000, TargetYear: 2040, Priority: PriorityHigh},
	}

	result, err := Allocate(goals, 30000, bundle(t), 2026)
	require.NoError(t, err)

	var lowGoal Allocation
	for _, a := range result.Allocations {
		if a.GoalID == "low-goal" {
			lowGoal = a
		}
	}
	require.Equal(t, 0.0, lowGoal.MonthlySIP)
	require.Equal(t, FeasibilityImpossible, lowGoal.Feasibility)
	require.NotEmpty(t, result.Conflicts)

	var sawLow bool
	for _, c := range result.Conflicts {
		if strings.Contains(c, "low-goal") {
			sawLow = true
		}
	}
	require.True(t, sawLow)
}

func TestAllocateClosure(t *testing.T) {
	goals := []Input{
		{ID: "g1", Name: "a", TargetAmount: 1_000_000, TargetYear: 2030, Priority: PriorityHigh},
		{ID: "g2", Name: "b", TargetAmount: 2_000_000, TargetYear: 2035, Priority: PriorityMedium},
	}
	result, err := Allocate(goals, 15000, bundle(t), 2026)
	require.NoError(t, err)
	require.InDelta(t, 15000, result.TotalMonthly+result.Unallocated, 1e-6)
	for _, a := range result.Allocations {
		require.GreaterOrEqual(t, a.MonthlySIP, 0.0)
		require.LessOrEqual(t, a.MonthlySIP, a.RequiredSIP+1e-9)
	}
}
