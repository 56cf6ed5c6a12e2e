package adapter

import (
	"github.com/areumfire/finplan-engine/internal/assumptions"
	"github.com/areumfire/finplan-engine/internal/rebalance"
)

var rebalancingSteps = []Step{
	{Label: "Valuing current holdings", DurationMs: 100},
	{Label: "Measuring drift from target", DurationMs: 90},
	{Label: "Generating trade list", DurationMs: 130},
}

// RebalanceReport is the report shape for Rebalancing.
type RebalanceReport struct {
	rebalance.Result
}

// Rebalancing runs the rebalancer against a provided current portfolio and
// target allocation, per spec.md §4.7.
func Rebalancing(holdings, target map[assumptions.AssetID]float64, bundle assumptions.Bundle, cfg rebalance.Config) (Response, error) {
	result, err := rebalance.Generate(holdings, target, bundle, cfg)
	if err != nil {
		return Response{}, err
	}
	return Response{
		Steps:  rebalancingSteps,
		Report: RebalanceReport{Result: result},
	}, nil
}
