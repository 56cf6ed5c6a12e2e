// Package rebalance implements the drift-threshold portfolio rebalancer of
// spec.md §3.7 and §4.6: it measures how far current holdings have drifted
// from a target allocation and, if the drift is large enough, emits a
// trade list that restores the target.
package rebalance

import "github.com/areumfire/finplan-engine/internal/assumptions"

// driftFloorPct is the fixed 1 percentage-point per-asset floor below
// which a drift is never traded, even once the portfolio as a whole is
// above its overall drift threshold (spec.md §4.6 step 5).
const driftFloorPct = 1.0

// defaultMinimumTradeAmount is the spec's default minimum trade size.
const defaultMinimumTradeAmount = 10_000.0

// defaultDriftThresholdPct is the spec's default overall drift trigger.
const defaultDriftThresholdPct = 5.0

// Config parameterizes a rebalancing run. A zero value is not usable
// directly; callers should start from DefaultConfig.
type Config struct {
	DriftThresholdPct  float64
	MinimumTradeAmount float64
	// TradingCostBpsOverride, when non-nil, replaces every asset's bundled
	// trading cost for this run's cost estimate.
	TradingCostBpsOverride *float64
}

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return Config{
		DriftThresholdPct:  defaultDriftThresholdPct,
		MinimumTradeAmount: defaultMinimumTradeAmount,
	}
}

// Side is which direction a trade moves an asset's holding.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// Trade is one emitted rebalancing instruction.
type Trade struct {
	Asset        assumptions.AssetID
	Side         Side
	Amount       float64
	CurrentValue float64
	TargetValue  float64
}

// Result is the full rebalancing outcome, per spec.md §3.7.
type Result struct {
	NeedsRebalancing bool
	Drifts           map[assumptions.AssetID]float64
	MaxDrift         float64
	Trades           []Trade
	EstimatedCost    float64
	ImpactOnReturn   float64
}
