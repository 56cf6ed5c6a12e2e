package rebalance

import (
	"math"
	"sort"

	"github.com/areumfire/finplan-engine/internal/assumptions"
	"github.com/areumfire/finplan-engine/internal/planerr"
)

// Generate measures portfolio drift against a target allocation and, when
// the drift exceeds cfg.DriftThresholdPct, emits the trades needed to
// restore it, per spec.md §4.6.
func Generate(holdings, target map[assumptions.AssetID]float64, bundle assumptions.Bundle, cfg Config) (Result, error) {
	for id := range target {
		if !bundle.HasAsset(id) {
			return Result{}, planerr.Validation("target_allocation", "asset %s is not present in assumptions bundle %s", id, bundle.Key())
		}
	}

	var total float64
	for _, v := range holdings {
		total += v
	}
	if total == 0 {
		return Result{}, nil
	}

	ids := make([]assumptions.AssetID, 0, len(target))
	for id := range target {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	drifts := make(map[assumptions.AssetID]float64, len(ids))
	var maxDrift float64
	for _, id := range ids {
		currentPct := 100 * holdings[id] / total
		drift := currentPct - target[id]
		drifts[id] = drift
		if math.Abs(drift) > maxDrift {
			maxDrift = math.Abs(drift)
		}
	}

	result := Result{
		Drifts:   drifts,
		MaxDrift: maxDrift,
	}

	if maxDrift < cfg.DriftThresholdPct {
		result.NeedsRebalancing = false
		return result, nil
	}
	result.NeedsRebalancing = true

	var estimatedCost float64
	for _, id := range ids {
		if math.Abs(drifts[id]) <= driftFloorPct {
			continue
		}

		targetValue := (target[id] / 100) * total
		currentValue := holdings[id]
		tradeAmount := targetValue - currentValue

		if math.Abs(tradeAmount) < cfg.MinimumTradeAmount {
			continue
		}

		side := Buy
		if tradeAmount < 0 {
			side = Sell
		}
		amount := math.Abs(tradeAmount)

		result.Trades = append(result.Trades, Trade{
			Asset:        id,
			Side:         side,
			Amount:       amount,
			CurrentValue: currentValue,
			TargetValue:  targetValue,
		})

		costBps := bundle.Assets[id].TradingCostBps
		if cfg.TradingCostBpsOverride != nil {
			costBps = *cfg.TradingCostBpsOverride
		}
		estimatedCost += amount * costBps / 10_000
	}

	result.EstimatedCost = estimatedCost
	result.ImpactOnReturn = 10_000 * estimatedCost / total

	return result, nil
}
