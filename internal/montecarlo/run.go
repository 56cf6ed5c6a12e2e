package montecarlo

import (
	"math"
	"sort"
	"sync"

	"github.com/areumfire/finplan-engine/internal/assumptions"
	"github.com/areumfire/finplan-engine/internal/numeric"
	"github.com/areumfire/finplan-engine/internal/planerr"
	"github.com/areumfire/finplan-engine/internal/projector"
)

// pathResult pairs one simulated path's full projection with its index, so
// percentile selection and sort-stability can both be decided on index
// rather than on incidental map/slice iteration order.
type pathResult struct {
	index    int
	result   projector.Result
	terminal float64
}

// Run executes the Monte Carlo simulation described in spec.md §4.4. Every
// path walks projector.Walk with a return source that draws independent
// per-asset normal samples each year from a path-local seeded RNG; nothing
// else differs from the deterministic projector. Correlation between
// assets is deliberately not applied — each asset's yearly return is an
// independent draw, exactly as spec.md §4.4 and §9 require, and this
// limitation is not silently patched over.
func Run(in projector.Inputs, bundle assumptions.Bundle, cfg Config) (Result, error) {
	if cfg.NumSimulations <= 0 {
		return Result{}, planerr.Validation("num_simulations", "num_simulations must be positive, got %d", cfg.NumSimulations)
	}
	if cfg.TimeStep == "" {
		cfg.TimeStep = Annual
	}
	if cfg.TimeStep != Annual {
		return Result{}, planerr.Validation("time_step", "only annual time steps are implemented, got %q", cfg.TimeStep)
	}

	ids := make([]assumptions.AssetID, 0, len(in.AssetAllocation))
	for id := range in.AssetAllocation {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	n := cfg.NumSimulations
	paths := make([]pathResult, n)

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	runPath := func(i int) error {
		rng := numeric.NewSeededRNG(cfg.Seed + int64(i))

		returnForYear := func(t int) float64 {
			var total float64
			for _, id := range ids {
				asset := bundle.Assets[id]
				sampled := rng.Normal(asset.Nominal.Mean(), asset.Nominal.Volatility())
				total += (in.AssetAllocation[id] / 100) * sampled
			}
			return total
		}

		r, err := projector.Walk(in, bundle, returnForYear)
		if err != nil {
			return err
		}

		terminal := r.Timeline[len(r.Timeline)-1].PortfolioValue
		paths[i] = pathResult{index: i, result: r, terminal: terminal}
		return nil
	}

	if workers == 1 {
		for i := 0; i < n; i++ {
			if err := runPath(i); err != nil {
				return Result{}, err
			}
		}
	} else {
		sem := make(chan struct{}, workers)
		var wg sync.WaitGroup
		var mu sync.Mutex
		var firstErr error

		for i := 0; i < n; i++ {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int) {
				defer wg.Done()
				defer func() { <-sem }()
				if err := runPath(i); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
				}
			}(i)
		}
		wg.Wait()

		if firstErr != nil {
			return Result{}, firstErr
		}
	}

	sorted := make([]pathResult, n)
	copy(sorted, paths)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].terminal != sorted[j].terminal {
			return sorted[i].terminal < sorted[j].terminal
		}
		return sorted[i].index < sorted[j].index
	})

	terminalValues := make([]float64, n)
	var successCount int
	for i, p := range paths {
		terminalValues[i] = p.terminal
		if p.terminal > 0 {
			successCount++
		}
	}

	percentilePath := func(p float64) projector.Result {
		idx := int(math.Floor(float64(n) * p))
		if idx >= n {
			idx = n - 1
		}
		return sorted[idx].result
	}

	var shortfallSum float64
	var shortfallCount int
	for _, p := range paths {
		if p.terminal <= 0 {
			shortfallSum += math.Abs(p.terminal)
			shortfallCount++
		}
	}
	var averageShortfall float64
	if shortfallCount > 0 {
		averageShortfall = shortfallSum / float64(shortfallCount)
	}

	successProbability := float64(successCount) / float64(n)

	return Result{
		SuccessProbability: successProbability,
		MedianOutcome:       numeric.Median(terminalValues),
		P10:                 percentilePath(0.10),
		P25:                 percentilePath(0.25),
		P50:                 percentilePath(0.50),
		P75:                 percentilePath(0.75),
		P90:                 percentilePath(0.90),
		TerminalDistribution: Distribution{
			Mean:           numeric.Mean(terminalValues),
			Median:         numeric.Median(terminalValues),
			StdDev:         numeric.StdDev(terminalValues),
			TerminalValues: terminalValues,
		},
		ShortfallRisk: ShortfallRisk{
			Probability:      1 - successProbability,
			AverageShortfall: averageShortfall,
			WorstCase:        sorted[0].terminal,
		},
		AssumptionsVersion: bundle.Version,
	}, nil
}
