// Package montecarlo implements the stochastic Monte Carlo simulator of
// spec.md §4.4: N independent paths, each walking projector.Walk with a
// per-year sampled portfolio return instead of a fixed expected return,
// aggregated into percentile paths and a terminal-value distribution.
package montecarlo

import "github.com/areumfire/finplan-engine/internal/projector"

// TimeStep selects the simulation's step granularity. Only Annual is
// implemented; Monthly is reserved, per spec.md §4.4.
type TimeStep string

const (
	Annual  TimeStep = "annual"
	Monthly TimeStep = "monthly"
)

// Config parameterizes a simulation run.
type Config struct {
	NumSimulations int
	Seed           int64
	TimeStep       TimeStep
	// Workers bounds how many paths run concurrently. 0 or 1 runs fully
	// sequential. Per spec.md §5, results are bit-identical regardless of
	// this value: each path draws from its own seed+i RNG and paths are
	// aggregated by a deterministic sort over terminal value, never by
	// completion order.
	Workers int
}

// DefaultConfig returns the spec's documented defaults: 1,000 paths, base
// seed 42, annual steps, sequential execution.
func DefaultConfig() Config {
	return Config{NumSimulations: 1000, Seed: 42, TimeStep: Annual, Workers: 1}
}

// Distribution summarizes the terminal portfolio values across every path.
type Distribution struct {
	Mean          float64
	Median        float64
	StdDev        float64
	TerminalValues []float64
}

// ShortfallRisk summarizes the paths that failed to sustain the household
// through life expectancy.
type ShortfallRisk struct {
	Probability     float64
	AverageShortfall float64
	WorstCase       float64
}

// Result is the full aggregated Monte Carlo output, per spec.md §3.5.
type Result struct {
	SuccessProbability float64
	MedianOutcome      float64

	// P10, P25, P50, P75, P90 are the *entire timelines* of the paths whose
	// terminal value sits at that percentile rank, not an element-wise
	// aggregation across paths (spec.md §3.5, §4.4).
	P10 projector.Result
	P25 projector.Result
	P50 projector.Result
	P75 projector.Result
	P90 projector.Result

	TerminalDistribution Distribution
	ShortfallRisk         ShortfallRisk

	AssumptionsVersion string
}
