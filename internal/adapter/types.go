// Package adapter implements the Intention Adapter of spec.md §4.7: a thin
// façade that sequences the engine's other components and shapes their
// results into the uniform {steps, report} structure the UI consumes. It
// carries no algorithmic weight of its own — every number in a Report
// comes from projector, montecarlo, goals, or rebalance.
package adapter

// Step is one presentation-only "thinking step" shown while a handler
// runs. DurationMs is a fixed, pre-measured value; per spec.md §4.7 and
// §9, these carry no behavioral semantics and must never gate engine
// logic.
type Step struct {
	Label      string
	DurationMs int
}

// Response is the uniform envelope every handler returns.
type Response struct {
	Steps  []Step
	Report interface{}
}
