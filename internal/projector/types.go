// Package projector implements the deterministic single-path cashflow
// projection described in spec.md §3.2-§3.4 and §4.3. Its Walk function is
// shared with the Monte Carlo simulator (internal/montecarlo), which
// supplies a stochastic per-year return source instead of the fixed
// expected return used here.
package projector

import "github.com/areumfire/finplan-engine/internal/assumptions"

// FutureExpense is a one-time outflow scheduled at a year offset, expressed
// in today's money and inflated at the bundle's inflation mean before use.
type FutureExpense struct {
	YearOffset int
	AmountToday float64
	Label       string
}

// Inputs is the full set of parameters a single projection runs against.
type Inputs struct {
	CurrentAge        int
	RetirementAge     int
	LifeExpectancy    int
	CurrentSavings    float64
	MonthlyInvestment float64
	MonthlyExpenses   float64

	// InvestmentGrowthRate and ExpenseGrowthRate are pointers so "not set"
	// is distinguishable from "explicitly set to 0"; Walk fills in the
	// spec's defaults (inflation+1% and inflation respectively) when nil.
	InvestmentGrowthRate *float64
	ExpenseGrowthRate    *float64

	// AssetAllocation maps asset id to a percentage weight in [0, 100];
	// weights must sum to 100 ± 0.01.
	AssetAllocation map[assumptions.AssetID]float64

	FutureExpenses []FutureExpense
}

// SuccessMetric is the closed set of summary outcomes for a projection.
type SuccessMetric string

const (
	MetricSurplus   SuccessMetric = "surplus"
	MetricOnTrack   SuccessMetric = "on-track"
	MetricShortfall SuccessMetric = "shortfall"
	MetricDepletion SuccessMetric = "depletion"
)

// YearlyRecord is one timeline element, per spec.md §3.3.
type YearlyRecord struct {
	YearOffset       int
	Age              int
	PortfolioValue   float64
	Income           float64
	Expenses         float64
	NetCashflow      float64
	Contributions    float64
	Withdrawals      float64
	InvestmentReturn float64
	RealReturn       float64
	// WithdrawalRate is withdrawal / portfolio-before-withdrawal; only
	// meaningful (and only set) in years with a nonzero withdrawal.
	WithdrawalRate float64
}

// Result is a full projection: its timeline plus a summary, per spec.md §3.4.
type Result struct {
	Timeline []YearlyRecord

	RetirementCorpusNeeded      float64
	ProjectedCorpusAtRetirement float64
	FinalPortfolioValue         float64
	DepletionAge                *int
	SuccessMetric               SuccessMetric

	// AssumptionsVersion carries the bundle version used to produce this
	// result, so audit/reproducibility tooling can tie a result back to
	// the exact assumptions it was generated against.
	AssumptionsVersion string
}
