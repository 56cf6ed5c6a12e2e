// Package assumptions implements the versioned, immutable market-parameter
// registry described in spec.md §3.1 and §4.1. Bundles are compiled in
// (embedded as a YAML fixture and parsed once, on first registry access)
// and never mutated;
// there is no write path.
package assumptions

import "fmt"

// AssetID is a named, opaque identifier for an asset class (an equity
// index, a bond index, a commodity, cash, ...). Using a defined string type
// instead of a bare string or a positional array index is what lets the
// correlation matrix below be expressed as a map keyed on asset identity
// rather than on array position, avoiding the silent-reordering hazard
// spec.md §9 calls out.
type AssetID string

// AssetCategory tags an asset's broad class.
type AssetCategory string

const (
	CategoryEquity      AssetCategory = "equity"
	CategoryDebt        AssetCategory = "debt"
	CategoryCommodity   AssetCategory = "commodity"
	CategoryAlternative AssetCategory = "alternative"
	CategoryCash        AssetCategory = "cash"
)

// Distribution is a normal distribution's parameters, expressed as
// annualized percentages (7.5 means 7.5%, not 0.075) to match the bundle's
// calibration-sheet units; callers convert to fractions at the point of use.
type Distribution struct {
	MeanPct       float64 `yaml:"mean_pct"`
	VolatilityPct float64 `yaml:"volatility_pct"`
}

// Mean returns the mean as a fraction (7.5 -> 0.075).
func (d Distribution) Mean() float64 { return d.MeanPct / 100 }

// Volatility returns the volatility as a fraction.
func (d Distribution) Volatility() float64 { return d.VolatilityPct / 100 }

// AssetParams describes one asset class's calibrated parameters.
type AssetParams struct {
	Label          string        `yaml:"label"`
	Category       AssetCategory `yaml:"category"`
	Nominal        Distribution  `yaml:"nominal"`
	Real           Distribution  `yaml:"real"`
	TradingCostBps float64       `yaml:"trading_cost_bps"`
}

// AssetPair identifies an unordered pair of assets for correlation lookup.
// NewAssetPair always returns the pair with A <= B lexicographically, so
// map[AssetPair]float64 lookups are order-independent.
type AssetPair struct {
	A AssetID
	B AssetID
}

// NewAssetPair builds a normalized AssetPair from two asset ids, in either
// order.
func NewAssetPair(a, b AssetID) AssetPair {
	if a <= b {
		return AssetPair{A: a, B: b}
	}
	return AssetPair{A: b, B: a}
}

// AssetMultiplier carries a regime's return/volatility multipliers for one
// asset class.
type AssetMultiplier struct {
	ReturnMultiplier     float64 `yaml:"return_multiplier"`
	VolatilityMultiplier float64 `yaml:"volatility_multiplier"`
}

// Regime is a named market state, reserved for future extension: it is part
// of the bundle's data contract but, per spec.md §4.4, is never activated
// by the Monte Carlo simulator in this spec.
type Regime struct {
	Name                    string                     `yaml:"name"`
	Probability             float64                    `yaml:"probability"`
	AvgDurationYears        float64                    `yaml:"avg_duration_years"`
	DurationVolatilityYears float64                    `yaml:"duration_volatility_years"`
	AssetMultipliers        map[AssetID]AssetMultiplier `yaml:"asset_multipliers"`
}

// InflationParams carries the bundle's inflation model.
type InflationParams struct {
	MeanPct               float64            `yaml:"mean_pct"`
	VolatilityPct         float64            `yaml:"volatility_pct"`
	AR1Persistence        float64            `yaml:"ar1_persistence"`
	RegimeAdjustmentsPct  map[string]float64 `yaml:"regime_adjustments_pct"`
}

// Mean returns the long-run inflation mean as a fraction.
func (i InflationParams) Mean() float64 { return i.MeanPct / 100 }

// Volatility returns the inflation volatility as a fraction.
func (i InflationParams) Volatility() float64 { return i.VolatilityPct / 100 }

// Bundle is one immutable, versioned set of market assumptions.
type Bundle struct {
	Region        string                 `yaml:"region"`
	Version       string                 `yaml:"version"`
	EffectiveDate string                 `yaml:"effective_date"`
	Assets        map[AssetID]AssetParams `yaml:"assets"`
	Correlations  map[AssetPair]float64   `yaml:"-"`
	Regimes       []Regime               `yaml:"regimes"`
	Inflation     InflationParams        `yaml:"inflation"`
}

// Correlation looks up the correlation between two assets. The diagonal
// (a == b) is always 1.0 regardless of what the bundle stores.
func (b Bundle) Correlation(a, c AssetID) float64 {
	if a == c {
		return 1.0
	}
	if v, ok := b.Correlations[NewAssetPair(a, c)]; ok {
		return v
	}
	return 0
}

// HasAsset reports whether id is defined in this bundle.
func (b Bundle) HasAsset(id AssetID) bool {
	_, ok := b.Assets[id]
	return ok
}

// Key returns the bundle's registry key.
func (b Bundle) Key() RegistryKey {
	return RegistryKey{Region: b.Region, Version: b.Version}
}

// RegistryKey identifies a bundle by (region, version).
type RegistryKey struct {
	Region  string
	Version string
}

func (k RegistryKey) String() string {
	return fmt.Sprintf("%s/%s", k.Region, k.Version)
}
