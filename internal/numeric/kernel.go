// Package numeric implements the engine's correctness-first financial and
// statistical primitives. Every function here is pure, total over its
// declared domain, and free of IO — no logging, no randomness seeded from
// the environment, no global state beyond the pinned RNG in rng.go.
package numeric

import (
	"math"

	"github.com/areumfire/finplan-engine/internal/planerr"
)

// FutureValue computes FV = PV * (1+r)^n. PV must be non-negative and n
// must be non-negative.
func FutureValue(pv, rate float64, periods int) (float64, error) {
	if pv < 0 {
		return 0, planerr.Validation("pv", "present value must be non-negative, got %v", pv)
	}
	if periods < 0 {
		return 0, planerr.Validation("periods", "period count must be non-negative, got %d", periods)
	}
	return pv * math.Pow(1+rate, float64(periods)), nil
}

// PresentValue computes PV = FV / (1+r)^n, the exact inverse of FutureValue.
func PresentValue(fv, rate float64, periods int) (float64, error) {
	if periods < 0 {
		return 0, planerr.Validation("periods", "period count must be non-negative, got %d", periods)
	}
	return fv / math.Pow(1+rate, float64(periods)), nil
}

// FutureValueAnnuity computes the future value of a series of equal
// payments. due=true (the default per spec) treats payments as made at the
// start of each period and multiplies the ordinary result by (1+r). A zero
// rate falls back to payment*periods exactly, as required by spec.
func FutureValueAnnuity(payment, rate float64, periods int, due bool) (float64, error) {
	if periods < 0 {
		return 0, planerr.Validation("periods", "period count must be non-negative, got %d", periods)
	}
	if rate == 0 {
		return payment * float64(periods), nil
	}
	ordinary := payment * (math.Pow(1+rate, float64(periods)) - 1) / rate
	if due {
		return ordinary * (1 + rate), nil
	}
	return ordinary, nil
}

// PresentValueAnnuity computes PV = PMT * (1 - (1+r)^-n) / r, falling back
// to PMT*n at a zero rate.
func PresentValueAnnuity(payment, rate float64, periods int) (float64, error) {
	if periods < 0 {
		return 0, planerr.Validation("periods", "period count must be non-negative, got %d", periods)
	}
	if rate == 0 {
		return payment * float64(periods), nil
	}
	return payment * (1 - math.Pow(1+rate, -float64(periods))) / rate, nil
}

// RequiredPayment inverts the annuity-due future-value formula to find the
// periodic payment needed to accumulate targetFV over totalPeriods periods,
// at the given periodic rate. There is no separate period selector: the
// caller picks annual or monthly payments by passing the matching per-period
// rate and period count (e.g. rate/12 and years*12), and the returned
// payment is sized to that period. due mirrors FutureValueAnnuity's
// due/ordinary distinction.
func RequiredPayment(targetFV, periodicRate float64, totalPeriods int, due bool) (float64, error) {
	if targetFV <= 0 {
		return 0, planerr.Validation("target_fv", "target future value must be positive, got %v", targetFV)
	}
	if totalPeriods <= 0 {
		return 0, planerr.Validation("periods", "period count must be positive, got %d", totalPeriods)
	}
	if periodicRate == 0 {
		return targetFV / float64(totalPeriods), nil
	}
	factor := (math.Pow(1+periodicRate, float64(totalPeriods)) - 1) / periodicRate
	if due {
		factor *= 1 + periodicRate
	}
	return targetFV / factor, nil
}

// NominalToReal converts a nominal rate to a real rate using the exact
// Fisher identity (1+r_real) = (1+r_nominal)/(1+inflation). Approximating
// via subtraction is deliberately not offered.
func NominalToReal(nominal, inflation float64) float64 {
	return (1+nominal)/(1+inflation) - 1
}

// RealToNominal is the exact inverse of NominalToReal.
func RealToNominal(real, inflation float64) float64 {
	return (1+real)*(1+inflation) - 1
}

// CAGR computes the compound annual growth rate between a start and end
// value over the given number of years. Both values must be positive.
func CAGR(startValue, endValue, years float64) (float64, error) {
	if startValue <= 0 {
		return 0, planerr.Validation("start_value", "start value must be positive, got %v", startValue)
	}
	if endValue <= 0 {
		return 0, planerr.Validation("end_value", "end value must be positive, got %v", endValue)
	}
	if years <= 0 {
		return 0, planerr.Validation("years", "years must be positive, got %v", years)
	}
	return math.Pow(endValue/startValue, 1/years) - 1, nil
}
