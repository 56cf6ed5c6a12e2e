package projector

import (
	"math"
	"sort"

	"github.com/areumfire/finplan-engine/internal/assumptions"
	"github.com/areumfire/finplan-engine/internal/numeric"
)

// ExpectedPortfolioReturn computes the allocation-weighted sum of per-asset
// nominal means (spec.md §4.3 step 2). Iteration is over asset ids sorted
// lexicographically so floating-point summation order is fixed, per the
// determinism note in spec.md §9.
func ExpectedPortfolioReturn(in Inputs, bundle assumptions.Bundle) float64 {
	ids := make([]assumptions.AssetID, 0, len(in.AssetAllocation))
	for id := range in.AssetAllocation {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var expected float64
	for _, id := range ids {
		weight := in.AssetAllocation[id] / 100
		expected += weight * bundle.Assets[id].Nominal.Mean()
	}
	return expected
}

// ReturnSource supplies the portfolio's nominal return for year t. The
// deterministic projector uses a constant source; the Monte Carlo
// simulator (internal/montecarlo) supplies a stochastic one, reusing Walk
// for everything else.
type ReturnSource func(t int) float64

// Project runs the deterministic, single-path projection of spec.md §4.3.
func Project(in Inputs, bundle assumptions.Bundle) (Result, error) {
	expected := ExpectedPortfolioReturn(in, bundle)
	return Walk(in, bundle, func(int) float64 { return expected })
}

// Walk runs the year-by-year cashflow simulation shared by the
// deterministic projector and the Monte Carlo simulator. returnForYear is
// called once per year to obtain that year's nominal portfolio return;
// every other step (inflation, contributions, withdrawals, the depletion
// clamp, early exit) is identical regardless of the return source.
func Walk(in Inputs, bundle assumptions.Bundle, returnForYear ReturnSource) (Result, error) {
	if err := Validate(in, bundle); err != nil {
		return Result{}, err
	}

	inflation := bundle.Inflation.Mean()
	expenseGrowth := inflation
	if in.ExpenseGrowthRate != nil {
		expenseGrowth = *in.ExpenseGrowthRate
	}
	investmentGrowth := inflation + 0.01
	if in.InvestmentGrowthRate != nil {
		investmentGrowth = *in.InvestmentGrowthRate
	}

	horizon := in.LifeExpectancy - in.CurrentAge
	timeline := make([]YearlyRecord, 0, horizon)

	portfolio := in.CurrentSavings
	var depletionAge *int
	var corpusAtRetirement float64

	for t := 0; t < horizon; t++ {
		age := in.CurrentAge + t
		isRetired := age >= in.RetirementAge

		expenses := in.MonthlyExpenses * 12 * math.Pow(1+expenseGrowth, float64(t))
		for _, fe := range in.FutureExpenses {
			if fe.YearOffset == t {
				expenses += fe.AmountToday * math.Pow(1+inflation, float64(t))
			}
		}

		var contributions float64
		if !isRetired {
			contributions = in.MonthlyInvestment * 12 * math.Pow(1+investmentGrowth, float64(t))
		}
		var withdrawals float64
		if isRetired {
			withdrawals = expenses
		}

		portfolioBeforeWithdrawal := portfolio
		investmentReturn := portfolio * returnForYear(t)
		portfolio = portfolio + investmentReturn + contributions - withdrawals
		if portfolio < 0 {
			portfolio = 0
		}

		realReturn := investmentReturn / math.Pow(1+inflation, float64(t))

		var withdrawalRate float64
		if withdrawals > 0 && portfolioBeforeWithdrawal > 0 {
			withdrawalRate = withdrawals / portfolioBeforeWithdrawal
		}

		timeline = append(timeline, YearlyRecord{
			YearOffset:       t,
			Age:              age,
			PortfolioValue:   portfolio,
			Expenses:         expenses,
			NetCashflow:      contributions - withdrawals,
			Contributions:    contributions,
			Withdrawals:      withdrawals,
			InvestmentReturn: investmentReturn,
			RealReturn:       realReturn,
			WithdrawalRate:   withdrawalRate,
		})

		if age == in.RetirementAge {
			corpusAtRetirement = portfolio
		}

		if portfolio == 0 && isRetired {
			a := age
			depletionAge = &a
			break
		}
	}

	result := Result{
		Timeline:                    timeline,
		ProjectedCorpusAtRetirement: corpusAtRetirement,
		FinalPortfolioValue:         timeline[len(timeline)-1].PortfolioValue,
		DepletionAge:                depletionAge,
		AssumptionsVersion:          bundle.Version,
	}

	postRetirementYears := in.LifeExpectancy - in.RetirementAge
	retirementYearOffset := in.RetirementAge - in.CurrentAge
	inflatedRetirementExpense := in.MonthlyExpenses * 12 * math.Pow(1+expenseGrowth, float64(retirementYearOffset))
	portfolioRealReturn := numeric.NominalToReal(ExpectedPortfolioReturn(in, bundle), inflation)
	corpusNeeded, err := numeric.PresentValueAnnuity(inflatedRetirementExpense, portfolioRealReturn, postRetirementYears)
	if err != nil {
		return Result{}, err
	}
	result.RetirementCorpusNeeded = corpusNeeded

	switch {
	case depletionAge != nil:
		result.SuccessMetric = MetricDepletion
	case corpusAtRetirement > corpusNeeded:
		result.SuccessMetric = MetricSurplus
	case corpusNeeded <= 0 || (corpusNeeded-corpusAtRetirement)/corpusNeeded <= 0.10:
		result.SuccessMetric = MetricOnTrack
	default:
		result.SuccessMetric = MetricShortfall
	}

	return result, nil
}
