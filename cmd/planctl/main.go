// Command planctl is a thin CLI wrapper around the financial planning
// engine, useful for exercising the deterministic projector, the Monte
// Carlo simulator, the goal allocator, and the rebalancer from a shell
// without standing up the UI. It is not part of the engine's public
// surface (spec.md §6 says the engine has no CLI of its own) — it is an
// out-of-band harness that calls the same package-level functions any
// other caller would.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/areumfire/finplan-engine/internal/adapter"
	"github.com/areumfire/finplan-engine/internal/assumptions"
	"github.com/areumfire/finplan-engine/internal/cli"
	"github.com/areumfire/finplan-engine/internal/goals"
	"github.com/areumfire/finplan-engine/internal/montecarlo"
	"github.com/areumfire/finplan-engine/internal/projector"
	"github.com/areumfire/finplan-engine/internal/rebalance"
)

var (
	verbose bool
	region  string
	version string
)

func main() {
	root := &cobra.Command{
		Use:   "planctl",
		Short: "Run the financial planning engine from the command line",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cli.InitLogging(verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&region, "region", "IN", "assumptions region")
	root.PersistentFlags().StringVar(&version, "assumptions-version", "2024-Q4", "assumptions version")

	root.AddCommand(newProjectCmd(), newMonteCarloCmd(), newGoalsCmd(), newRebalanceCmd())

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("planctl failed")
		os.Exit(1)
	}
}

func loadBundle() (assumptions.Bundle, error) {
	return assumptions.Get(region, version)
}

// parseWeights parses a "key=value,key2=value2" flag into a map, the
// lightest-weight way to pass an asset allocation on a command line.
func parseWeights(raw string) (map[assumptions.AssetID]float64, error) {
	out := map[assumptions.AssetID]float64{}
	if strings.TrimSpace(raw) == "" {
		return out, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed allocation entry %q, want asset=weight", pair)
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed weight in %q: %w", pair, err)
		}
		out[assumptions.AssetID(strings.TrimSpace(parts[0]))] = w
	}
	return out, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type householdFlags struct {
	currentAge        int
	retirementAge     int
	lifeExpectancy    int
	currentSavings    float64
	monthlyInvestment float64
	monthlyExpenses   float64
	allocation        string
}

func (f *householdFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.currentAge, "current-age", 30, "current age")
	cmd.Flags().IntVar(&f.retirementAge, "retirement-age", 60, "retirement age")
	cmd.Flags().IntVar(&f.lifeExpectancy, "life-expectancy", 85, "life expectancy")
	cmd.Flags().Float64Var(&f.currentSavings, "current-savings", 0, "current savings")
	cmd.Flags().Float64Var(&f.monthlyInvestment, "monthly-investment", 0, "monthly investment")
	cmd.Flags().Float64Var(&f.monthlyExpenses, "monthly-expenses", 0, "monthly expenses (today's money)")
	cmd.Flags().StringVar(&f.allocation, "allocation", "", "asset allocation, e.g. equity_index=70,debt_index=30")
}

func (f *householdFlags) toInputs() (projector.Inputs, error) {
	allocation, err := parseWeights(f.allocation)
	if err != nil {
		return projector.Inputs{}, err
	}
	return projector.Inputs{
		CurrentAge:        f.currentAge,
		RetirementAge:     f.retirementAge,
		LifeExpectancy:    f.lifeExpectancy,
		CurrentSavings:    f.currentSavings,
		MonthlyInvestment: f.monthlyInvestment,
		MonthlyExpenses:   f.monthlyExpenses,
		AssetAllocation:   allocation,
	}, nil
}

func newProjectCmd() *cobra.Command {
	var f householdFlags
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Run the deterministic projector",
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := loadBundle()
			if err != nil {
				return err
			}
			in, err := f.toInputs()
			if err != nil {
				return err
			}
			resp, err := adapter.RetirementOptimization(in, bundle)
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}
	f.register(cmd)
	return cmd
}

func newMonteCarloCmd() *cobra.Command {
	var f householdFlags
	var numSimulations int
	var seed int64
	var workers int
	cmd := &cobra.Command{
		Use:   "montecarlo",
		Short: "Run the Monte Carlo simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := loadBundle()
			if err != nil {
				return err
			}
			in, err := f.toInputs()
			if err != nil {
				return err
			}
			cfg := montecarlo.Config{NumSimulations: numSimulations, Seed: seed, TimeStep: montecarlo.Annual, Workers: workers}
			result, err := montecarlo.Run(in, bundle, cfg)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
	f.register(cmd)
	cmd.Flags().IntVar(&numSimulations, "num-simulations", 1000, "number of simulated paths")
	cmd.Flags().Int64Var(&seed, "seed", 42, "base RNG seed")
	cmd.Flags().IntVar(&workers, "workers", 1, "number of paths to run concurrently")
	return cmd
}

func newGoalsCmd() *cobra.Command {
	var file string
	var budget float64
	var currentYear int
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Allocate a monthly budget across goals read from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := loadBundle()
			if err != nil {
				return err
			}
			raw, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			var goalsIn []goals.Input
			if err := json.Unmarshal(raw, &goalsIn); err != nil {
				return fmt.Errorf("parsing %s: %w", file, err)
			}
			result, err := goals.Allocate(goalsIn, budget, bundle, currentYear)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path to a JSON array of goals")
	cmd.Flags().Float64Var(&budget, "budget", 0, "monthly budget to allocate")
	cmd.Flags().IntVar(&currentYear, "current-year", 0, "calendar year allocation is computed against")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("current-year")
	return cmd
}

func newRebalanceCmd() *cobra.Command {
	var holdingsRaw, targetRaw string
	var driftThreshold, minimumTrade float64
	cmd := &cobra.Command{
		Use:   "rebalance",
		Short: "Generate rebalancing trades against a target allocation",
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := loadBundle()
			if err != nil {
				return err
			}
			holdings, err := parseWeights(holdingsRaw)
			if err != nil {
				return err
			}
			target, err := parseWeights(targetRaw)
			if err != nil {
				return err
			}
			cfg := rebalance.Config{DriftThresholdPct: driftThreshold, MinimumTradeAmount: minimumTrade}
			result, err := rebalance.Generate(holdings, target, bundle, cfg)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
	cmd.Flags().StringVar(&holdingsRaw, "holdings", "", "current holdings, e.g. equity_index=850000,debt_index=150000")
	cmd.Flags().StringVar(&targetRaw, "target", "", "target allocation, e.g. equity_index=70,debt_index=30")
	cmd.Flags().Float64Var(&driftThreshold, "drift-threshold", rebalance.DefaultConfig().DriftThresholdPct, "overall drift threshold, in percentage points")
	cmd.Flags().Float64Var(&minimumTrade, "minimum-trade", rebalance.DefaultConfig().MinimumTradeAmount, "minimum trade amount")
	return cmd
}
