// Package cli holds the command-line edge of the engine: logging setup and
// anything else that talks to the terminal or the OS. None of it is
// imported by internal/assumptions, internal/numeric, internal/projector,
// internal/montecarlo, internal/goals, internal/rebalance, or
// internal/adapter — the engine core stays pure and silent, exactly as
// spec.md §5 and §7 require (no logging, no IO inside the engine).
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogging configures the global zerolog logger for planctl. verbose
// lowers the level to debug; otherwise only info-and-above is shown.
func InitLogging(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	log.Logger = zerolog.New(console).With().Timestamp().Logger()
}
