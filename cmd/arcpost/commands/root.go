// Package commands wires the arcpost cobra.Command tree: solve, validate,
// and version, plus the shared --log-level/--timeout/--matching flags.
package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Exit codes spec.md §6 assigns to the CLI surface.
const (
	exitOK          = 0
	exitUserError   = 1
	exitInfeasible  = 2
	exitInternalErr = 3
)

var (
	logLevel     string
	timeout      time.Duration
	matchingFlag string
)

var rootCmd = &cobra.Command{
	Use:           "arcpost",
	Short:         "Arc-routing optimization: Chinese Postman and Rural Postman solvers",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree and terminates the process with the exit
// code its outcome maps to.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "solve deadline, e.g. 30s (0 disables)")
	rootCmd.PersistentFlags().StringVar(&matchingFlag, "matching", "auto", "matching implementation: auto, optimal, greedy")

	rootCmd.AddCommand(solveCmd, validateCmd, versionCmd)
}

func newLogger() zerolog.Logger {
	lvl, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		lvl = zerolog.WarnLevel
	}

	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
