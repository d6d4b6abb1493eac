package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/arcpost/arcpost/internal/app"
	"github.com/arcpost/arcpost/matching"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve <solverId> <instancePath>",
	Short: "Solve an arc-routing instance and print its report",
	Args:  cobra.ExactArgs(2),
	RunE:  runSolve,
}

func runSolve(cmd *cobra.Command, args []string) error {
	solverID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("solverId must be an integer: %w", err)
	}

	text, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("reading instance: %w", err)
	}

	impl, err := parseMatchingFlag(matchingFlag)
	if err != nil {
		return err
	}

	opts := []app.Option{
		app.WithLogger(newLogger()),
		app.WithMatching(impl),
		app.WithInstanceName(filepath.Base(args[1])),
	}
	if timeout > 0 {
		opts = append(opts, app.WithTimeout(timeout))
	}

	report, err := app.Solve(solverID, string(text), opts...)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), report)

	return nil
}

func parseMatchingFlag(s string) (matching.Implementation, error) {
	switch s {
	case "auto":
		return matching.Auto, nil
	case "optimal":
		return matching.ForceExact, nil
	case "greedy":
		return matching.ForceGreedy, nil
	default:
		return 0, fmt.Errorf("unknown --matching value %q: want auto, optimal, or greedy", s)
	}
}
