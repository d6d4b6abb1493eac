package commands

import (
	"fmt"
	"os"

	"github.com/arcpost/arcpost/internal/app"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <instancePath>",
	Short: "Parse an instance and report whether it is well-formed, without solving it",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	text, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading instance: %w", err)
	}

	if err := app.Validate(string(text), app.WithLogger(newLogger())); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "ok")

	return nil
}
