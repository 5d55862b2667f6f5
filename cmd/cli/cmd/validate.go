package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DownSYnDdev/QuantLabEngine/pkg/logger"
	"github.com/DownSYnDdev/QuantLabEngine/pkg/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate account configs against the schema",
	Long: `Validate every account configuration document against the
account schema: required fields, variant enum, capital minimum, and
nested shape rules. Exits nonzero when any document fails.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, _ []string) error {
	batch, err := resolveBatch()
	if err != nil {
		return err
	}

	outcome, err := validator.NewSuite().Run(cmd.Context(), batch)
	if err != nil {
		return err
	}

	if !outcome.Clean() {
		return fmt.Errorf("%d of %d configurations failed validation",
			outcome.Failed, outcome.Failed+outcome.Passed)
	}

	logger.Success("All configurations are valid")
	return nil
}
