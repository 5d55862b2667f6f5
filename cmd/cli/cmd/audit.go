package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/DownSYnDdev/QuantLabEngine/pkg/logger"
	"github.com/DownSYnDdev/QuantLabEngine/pkg/suite"

	// Import suites to register them
	_ "github.com/DownSYnDdev/QuantLabEngine/pkg/dryrun"
	_ "github.com/DownSYnDdev/QuantLabEngine/pkg/validator"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run check suites over the account configs",
	Long:  `Run one or more registered check suites interactively or with specified suite names`,
	RunE:  runAudit,
}

func init() {
	auditCmd.Flags().StringSliceP("suite", "s", nil, "suite name(s) to run")
}

func runAudit(cmd *cobra.Command, _ []string) error {
	names, err := selectSuites(cmd)
	if err != nil {
		return fmt.Errorf("failed to select suites: %w", err)
	}

	batch, err := resolveBatch()
	if err != nil {
		return err
	}

	var blockingFailures int
	for _, name := range names {
		s, err := suite.DefaultRegistry.Get(name)
		if err != nil {
			return fmt.Errorf("failed to get suite: %w", err)
		}

		logger.Progressf("Running suite: %s", s.Name())
		outcome, err := s.Run(cmd.Context(), batch)
		if err != nil {
			return fmt.Errorf("suite %s failed: %w", name, err)
		}

		if outcome.Clean() {
			logger.Successf("%s: %d/%d passed", outcome.Suite, outcome.Passed, len(batch.Files))
		} else {
			logger.Warnf("%s: %d failed, %d errored", outcome.Suite, outcome.Failed, outcome.Errored)
			if outcome.Blocking {
				blockingFailures += outcome.Failed + outcome.Errored
			}
		}
	}

	if blockingFailures > 0 {
		return fmt.Errorf("%d configurations failed blocking checks", blockingFailures)
	}

	logger.Success("Audit completed successfully")
	return nil
}

// selectSuites returns the suites named via flag, or prompts for a
// selection when none were given.
func selectSuites(cmd *cobra.Command) ([]string, error) {
	names, _ := cmd.Flags().GetStringSlice("suite")
	if len(names) > 0 {
		for _, name := range names {
			if _, err := suite.DefaultRegistry.Get(name); err != nil {
				return nil, err
			}
		}
		return names, nil
	}

	available := suite.DefaultRegistry.List()
	if len(available) == 0 {
		return nil, fmt.Errorf("no suites registered")
	}

	var selected []string
	prompt := &survey.MultiSelect{
		Message: "Select suites to run:",
		Options: available,
		Default: available,
	}
	if err := survey.AskOne(prompt, &selected, survey.WithValidator(survey.Required)); err != nil {
		return nil, err
	}

	return selected, nil
}
