package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/DownSYnDdev/QuantLabEngine/pkg/flow"
	"github.com/DownSYnDdev/QuantLabEngine/pkg/logger"
	"github.com/DownSYnDdev/QuantLabEngine/pkg/report"
)

var flowCmd = &cobra.Command{
	Use:   "flow",
	Short: "Run the offline integration flow scenario",
	Long: `Run the provision -> webhook -> trade -> audit -> verify
scenario against one account config. Every response is synthesized
locally; no live service is contacted.`,
	RunE: runFlow,
}

func init() {
	flowCmd.Flags().String("file", "25k-eval-v1.json", "config document to provision from")
	flowCmd.Flags().String("tenant", "tenantA", "tenant identifier")
	flowCmd.Flags().String("user", "user_12345", "user identifier")
	flowCmd.Flags().String("secret", "whsec_test_abc123", "webhook signing secret")
}

func runFlow(cmd *cobra.Command, _ []string) error {
	batch, err := resolveBatch()
	if err != nil {
		return err
	}

	file, _ := cmd.Flags().GetString("file")
	configPath := file
	if !filepath.IsAbs(file) && filepath.Dir(file) == "." {
		configPath = filepath.Join(filepath.Dir(batch.Files[0]), file)
	}

	opts := flow.DefaultOptions(configPath)
	opts.TenantID, _ = cmd.Flags().GetString("tenant")
	opts.UserID, _ = cmd.Flags().GetString("user")
	opts.WebhookSecret, _ = cmd.Flags().GetString("secret")

	logger.LogSection("Integration Flow Dry-Run")
	logger.LogKeyValue("Tenant", opts.TenantID)
	logger.LogKeyValue("User", opts.UserID)
	logger.LogKeyValue("Config", filepath.Base(configPath))

	rep, err := flow.Run(opts)
	if err != nil {
		return err
	}

	for _, step := range rep.Steps {
		if step.Status == flow.StatusPass {
			logger.Successf("%s: %s", step.Step, step.Status)
		} else {
			logger.Failuref("%s: %s", step.Step, step.Status)
		}
	}

	path, err := report.WriteJSON(batch.OutputDir, flow.ResultsArtifact, rep)
	if err != nil {
		return err
	}
	logger.Infof("%s Flow results saved to: %s", logger.IconSave, path)

	if rep.Status != flow.StatusPass {
		return fmt.Errorf("integration flow finished with status %s", rep.Status)
	}
	logger.Success("All flow steps passed")
	return nil
}
