package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/DownSYnDdev/QuantLabEngine/pkg/config"
	"github.com/DownSYnDdev/QuantLabEngine/pkg/discovery"
	"github.com/DownSYnDdev/QuantLabEngine/pkg/suite"
)

// resolveBatch builds the batch for a run. Precedence per setting:
// flag, then viper config/env, then the selected workspace.
func resolveBatch() (suite.Batch, error) {
	ws, err := selectWorkspace()
	if err != nil {
		return suite.Batch{}, err
	}

	dir := firstNonEmpty(configDir, viper.GetString("config_dir"), ws.ConfigDir)
	schema := firstNonEmpty(schemaPath, viper.GetString("schema"), ws.Schema)
	out := firstNonEmpty(outputDir, viper.GetString("output_dir"), ws.OutputDir, dir)

	files, err := discovery.Resolve(dir, scanAll)
	if err != nil {
		return suite.Batch{}, err
	}
	if len(files) == 0 {
		return suite.Batch{}, fmt.Errorf("no config documents found in %s", dir)
	}

	return suite.Batch{
		Files:      files,
		SchemaPath: schema,
		OutputDir:  out,
		NoColor:    noColor,
	}, nil
}

// selectWorkspace resolves the workspace named by flag or config,
// falling back to the saved selection.
func selectWorkspace() (*config.Workspace, error) {
	cfg, err := config.LoadWorkspaces()
	if err != nil {
		return nil, fmt.Errorf("failed to load workspaces: %w", err)
	}

	name := firstNonEmpty(workspaceName, viper.GetString("workspace"), cfg.Selected)
	if name == "" && len(cfg.Workspaces) > 0 {
		return &cfg.Workspaces[0], nil
	}

	return cfg.Find(name)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
