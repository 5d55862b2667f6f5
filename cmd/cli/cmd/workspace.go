package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/DownSYnDdev/QuantLabEngine/pkg/config"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Manage workspaces",
	Long:  `Manage workspace definitions: named sets of config directory, schema resource, and artifact output directory`,
}

var workspaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured workspaces",
	RunE:  listWorkspaces,
}

var workspaceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new workspace",
	RunE:  addWorkspace,
}

var workspaceRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a workspace",
	RunE:  removeWorkspace,
}

var workspaceSelectCmd = &cobra.Command{
	Use:   "select",
	Short: "Select the default workspace",
	RunE:  selectDefaultWorkspace,
}

func init() {
	workspaceCmd.AddCommand(workspaceListCmd)
	workspaceCmd.AddCommand(workspaceAddCmd)
	workspaceCmd.AddCommand(workspaceRemoveCmd)
	workspaceCmd.AddCommand(workspaceSelectCmd)
}

func listWorkspaces(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWorkspaces()
	if err != nil {
		return fmt.Errorf("failed to load workspaces: %w", err)
	}

	if len(cfg.Workspaces) == 0 {
		fmt.Println("No workspaces configured")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tCONFIG DIR\tSCHEMA\tOUTPUT DIR")
	_, _ = fmt.Fprintln(w, "----\t----------\t------\t----------")

	for _, ws := range cfg.Workspaces {
		name := ws.Name
		if ws.Name == cfg.Selected {
			name = ws.Name + " *"
		}
		out := ws.OutputDir
		if out == "" {
			out = ws.ConfigDir
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, ws.ConfigDir, ws.Schema, out)
	}

	return w.Flush()
}

func addWorkspace(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWorkspaces()
	if err != nil {
		return fmt.Errorf("failed to load workspaces: %w", err)
	}

	var ws config.Workspace

	// Prompt for name
	namePrompt := &survey.Input{
		Message: "Workspace name:",
	}
	if err := survey.AskOne(namePrompt, &ws.Name, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	// Check if name already exists
	for _, existing := range cfg.Workspaces {
		if existing.Name == ws.Name {
			return fmt.Errorf("workspace %s already exists", ws.Name)
		}
	}

	// Prompt for config directory
	dirPrompt := &survey.Input{
		Message: "Config directory:",
		Default: "configs",
	}
	if err := survey.AskOne(dirPrompt, &ws.ConfigDir, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	// Prompt for schema resource
	schemaPrompt := &survey.Input{
		Message: "Schema resource path:",
		Default: "configs/account-schema.json",
	}
	if err := survey.AskOne(schemaPrompt, &ws.Schema, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	// Prompt for output directory; empty falls back to the config dir
	outPrompt := &survey.Input{
		Message: "Artifact output directory (empty = config dir):",
	}
	if err := survey.AskOne(outPrompt, &ws.OutputDir); err != nil {
		return err
	}

	cfg.Workspaces = append(cfg.Workspaces, ws)
	if cfg.Selected == "" {
		cfg.Selected = ws.Name
	}

	if err := config.SaveWorkspaces(cfg); err != nil {
		return fmt.Errorf("failed to save workspaces: %w", err)
	}

	fmt.Printf("Workspace %s added successfully\n", ws.Name)
	return nil
}

func removeWorkspace(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWorkspaces()
	if err != nil {
		return fmt.Errorf("failed to load workspaces: %w", err)
	}

	if len(cfg.Workspaces) == 0 {
		fmt.Println("No workspaces to remove")
		return nil
	}

	names := make([]string, len(cfg.Workspaces))
	for i, ws := range cfg.Workspaces {
		names[i] = ws.Name
	}

	var selected string
	prompt := &survey.Select{
		Message: "Select workspace to remove:",
		Options: names,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return err
	}

	var confirm bool
	confirmPrompt := &survey.Confirm{
		Message: fmt.Sprintf("Are you sure you want to remove %s?", selected),
		Default: false,
	}
	if err := survey.AskOne(confirmPrompt, &confirm); err != nil {
		return err
	}

	if !confirm {
		fmt.Println("Removal cancelled")
		return nil
	}

	cfg.Remove(selected)

	if err := config.SaveWorkspaces(cfg); err != nil {
		return fmt.Errorf("failed to save workspaces: %w", err)
	}

	fmt.Printf("Workspace %s removed successfully\n", selected)
	return nil
}

func selectDefaultWorkspace(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWorkspaces()
	if err != nil {
		return fmt.Errorf("failed to load workspaces: %w", err)
	}

	if len(cfg.Workspaces) == 0 {
		fmt.Println("No workspaces configured")
		return nil
	}

	names := make([]string, len(cfg.Workspaces))
	for i, ws := range cfg.Workspaces {
		names[i] = ws.Name
	}

	var selected string
	prompt := &survey.Select{
		Message: "Select default workspace:",
		Options: names,
		Default: cfg.Selected,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return err
	}

	cfg.Selected = selected
	if err := config.SaveWorkspaces(cfg); err != nil {
		return fmt.Errorf("failed to save workspaces: %w", err)
	}

	fmt.Printf("Workspace %s selected\n", selected)
	return nil
}
