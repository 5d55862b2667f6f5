// Package config manages workspace definitions: named sets of config
// directory, schema resource, and artifact output directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Workspace names one set of configuration documents to audit
type Workspace struct {
	Name      string `yaml:"name"`
	ConfigDir string `yaml:"config_dir"`
	Schema    string `yaml:"schema"`
	OutputDir string `yaml:"output_dir,omitempty"`
}

// Config holds the workspace definitions
type Config struct {
	Workspaces []Workspace `yaml:"workspaces"`
	Selected   string      `yaml:"selected,omitempty"`
}

// LoadWorkspaces loads workspace definitions from the default location
func LoadWorkspaces() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, ".quantlab", "workspaces.yaml")
	return LoadWorkspacesFromFile(configPath)
}

// LoadWorkspacesFromFile loads workspace definitions from a specific file
func LoadWorkspacesFromFile(path string) (*Config, error) {
	// If file doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return getDefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspaces file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse workspaces file: %w", err)
	}

	return &config, nil
}

// SaveWorkspaces saves the workspace definitions to the default location
func SaveWorkspaces(config *Config) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".quantlab")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "workspaces.yaml")
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal workspaces: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write workspaces file: %w", err)
	}

	return nil
}

// Find returns the named workspace
func (c *Config) Find(name string) (*Workspace, error) {
	for i := range c.Workspaces {
		if c.Workspaces[i].Name == name {
			return &c.Workspaces[i], nil
		}
	}
	return nil, fmt.Errorf("workspace %s not found", name)
}

// Remove drops the named workspace. When it was the selected one the
// selection falls back to the first remaining workspace.
func (c *Config) Remove(name string) {
	remaining := make([]Workspace, 0, len(c.Workspaces))
	for _, ws := range c.Workspaces {
		if ws.Name != name {
			remaining = append(remaining, ws)
		}
	}
	c.Workspaces = remaining

	if c.Selected == name {
		c.Selected = ""
		if len(c.Workspaces) > 0 {
			c.Selected = c.Workspaces[0].Name
		}
	}
}

// getDefaultConfig returns the default workspace layout: configs/
// alongside the binary with the schema resource inside it.
func getDefaultConfig() *Config {
	return &Config{
		Workspaces: []Workspace{
			{
				Name:      "local",
				ConfigDir: "configs",
				Schema:    filepath.Join("configs", "account-schema.json"),
				OutputDir: "configs",
			},
		},
		Selected: "local",
	}
}
