package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DownSYnDdev/QuantLabEngine/pkg/logger"
)

var (
	cfgFile       string
	workspaceName string
	configDir     string
	schemaPath    string
	outputDir     string
	logLevel      string
	noColor       bool
	scanAll       bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "quantlab",
	Short: "Trading-account config audit CLI",
	Long: `QuantLab is a tool for auditing prop-trading account
configuration documents before they are provisioned: schema
validation, provisioning dry-runs, and offline integration
flow checks.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.quantlab/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&workspaceName, "workspace", "", "workspace name to use")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory holding account config documents (overrides workspace)")
	rootCmd.PersistentFlags().StringVar(&schemaPath, "schema", "", "schema resource path (overrides workspace)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "directory for run artifacts (overrides workspace)")
	rootCmd.PersistentFlags().BoolVar(&scanAll, "all", false, "scan the config directory instead of using the canonical file list")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add commands
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(flowCmd)
	rootCmd.AddCommand(workspaceCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	// Configure logger based on flags
	logger.SetLevel(logger.ParseLevel(logLevel))
	logger.SetNoColor(noColor)

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in home directory
		viper.AddConfigPath("$HOME/.quantlab")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in
	_ = viper.ReadInConfig()
}
