package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/capital/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate or validate configuration files",
	Long: `Manage the game configuration.

Subcommands:
  init     - Generate a default configuration file
  validate - Validate the configuration in use

The format follows the file extension: .yaml/.yml, .json or .toml.

Examples:
  capital config init
  capital config init -o capital.toml
  capital --config capital.toml config validate`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration in use",
	Args:  cobra.NoArgs,
	RunE:  runConfigValidate,
}

var configInitOutput string

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "", "output config file path (default is $XDG_CONFIG_HOME/capital/config.yaml)")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configInitOutput
	if path == "" {
		path = config.DefaultPath()
	}

	cfg := config.Default()
	if err := cfg.SaveToFile(path); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Created default configuration: %s\n", path)
	fmt.Fprintf(out, "  Saved game: %s\n", cfg.Store.DBPath)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "✓ Configuration valid")
	switch cfg.Store.Type {
	case "sqlite":
		fmt.Fprintf(out, "  Store: sqlite (%s)\n", cfg.Store.DBPath)
	case "redis":
		fmt.Fprintf(out, "  Store: redis (%s db %d)\n", cfg.Store.RedisAddr, cfg.Store.RedisDB)
	default:
		fmt.Fprintf(out, "  Store: %s\n", cfg.Store.Type)
	}
	fmt.Fprintf(out, "  Journal: %s\n", cfg.Journal.Type)
	fmt.Fprintf(out, "  Log level: %s\n", cfg.Log.Level)
	return nil
}
