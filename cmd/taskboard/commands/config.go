package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskboard/cmd/taskboard/output"
	"taskboard/internal/infrastructure/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage taskboard configuration settings.

Configuration is stored in YAML format at:
  ~/.config/taskboard/config.yml

Set ` + config.EnvConfigPath + ` to use another file.

Examples:
  # Show current configuration
  taskboard config show

  # Show config file location
  taskboard config path

  # Reset config to defaults
  taskboard config reset`,
}

// configShowCmd shows the current configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Show the current configuration settings, including values taken from
environment variables and --api-url.

Examples:
  # Show in YAML format (default)
  taskboard config show

  # Show in JSON format
  taskboard config show --output json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if formatter.Format() == output.FormatJSON {
			return formatter.Print(cfg)
		}
		return output.NewFormatter(output.FormatYAML, cmd.OutOrStdout()).Print(cfg)
	},
}

// configPathCmd shows the config file path
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := config.NewLoader()
		if err != nil {
			return fmt.Errorf("failed to create config loader: %w", err)
		}

		printer.Println("%s", loader.GetConfigPath())
		return nil
	},
}

// configResetCmd resets the config to defaults
var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset config to defaults",
	Long: `Reset the configuration to default values.

WARNING: This will overwrite your current configuration.
Make a backup first if you want to preserve custom settings.

Examples:
  # Reset config (with confirmation)
  taskboard config reset

  # Reset without confirmation
  taskboard config reset --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		loader, err := config.NewLoader()
		if err != nil {
			return fmt.Errorf("failed to create config loader: %w", err)
		}
		configPath := loader.GetConfigPath()

		confirm := confirmer(cmd, force)
		if !confirm(fmt.Sprintf("About to reset %s to defaults. This action cannot be undone!", configPath)) {
			printer.Info("Reset cancelled")
			return nil
		}

		if _, err := loader.Reset(); err != nil {
			return fmt.Errorf("failed to reset config: %w", err)
		}

		printer.Success("Config reset: %s", configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configResetCmd)

	configResetCmd.Flags().BoolP("force", "f", false, "Reset without confirmation")
}
