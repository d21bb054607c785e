package cli

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"settings"},
	Short:   "Show or change client settings",
	Long: `View and change the settings stored in the config file.

Environment variables (CATALOG_API_URL, CATALOG_USER_ROLE, CATALOG_USER_NAME)
and command line flags take precedence over stored values.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show stored settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a setting",
	Long: `Store a setting in the config file.

Keys:
  api.base_url      Catalog API base URL
  api.timeout       Request timeout in seconds (0 = none)
  api.rate_limit    Requests per second (0 = unlimited)
  user.name         Display name
  user.role         Role (Admin may manage services)
  display.currency  Currency symbol shown before prices
  log.file          Log file used while the TUI runs`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured
	}

	values, err := settingsService.Values()
	if err != nil {
		return err
	}

	if path := settingsService.Path(); path != "" {
		cmd.Printf("Config file: %s\n\n", path)
	}
	for _, key := range settingsService.Keys() {
		value := values[key]
		if value == "" {
			value = "(not set)"
		}
		cmd.Printf("  %-18s %s\n", key, value)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}

	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}
