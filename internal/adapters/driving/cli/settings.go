package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vibeyf-cli/internal/core/services"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the backend address, request timeout, reveal pacing,
list detection and run history.

Settings are stored in ~/.vibeyf/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting.

Available keys:
  backend.url                 - Backend base URL (http or https)
  backend.timeout_seconds     - Request timeout in seconds, 0 for none
  reveal.delay_ms             - Pause before each result stage, 0 to disable
  questionnaire.list_markers  - Comma-separated id fragments marking list answers
  history.enabled             - Keep completed runs (true or false)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Backend]")
	cmd.Printf("  URL: %s\n", settings.Backend.URL)
	if settings.Backend.Timeout > 0 {
		cmd.Printf("  Timeout: %s\n", settings.Backend.Timeout)
	} else {
		cmd.Printf("  Timeout: none\n")
	}
	cmd.Println()

	cmd.Println("[Reveal]")
	if settings.Reveal.Delay > 0 {
		cmd.Printf("  Delay: %s\n", settings.Reveal.Delay)
	} else {
		cmd.Printf("  Delay: off\n")
	}
	cmd.Println()

	cmd.Println("[Questionnaire]")
	cmd.Printf("  List markers: %s\n", strings.Join(settings.Questionnaire.ListMarkers, ", "))
	cmd.Println()

	cmd.Println("[History]")
	if settings.History.Enabled {
		cmd.Printf("  Enabled: yes\n")
	} else {
		cmd.Printf("  Enabled: no\n")
	}
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Printf("Run 'vibeyf settings set %s <url>' to fix it.\n", services.KeyBackendURL)
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if !slices.Contains(settingsService.Keys(), key) {
		cmd.Printf("Available keys: %s\n", strings.Join(settingsService.Keys(), ", "))
	}
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s to %s\n", key, value)
	return nil
}
