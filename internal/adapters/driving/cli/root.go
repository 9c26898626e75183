package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driving"
	"github.com/custodia-labs/vibeyf-cli/internal/logger"
)

// version is overridden at build time via SetVersion.
var version = "dev"

// skipServices marks commands that run without building services.
const skipServices = "skip-services"

// Services bundles the driving ports used by the commands.
type Services struct {
	Runner        driving.QuestionnaireRunner
	Questionnaire driving.QuestionnaireService
	Health        driving.HealthService
	History       driving.HistoryService
	Settings      driving.SettingsService

	// Runners creates independent runners for requests served concurrently.
	Runners func() driving.QuestionnaireRunner

	// LogPath receives verbose logs while the TUI owns the terminal.
	LogPath string
}

// Options carries global flag values to the service factory.
type Options struct {
	// NoConfig ignores the config file and uses defaults.
	NoConfig bool

	// BackendURL overrides the configured backend address when set.
	BackendURL string
}

// Factory builds the services for one invocation. The returned cleanup
// runs once the command has finished.
type Factory func(opts Options) (*Services, func(), error)

var (
	runner               driving.QuestionnaireRunner
	questionnaireService driving.QuestionnaireService
	healthService        driving.HealthService
	historyService       driving.HistoryService
	settingsService      driving.SettingsService
	runnerFactory        func() driving.QuestionnaireRunner
	logPath              string

	factory Factory
	cleanup func()

	verbose         bool
	noConfig        bool
	backendOverride string
)

var rootCmd = &cobra.Command{
	Use:   "vibeyf",
	Short: "Music recommendations from a short questionnaire",
	Long: `Vibeyf asks a handful of questions about your listening habits,
sends your answers to the scoring backend and reveals a ranked list of
tracks and artists picked for you.

Run 'vibeyf run' to start the questionnaire.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false, "ignore the config file and use defaults")
	rootCmd.PersistentFlags().StringVar(&backendOverride, "backend", "", "backend URL (overrides settings)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetFactory registers the function that builds services before each command.
func SetFactory(f Factory) {
	factory = f
}

// SetServices installs the driving ports directly. A nil value clears them.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	runner = s.Runner
	questionnaireService = s.Questionnaire
	healthService = s.Health
	historyService = s.History
	settingsService = s.Settings
	runnerFactory = s.Runners
	logPath = s.LogPath
}

// Execute runs the root command and releases whatever the factory opened.
func Execute(ctx context.Context) error {
	defer func() {
		if cleanup != nil {
			cleanup()
			cleanup = nil
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if factory == nil || cmd.Annotations[skipServices] == "true" {
		return nil
	}

	defer logger.Timed("service setup")()

	svc, clean, err := factory(Options{NoConfig: noConfig, BackendURL: backendOverride})
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	SetServices(svc)
	cleanup = clean
	return nil
}
