package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driving/console"
	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/vibeyf-cli/internal/logger"
)

var (
	runPlain   bool
	runAnswers string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Answer the questionnaire and get recommendations",
	Long: `Start a questionnaire run in the chat interface.

Rating questions are answered on a 1-5 scale, open questions with free
text (comma-separated where a list is expected). Once every question is
answered the recommendations are revealed step by step.

Controls:
  ←/→, 1-5   - Choose a rating
  Enter      - Send the answer
  PgUp/PgDn  - Scroll the conversation
  r          - Start over once finished
  q, Esc     - Quit once finished
  Ctrl+C     - Quit at any time

When stdout is not a terminal, or with --plain, questions are asked line by
line instead. With --answers the run is driven from a YAML file mapping
question ids to answers.`,
	Args: cobra.NoArgs,
	RunE: runQuestionnaire,
}

func init() {
	runCmd.Flags().BoolVar(&runPlain, "plain", false, "ask questions line by line instead of the chat UI")
	runCmd.Flags().StringVar(&runAnswers, "answers", "", "YAML file of answers keyed by question id")
	rootCmd.AddCommand(runCmd)
}

func runQuestionnaire(cmd *cobra.Command, _ []string) error {
	if runner == nil {
		return errors.New("questionnaire runner not configured")
	}

	ctx := cmd.Context()

	if runAnswers != "" {
		source, err := console.LoadScript(runAnswers)
		if err != nil {
			return fmt.Errorf("failed to load answers: %w", err)
		}
		logger.Debug("scripted run with %d answers from %s", source.Len(), runAnswers)
		return console.NewRunner(runner, source, cmd.OutOrStdout()).
			WithWidth(outputWidth(cmd)).
			Run(ctx)
	}

	if runPlain || !interactive(cmd) {
		source := console.NewLineSource(cmd.InOrStdin(), cmd.OutOrStdout())
		return console.NewRunner(runner, source, cmd.OutOrStdout()).
			WithWidth(outputWidth(cmd)).
			Run(ctx)
	}

	return runTUI(cmd)
}

func runTUI(cmd *cobra.Command) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	// Logs would corrupt the alternate screen.
	if logPath != "" {
		restore, redirectErr := logger.RedirectToFile(logPath)
		if redirectErr != nil {
			logger.Warn("keeping logs on stderr: %v", redirectErr)
		} else {
			defer restore()
		}
	}

	app, err := tui.NewApp(tui.NewPorts(runner))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// terminalFd reports the descriptor behind stream and whether it is a terminal.
func terminalFd(stream any) (int, bool) {
	f, ok := stream.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// interactive is true when both input and output are terminals.
func interactive(cmd *cobra.Command) bool {
	_, in := terminalFd(cmd.InOrStdin())
	_, out := terminalFd(cmd.OutOrStdout())
	return in && out
}

// outputWidth returns the terminal width, or 0 when output is not a terminal.
func outputWidth(cmd *cobra.Command) int {
	fd, ok := terminalFd(cmd.OutOrStdout())
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
