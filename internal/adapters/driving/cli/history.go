package cli

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driving/tui/components/transcript"
	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
	"github.com/custodia-labs/vibeyf-cli/internal/core/services"
)

const timeLayout = "2006-01-02 15:04"

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past questionnaire runs",
	Long: `List completed runs kept in the local archive, newest first.

Use 'vibeyf history show <id>' to replay a run's recommendations.`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show an archived run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an archived run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs")
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	runs, err := historyService.List(cmd.Context(), historyLimit)
	if errors.Is(err, services.ErrHistoryDisabled) {
		printHistoryDisabled(cmd)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No runs recorded yet. Run 'vibeyf run' to get recommendations.")
		return nil
	}

	cmd.Println("Runs:")
	cmd.Println()
	for _, r := range runs {
		cmd.Printf("  %s  %s  %d answers\n", r.ID, r.CompletedAt.Local().Format(timeLayout), r.Answers)
		if r.TopItem != "" {
			cmd.Printf("      Top pick: %s\n", r.TopItem)
		}
		if len(r.Genres) > 0 {
			cmd.Printf("      Genres: %s\n", strings.Join(r.Genres, ", "))
		}
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	run, err := historyService.Get(cmd.Context(), args[0])
	if errors.Is(err, services.ErrHistoryDisabled) {
		printHistoryDisabled(cmd)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}

	cmd.Printf("Run %s\n", run.ID)
	cmd.Printf("  Completed: %s\n", run.CompletedAt.Local().Format(timeLayout))
	if run.BackendURL != "" {
		cmd.Printf("  Backend: %s\n", run.BackendURL)
	}
	cmd.Println()

	cmd.Println("Answers:")
	for _, id := range slices.Sorted(maps.Keys(run.Responses.Ratings)) {
		cmd.Printf("  %s: %d\n", id, run.Responses.Ratings[id])
	}
	for _, id := range slices.Sorted(maps.Keys(run.Responses.Open)) {
		cmd.Printf("  %s: %s\n", id, run.Responses.Open[id].Display())
	}
	cmd.Println()

	renderer := transcript.NewRenderer(styles.DefaultStyles())
	renderer.SetWidth(outputWidth(cmd))
	cmd.Println(renderer.Entries(replayEntries(&run.Result)))
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	err := historyService.Delete(cmd.Context(), args[0])
	if errors.Is(err, services.ErrHistoryDisabled) {
		printHistoryDisabled(cmd)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}

	cmd.Printf("Deleted run %s\n", args[0])
	return nil
}

// replayEntries rebuilds the result reveal of an archived run without the
// restart prompt.
func replayEntries(result *domain.RecommendationResult) []domain.TranscriptEntry {
	stages := services.Stages(result)
	entries := make([]domain.TranscriptEntry, 0, len(stages))
	for _, st := range stages {
		if st.Kind == domain.EntryRestart {
			continue
		}
		entries = append(entries, domain.TranscriptEntry{
			Seq:    len(entries),
			Origin: domain.OriginBot,
			Kind:   st.Kind,
			Text:   st.Text,
			Cards:  st.Cards,
		})
	}
	return entries
}

func printHistoryDisabled(cmd *cobra.Command) {
	cmd.Println("Run history is disabled.")
	cmd.Printf("Enable it with 'vibeyf settings set %s true'.\n", services.KeyHistoryEnabled)
}
