package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the scoring backend",
	Long: `Probe the backend health endpoint and fetch the questionnaire to confirm
both are reachable. Exits with an error when the backend is down or degraded.`,
	Args: cobra.NoArgs,
	RunE: runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, _ []string) error {
	if healthService == nil {
		return errors.New("health service not configured")
	}

	ctx := cmd.Context()

	var (
		report  *domain.BackendHealth
		seq     domain.QuestionSequence
		loadErr error
		g       errgroup.Group
	)
	g.Go(func() error {
		var err error
		report, err = healthService.Check(ctx)
		return err
	})
	if questionnaireService != nil {
		g.Go(func() error {
			seq, loadErr = questionnaireService.Load(ctx)
			return nil
		})
	}
	checkErr := g.Wait()

	cmd.Printf("Backend: %s\n", healthService.Endpoint())
	if report == nil {
		cmd.Println("Status: unreachable")
	} else {
		cmd.Printf("Status: %s\n", report.Status)
		if report.Timestamp != "" {
			cmd.Printf("Checked at: %s\n", report.Timestamp)
		}
		cmd.Printf("AI analysis: %s\n", readiness(report.GenerationReady))
	}

	if questionnaireService != nil {
		if loadErr != nil {
			cmd.Printf("Questionnaire: unavailable (%v)\n", loadErr)
		} else {
			cmd.Printf("Questionnaire: %d questions (%d rating, %d open)\n",
				seq.Len(), countKind(seq, domain.KindRating), countKind(seq, domain.KindOpen))
		}
	}

	if checkErr != nil {
		return fmt.Errorf("health check failed: %w", checkErr)
	}
	return nil
}

func readiness(ready bool) string {
	if ready {
		return "ready"
	}
	return "unavailable"
}

func countKind(seq domain.QuestionSequence, kind domain.QuestionKind) int {
	n := 0
	for _, q := range seq {
		if q.Kind == kind {
			n++
		}
	}
	return n
}
