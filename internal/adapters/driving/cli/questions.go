package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
)

var questionsJSON bool

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the questionnaire",
	Long: `Fetch the questionnaire from the backend and print it in the order it
is asked: rating questions first, then open questions.`,
	Args: cobra.NoArgs,
	RunE: runQuestions,
}

func init() {
	questionsCmd.Flags().BoolVar(&questionsJSON, "json", false, "output questions as JSON")
	rootCmd.AddCommand(questionsCmd)
}

// questionView is the JSON shape of a question.
type questionView struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Prompt      string `json:"prompt"`
	Scale       string `json:"scale,omitempty"`
	Dimension   string `json:"dimension,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	List        bool   `json:"list,omitempty"`
}

func runQuestions(cmd *cobra.Command, _ []string) error {
	if questionnaireService == nil {
		return errors.New("questionnaire service not configured")
	}

	seq, err := questionnaireService.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load questionnaire: %w", err)
	}

	if questionsJSON {
		return outputQuestionsJSON(cmd, seq)
	}
	return outputQuestionsList(cmd, seq)
}

func outputQuestionsJSON(cmd *cobra.Command, seq domain.QuestionSequence) error {
	views := make([]questionView, len(seq))
	for i, q := range seq {
		views[i] = questionView{
			ID:          q.ID,
			Kind:        q.Kind.String(),
			Prompt:      domain.PlainText(q.Prompt),
			Scale:       q.Scale,
			Dimension:   q.Dimension,
			Placeholder: q.Placeholder,
			List:        q.IsList,
		}
	}
	data, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal questions: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputQuestionsList(cmd *cobra.Command, seq domain.QuestionSequence) error {
	if seq.Len() == 0 {
		cmd.Println("The questionnaire is empty.")
		return nil
	}

	cmd.Printf("Questionnaire (%d questions):\n\n", seq.Len())
	for i, q := range seq {
		cmd.Printf("  [%d] %s %s\n", i+1, questionTag(q), domain.PlainText(q.Prompt))
		cmd.Printf("      ID: %s\n", q.ID)
		switch {
		case q.Kind == domain.KindRating && q.Scale != "":
			cmd.Printf("      Scale: %s\n", q.Scale)
		case q.Kind == domain.KindOpen && q.Placeholder != "":
			cmd.Printf("      Example: %s\n", q.Placeholder)
		}
	}
	return nil
}

func questionTag(q domain.Question) string {
	switch {
	case q.Kind == domain.KindRating:
		return "(rating)"
	case q.IsList:
		return "(list)"
	default:
		return "(text)"
	}
}
