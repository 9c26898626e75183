package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driving/tui/components/transcript"
	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driving"
	"github.com/custodia-labs/vibeyf-cli/internal/logger"
)

// DefaultMaxAttempts bounds how often one question is re-prompted after a
// rejected answer.
const DefaultMaxAttempts = 3

// ErrTooManyAttempts is returned when a question keeps being answered invalidly.
var ErrTooManyAttempts = errors.New("too many invalid answers")

// AnswerSource supplies raw answers for questions.
// For rating questions the answer is the rating as text.
type AnswerSource interface {
	Answer(ctx context.Context, q domain.Question, p domain.Progress) (string, error)
}

// Runner drives a questionnaire run over line-oriented I/O.
type Runner struct {
	runner      driving.QuestionnaireRunner
	source      AnswerSource
	out         io.Writer
	renderer    *transcript.Renderer
	maxAttempts int
}

// NewRunner creates a console runner writing entries to out.
func NewRunner(runner driving.QuestionnaireRunner, source AnswerSource, out io.Writer) *Runner {
	return &Runner{
		runner:      runner,
		source:      source,
		out:         out,
		renderer:    transcript.NewRenderer(styles.DefaultStyles()),
		maxAttempts: DefaultMaxAttempts,
	}
}

// WithMaxAttempts sets how often a rejected question is re-prompted.
func (r *Runner) WithMaxAttempts(n int) *Runner {
	if n > 0 {
		r.maxAttempts = n
	}
	return r
}

// WithWidth wraps printed entries at the given width.
func (r *Runner) WithWidth(width int) *Runner {
	r.renderer.SetWidth(width)
	return r
}

// Run performs one complete run and returns once results are shown. Load
// and submission failures are printed as transcript entries and returned.
func (r *Runner) Run(ctx context.Context) error {
	r.runner.SetObserver(r.print)
	defer r.runner.SetObserver(nil)

	if err := r.runner.Start(ctx); err != nil {
		return err
	}

	attempts := 0
	for {
		q, ok := r.runner.Current()
		if !ok {
			return nil
		}

		raw, err := r.source.Answer(ctx, q, r.runner.Progress())
		if err != nil {
			return fmt.Errorf("read answer for %s: %w", q.ID, err)
		}

		err = r.runner.Dispatch(ctx, domain.AnswerFor(q, raw))
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			attempts++
			logger.Debug("rejected answer for %s: %s", q.ID, vErr.Reason)
			if attempts >= r.maxAttempts {
				return fmt.Errorf("%w: %s: %w", ErrTooManyAttempts, q.ID, err)
			}
			fmt.Fprintln(r.out, hint(q))
			continue
		}
		if err != nil {
			return err
		}
		attempts = 0
	}
}

// print writes an entry as it is appended. The restart prompt is dropped:
// a console run ends with its results and cannot be restarted in place.
func (r *Runner) print(e domain.TranscriptEntry) {
	if e.Kind == domain.EntryRestart {
		return
	}
	fmt.Fprintln(r.out, r.renderer.Entry(e))
	fmt.Fprintln(r.out)
}

func hint(q domain.Question) string {
	if q.Kind == domain.KindRating {
		return fmt.Sprintf("Veuillez entrer une note entre %d et %d.", domain.RatingMin, domain.RatingMax)
	}
	return "Veuillez saisir une réponse."
}
