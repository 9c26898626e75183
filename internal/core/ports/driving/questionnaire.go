package driving

import (
	"context"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
)

// QuestionnaireRunner drives one interactive questionnaire run.
// A front end starts the run, submits answers as commands and renders the
// transcript entries it is notified of.
type QuestionnaireRunner interface {
	// Start begins a fresh run, discarding any previous one.
	// Returns an error wrapping domain.ErrLoad if the questions cannot be loaded.
	Start(ctx context.Context) error

	// Dispatch applies a command to the current run.
	Dispatch(ctx context.Context, cmd domain.Command) error

	// State returns the current lifecycle state.
	State() domain.EngineState

	// Current returns the question awaiting an answer.
	// The boolean is false outside the awaiting state.
	Current() (domain.Question, bool)

	// Progress returns the position of the current question.
	Progress() domain.Progress

	// Transcript returns a copy of every entry appended so far.
	Transcript() []domain.TranscriptEntry

	// Result returns the scoring result once the run is done.
	Result() *domain.RecommendationResult

	// SetObserver registers a callback invoked for each appended entry.
	SetObserver(fn func(domain.TranscriptEntry))
}

// QuestionnaireService exposes the question set outside of a run.
type QuestionnaireService interface {
	// Load fetches and flattens the question set.
	Load(ctx context.Context) (domain.QuestionSequence, error)
}

// HealthService reports on the scoring backend.
type HealthService interface {
	// Check probes the backend.
	Check(ctx context.Context) (*domain.BackendHealth, error)

	// Endpoint returns the backend address being probed.
	Endpoint() string
}

// HistoryService reads the local run archive.
type HistoryService interface {
	// List returns archived runs, newest first.
	List(ctx context.Context, limit int) ([]domain.RunSummary, error)

	// Get retrieves a full run record.
	Get(ctx context.Context, id string) (*domain.RunRecord, error)

	// Delete removes a run from the archive.
	Delete(ctx context.Context, id string) error
}
