package driven

import (
	"context"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
)

// RunStore persists completed questionnaire runs.
type RunStore interface {
	// Save stores a run record, replacing any record with the same ID.
	Save(ctx context.Context, run *domain.RunRecord) error

	// Get retrieves a run by ID.
	// Returns domain.ErrNotFound if the run does not exist.
	Get(ctx context.Context, id string) (*domain.RunRecord, error)

	// List returns runs ordered by completion time, newest first.
	// A limit of zero or less returns all runs.
	List(ctx context.Context, limit int) ([]domain.RunRecord, error)

	// Delete removes a run by ID.
	// Returns domain.ErrNotFound if the run does not exist.
	Delete(ctx context.Context, id string) error
}
