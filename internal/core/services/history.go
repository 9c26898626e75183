package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driven"
	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// ErrHistoryDisabled is returned when no run archive is configured.
var ErrHistoryDisabled = errors.New("run history is disabled")

// HistoryService reads the local run archive.
type HistoryService struct {
	store driven.RunStore
}

// NewHistoryService creates a history service. store may be nil.
func NewHistoryService(store driven.RunStore) *HistoryService {
	return &HistoryService{store: store}
}

// List returns archived runs, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.RunSummary, error) {
	if s.store == nil {
		return nil, ErrHistoryDisabled
	}
	runs, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	summaries := make([]domain.RunSummary, len(runs))
	for i := range runs {
		summaries[i] = runs[i].Summary()
	}
	return summaries, nil
}

// Get retrieves a full run record.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.RunRecord, error) {
	if s.store == nil {
		return nil, ErrHistoryDisabled
	}
	return s.store.Get(ctx, id)
}

// Delete removes a run from the archive.
func (s *HistoryService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return ErrHistoryDisabled
	}
	return s.store.Delete(ctx, id)
}
