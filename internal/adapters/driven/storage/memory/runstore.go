package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
type RunStore struct {
	mu   sync.RWMutex
	runs map[string]domain.RunRecord
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{
		runs: make(map[string]domain.RunRecord),
	}
}

// Save stores or replaces a run.
func (s *RunStore) Save(_ context.Context, run *domain.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *run
	stored.Responses = run.Responses.Clone()
	s.runs[run.ID] = stored
	return nil
}

// Get retrieves a run by ID.
func (s *RunStore) Get(_ context.Context, id string) (*domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	run.Responses = run.Responses.Clone()
	return &run, nil
}

// List returns runs newest first.
func (s *RunStore) List(_ context.Context, limit int) ([]domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.RunRecord, 0, len(s.runs))
	for _, run := range s.runs {
		result = append(result, run)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CompletedAt.Equal(result[j].CompletedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CompletedAt.After(result[j].CompletedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Delete removes a run.
func (s *RunStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.runs, id)
	return nil
}
