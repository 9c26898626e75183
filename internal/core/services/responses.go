package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
)

// ResponseStore collects the answers of one run. Each identifier can be
// written at most once.
type ResponseStore struct {
	mu  sync.RWMutex
	set domain.ResponseSet
}

// NewResponseStore creates an empty store.
func NewResponseStore() *ResponseStore {
	return &ResponseStore{set: domain.NewResponseSet()}
}

// SetRating records a rating answer.
func (s *ResponseStore) SetRating(id string, value int) error {
	if !domain.ValidRating(value) {
		return fmt.Errorf("%w: rating %d out of range", domain.ErrInvalidInput, value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.set.Has(id) {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyAnswered, id)
	}
	s.set.Ratings[id] = value
	return nil
}

// SetOpen records an open answer. List answers are split on commas,
// trimmed and emptied of blank items; other answers are trimmed.
func (s *ResponseStore) SetOpen(id, raw string, isList bool) (domain.OpenAnswer, error) {
	var answer domain.OpenAnswer
	if isList {
		answer.Items = domain.SplitList(raw)
	} else {
		answer.Text = strings.TrimSpace(raw)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.set.Has(id) {
		return domain.OpenAnswer{}, fmt.Errorf("%w: %s", domain.ErrAlreadyAnswered, id)
	}
	s.set.Open[id] = answer
	return answer, nil
}

// Snapshot returns a deep copy of the collected answers.
func (s *ResponseStore) Snapshot() domain.ResponseSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Clone()
}

// Len returns the number of answers recorded.
func (s *ResponseStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Len()
}

// Reset discards every answer.
func (s *ResponseStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set = domain.NewResponseSet()
}
