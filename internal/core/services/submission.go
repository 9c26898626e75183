package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driven"
	"github.com/custodia-labs/vibeyf-cli/internal/logger"
)

// Submitter sends a completed response set for scoring.
type Submitter struct {
	recommender driven.Recommender
}

// NewSubmitter creates a submitter.
func NewSubmitter(recommender driven.Recommender) *Submitter {
	return &Submitter{recommender: recommender}
}

// Submit makes exactly one scoring request. Every failure wraps
// domain.ErrSubmission.
func (s *Submitter) Submit(ctx context.Context, responses domain.ResponseSet) (*domain.RecommendationResult, error) {
	if s.recommender == nil {
		return nil, fmt.Errorf("%w: no recommender configured", domain.ErrSubmission)
	}

	logger.Section("Submit")
	logger.Debug("submitting %d ratings and %d open answers", len(responses.Ratings), len(responses.Open))
	defer logger.Timed("recommendation request")()

	result, err := s.recommender.Recommend(ctx, responses)
	if err != nil {
		if errors.Is(err, domain.ErrSubmission) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrSubmission, err)
	}
	if result == nil {
		return nil, fmt.Errorf("%w: empty response", domain.ErrSubmission)
	}

	logger.Debug("received %d recommendations", len(result.Items))
	return result, nil
}
