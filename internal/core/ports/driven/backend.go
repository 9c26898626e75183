package driven

import (
	"context"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
)

// QuestionnaireSource fetches the question set.
type QuestionnaireSource interface {
	// FetchQuestionnaire retrieves both question categories.
	// Returns an error when the request fails or either category is missing.
	FetchQuestionnaire(ctx context.Context) (*domain.Questionnaire, error)
}

// Recommender scores a completed response set.
type Recommender interface {
	// Recommend submits the responses and returns the ranked result.
	// Any non-success outcome is returned as an error.
	Recommend(ctx context.Context, responses domain.ResponseSet) (*domain.RecommendationResult, error)
}

// HealthChecker probes the scoring backend.
type HealthChecker interface {
	// Health returns the backend's self-reported status.
	Health(ctx context.Context) (*domain.BackendHealth, error)

	// BaseURL returns the backend address being probed.
	BaseURL() string
}
