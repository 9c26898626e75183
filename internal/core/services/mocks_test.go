package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
)

var errBackendDown = errors.New("connection refused")

type mockSource struct {
	FetchFunc func(ctx context.Context) (*domain.Questionnaire, error)
	calls     int
}

func (m *mockSource) FetchQuestionnaire(ctx context.Context) (*domain.Questionnaire, error) {
	m.calls++
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return testQuestionnaire(), nil
}

type mockRecommender struct {
	mu            sync.Mutex
	RecommendFunc func(ctx context.Context, responses domain.ResponseSet) (*domain.RecommendationResult, error)
	calls         int
	last          domain.ResponseSet
}

func (m *mockRecommender) Recommend(ctx context.Context, responses domain.ResponseSet) (*domain.RecommendationResult, error) {
	m.mu.Lock()
	m.calls++
	m.last = responses
	m.mu.Unlock()
	if m.RecommendFunc != nil {
		return m.RecommendFunc(ctx, responses)
	}
	return testResult(), nil
}

type mockPacer struct {
	err   error
	waits int
}

func (m *mockPacer) Wait(_ context.Context) error {
	m.waits++
	return m.err
}

type mockChecker struct {
	health *domain.BackendHealth
	err    error
}

func (m *mockChecker) Health(_ context.Context) (*domain.BackendHealth, error) {
	return m.health, m.err
}

func (m *mockChecker) BaseURL() string {
	return "http://localhost:8000"
}

// testQuestionnaire is a rating question followed by a list-declared open question.
func testQuestionnaire() *domain.Questionnaire {
	return &domain.Questionnaire{
		Rating: []domain.Question{
			{ID: "q1", Kind: domain.KindRating, Prompt: "J'aime la musique énergique", Scale: "1 = pas du tout, 5 = tout à fait", Dimension: "energy"},
		},
		Open: []domain.Question{
			{ID: "q2", Kind: domain.KindOpen, Prompt: "Vos genres préférés ?", Placeholder: "rock, jazz", Format: domain.FormatList},
		},
	}
}

func testResult() *domain.RecommendationResult {
	return &domain.RecommendationResult{
		UserID:          "user_1",
		PreferredGenres: []string{"rock", "pop"},
		Openness:        3.5,
		Stats:           domain.Statistics{Evaluated: 42, Mean: 0.6, Max: 0.87, Min: 0.2},
		Analysis:        &domain.Analysis{Narrative: "Vous aimez **l'énergie**.", Plan: "Explorez le jazz."},
		Items: []domain.Recommendation{
			{
				Rank: 1, Kind: domain.KindTrack, ID: "t1", Name: "Yellow", Artist: "Coldplay", Genre: "rock",
				ListenURL: "https://open.spotify.com/search/Yellow", Score: 0.873,
				SubScores: domain.SubScores{Semantic: 0.9, Mood: 0.5, Preference: 0.7, GenreBoost: 0.1},
			},
			{
				Rank: 2, Kind: "mood", ID: "calme", Name: "Calme", Description: "Pour se détendre", Score: 0.5,
				SubScores: domain.SubScores{Semantic: 0.4, Mood: 0.6, Preference: 0.5},
			},
		},
	}
}

func entryKinds(entries []domain.TranscriptEntry) []domain.EntryKind {
	kinds := make([]domain.EntryKind, len(entries))
	for i, e := range entries {
		kinds[i] = e.Kind
	}
	return kinds
}
