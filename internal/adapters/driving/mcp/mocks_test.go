package mcp

import (
	"context"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driving"
	"github.com/custodia-labs/vibeyf-cli/internal/core/services"
)

// mockQuestionnaireService is a mock implementation of driving.QuestionnaireService.
type mockQuestionnaireService struct {
	questions domain.QuestionSequence
	err       error
}

func (m *mockQuestionnaireService) Load(_ context.Context) (domain.QuestionSequence, error) {
	return m.questions, m.err
}

// mockHealthService is a mock implementation of driving.HealthService.
type mockHealthService struct {
	report *domain.BackendHealth
	err    error
}

func (m *mockHealthService) Check(_ context.Context) (*domain.BackendHealth, error) {
	return m.report, m.err
}

func (m *mockHealthService) Endpoint() string {
	return "http://localhost:8000"
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	runs  []domain.RunSummary
	run   *domain.RunRecord
	err   error
	getID string
}

func (m *mockHistoryService) List(_ context.Context, _ int) ([]domain.RunSummary, error) {
	return m.runs, m.err
}

func (m *mockHistoryService) Get(_ context.Context, id string) (*domain.RunRecord, error) {
	m.getID = id
	return m.run, m.err
}

func (m *mockHistoryService) Delete(_ context.Context, _ string) error {
	return m.err
}

// fakeBackend serves a fixed questionnaire and result to real engines.
type fakeBackend struct {
	submitErr error
	submitted domain.ResponseSet
}

func (f *fakeBackend) FetchQuestionnaire(_ context.Context) (*domain.Questionnaire, error) {
	return &domain.Questionnaire{
		Rating: []domain.Question{{ID: "q1_energie", Kind: domain.KindRating, Prompt: "Énergie ?"}},
		Open:   []domain.Question{{ID: "qo4_genres", Kind: domain.KindOpen, Prompt: "Genres ?", Format: domain.FormatList}},
	}, nil
}

func (f *fakeBackend) Recommend(_ context.Context, r domain.ResponseSet) (*domain.RecommendationResult, error) {
	f.submitted = r
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &domain.RecommendationResult{
		PreferredGenres: []string{"rock"},
		Openness:        3.5,
		Stats:           domain.Statistics{Evaluated: 42},
		Analysis:        &domain.Analysis{Narrative: "Profil énergique."},
		Items: []domain.Recommendation{{
			Rank: 1, Kind: domain.KindTrack, ID: "t1", Name: "Yellow", Artist: "Coldplay",
			Score: 0.874, SubScores: domain.SubScores{GenreBoost: 0.1},
		}},
	}, nil
}

func (f *fakeBackend) runners() func() driving.QuestionnaireRunner {
	return func() driving.QuestionnaireRunner {
		return services.NewEngine(
			services.NewLoader(f, nil),
			services.NewSubmitter(f),
			services.NewRenderer(nil),
			nil,
			"http://test",
		)
	}
}

func testRun() *domain.RunRecord {
	return &domain.RunRecord{
		ID: "run-1",
		Responses: domain.ResponseSet{
			Ratings: map[string]int{"q1_energie": 4},
			Open:    map[string]domain.OpenAnswer{"qo4_genres": {Items: []string{"rock", "pop"}}},
		},
		Result: domain.RecommendationResult{
			Items: []domain.Recommendation{{Rank: 1, Kind: "artiste", Name: "Daft Punk", Description: "Duo français", Score: 0.5}},
		},
	}
}
