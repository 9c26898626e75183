package cli

import (
	"context"
	"time"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driving"
	"github.com/custodia-labs/vibeyf-cli/internal/core/services"
)

// Ensure mocks implement the interfaces.
var (
	_ driving.QuestionnaireService = (*MockQuestionnaireService)(nil)
	_ driving.HealthService        = (*MockHealthService)(nil)
	_ driving.HistoryService       = (*MockHistoryService)(nil)
	_ driving.SettingsService      = (*MockSettingsService)(nil)
)

// MockQuestionnaireService implements driving.QuestionnaireService for testing.
type MockQuestionnaireService struct {
	LoadFunc func(ctx context.Context) (domain.QuestionSequence, error)
}

func (m *MockQuestionnaireService) Load(ctx context.Context) (domain.QuestionSequence, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return testQuestions(), nil
}

// MockHealthService implements driving.HealthService for testing.
type MockHealthService struct {
	CheckFunc func(ctx context.Context) (*domain.BackendHealth, error)
}

func (m *MockHealthService) Check(ctx context.Context) (*domain.BackendHealth, error) {
	if m.CheckFunc != nil {
		return m.CheckFunc(ctx)
	}
	return &domain.BackendHealth{Status: "healthy", Timestamp: "2026-10-15T10:00:00", GenerationReady: true}, nil
}

func (m *MockHealthService) Endpoint() string {
	return "http://localhost:8000"
}

// MockHistoryService implements driving.HistoryService for testing.
type MockHistoryService struct {
	ListFunc   func(ctx context.Context, limit int) ([]domain.RunSummary, error)
	GetFunc    func(ctx context.Context, id string) (*domain.RunRecord, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *MockHistoryService) List(ctx context.Context, limit int) ([]domain.RunSummary, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit)
	}
	return []domain.RunSummary{testRun().Summary()}, nil
}

func (m *MockHistoryService) Get(ctx context.Context, id string) (*domain.RunRecord, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	run := testRun()
	return &run, nil
}

func (m *MockHistoryService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockSettingsService implements driving.SettingsService for testing.
type MockSettingsService struct {
	SetFunc      func(key, value string) error
	ValidateFunc func() error
	settings     domain.AppSettings
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	s := m.settings
	return &s, nil
}

func (m *MockSettingsService) Save(settings *domain.AppSettings) error {
	m.settings = *settings
	return nil
}

func (m *MockSettingsService) Set(key, value string) error {
	if m.SetFunc != nil {
		return m.SetFunc(key, value)
	}
	return nil
}

func (m *MockSettingsService) Keys() []string {
	return services.NewSettingsService(nil).Keys()
}

func (m *MockSettingsService) Validate() error {
	if m.ValidateFunc != nil {
		return m.ValidateFunc()
	}
	return nil
}

func (m *MockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// setupTestServices installs default mocks and returns a cleanup function.
func setupTestServices() func() {
	SetServices(&Services{
		Questionnaire: &MockQuestionnaireService{},
		Health:        &MockHealthService{},
		History:       &MockHistoryService{},
		Settings:      &MockSettingsService{settings: domain.DefaultAppSettings()},
	})
	return func() {
		SetServices(nil)
	}
}

func testQuestions() domain.QuestionSequence {
	return domain.QuestionSequence{
		{ID: "q1_energie", Kind: domain.KindRating, Prompt: "J'aime la musique **énergique**", Scale: "1 = pas du tout, 5 = tout à fait"},
		{ID: "qo4_genres", Kind: domain.KindOpen, Prompt: "Vos genres préférés ?", Placeholder: "rock, jazz", IsList: true},
		{ID: "qo5_moment", Kind: domain.KindOpen, Prompt: "Quand écoutez-vous de la musique ?"},
	}
}

func testRun() domain.RunRecord {
	return domain.RunRecord{
		ID:          "run-1",
		StartedAt:   time.Date(2026, 10, 15, 9, 58, 0, 0, time.UTC),
		CompletedAt: time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC),
		BackendURL:  "http://localhost:8000",
		Responses: domain.ResponseSet{
			Ratings: map[string]int{"q1_energie": 4},
			Open:    map[string]domain.OpenAnswer{"qo4_genres": {Items: []string{"rock", "pop"}}},
		},
		Result: domain.RecommendationResult{
			PreferredGenres: []string{"rock", "pop"},
			Items: []domain.Recommendation{
				{Rank: 1, Kind: domain.KindTrack, ID: "t1", Name: "Song One", Artist: "Band", Genre: "rock", Score: 0.87},
			},
		},
	}
}
