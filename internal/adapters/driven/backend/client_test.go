package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
	"github.com/custodia-labs/vibeyf-cli/internal/core/services"
)

const questionnaireJSON = `{
  "likert": [
    {"id": "q1_energie", "question": "J'aime la musique énergique", "dimension": "energy", "echelle": "1 = pas du tout, 5 = tout à fait"},
    {"id": "q2_calme", "question": "Je recherche le calme", "dimension": "acousticness", "echelle": "1-5"}
  ],
  "ouvertes": [
    {"id": "qo1_mood", "question": "Votre humeur ?", "type": "texte_libre", "placeholder": "calme"},
    {"id": "qo4_genres", "question": "Vos genres ?", "type": "liste", "placeholder": "rock, jazz"},
    {"id": "qo9_legacy", "question": "Sans type"}
  ]
}`

const recommendJSON = `{
  "user_id": "user_20261015_100000",
  "timestamp": "2026-10-15T10:00:00.123456",
  "genres_preferes": ["rock", "pop"],
  "niveau_ouverture": 3.4,
  "recommandations": [
    {
      "rang": 1, "type": "chanson", "id": "yellow", "nom": "Yellow", "artiste": "Coldplay", "genre": "rock",
      "description": "", "score_global": 0.873,
      "details_scores": {"similarite_semantique": 0.91, "mood_match": 0.6, "preferences_likert": 0.7, "audio_features": 0.5, "genre_boost": 0.1},
      "caracteristiques": {"energy": 0.7, "label": "x"},
      "spotify_search_url": "https://open.spotify.com/search/Yellow+Coldplay"
    },
    {
      "rang": 2, "type": "mood", "id": "calme", "nom": "Calme", "artiste": null, "genre": null,
      "description": "Pour se détendre", "score_global": 0.5,
      "details_scores": {"similarite_semantique": 0.4, "mood_match": 0.6, "preferences_likert": 0.5, "audio_features": 0.3, "genre_boost": 0},
      "caracteristiques": {},
      "spotify_search_url": null
    }
  ],
  "statistiques": {"score_moyen": 0.45, "score_max": 0.873, "score_min": 0.1, "nombre_elements_evalues": 42},
  "rapport_genai": {"synthese": "Vous aimez **l'énergie**.", "plan_progression": "Semaine 1 : jazz"}
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL + "/"})
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Config{})

	assert.Equal(t, "http://localhost:8000", c.BaseURL())
	assert.Zero(t, c.client.Timeout)
}

func TestNewClient_Timeout(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://scoring:9000/", Timeout: 5 * time.Second})

	assert.Equal(t, "http://scoring:9000", c.BaseURL())
	assert.Equal(t, 5*time.Second, c.client.Timeout)
}

func TestClient_FetchQuestionnaire(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/questionnaire", r.URL.Path)
		_, _ = io.WriteString(w, questionnaireJSON)
	})

	q, err := c.FetchQuestionnaire(context.Background())

	require.NoError(t, err)
	require.Len(t, q.Rating, 2)
	require.Len(t, q.Open, 3)
	assert.Equal(t, domain.Question{
		ID:        "q1_energie",
		Kind:      domain.KindRating,
		Prompt:    "J'aime la musique énergique",
		Scale:     "1 = pas du tout, 5 = tout à fait",
		Dimension: "energy",
	}, q.Rating[0])
	assert.Equal(t, domain.FormatText, q.Open[0].Format)
	assert.Equal(t, domain.FormatList, q.Open[1].Format)
	assert.Equal(t, "rock, jazz", q.Open[1].Placeholder)
	assert.Equal(t, domain.FormatUnspecified, q.Open[2].Format)
}

func TestClient_FetchQuestionnaire_MissingCategory(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing likert", `{"ouvertes": []}`},
		{"missing ouvertes", `{"likert": []}`},
		{"null category", `{"likert": null, "ouvertes": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.FetchQuestionnaire(context.Background())

			assert.True(t, errors.Is(err, domain.ErrLoad))
		})
	}
}

func TestClient_FetchQuestionnaire_EmptyCategoriesAreValid(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"likert": [], "ouvertes": []}`)
	})

	q, err := c.FetchQuestionnaire(context.Background())

	require.NoError(t, err)
	assert.Empty(t, q.Flatten())
}

func TestClient_FetchQuestionnaire_ServiceUnavailable(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"detail": "Service not initialized"}`)
	})

	_, err := c.FetchQuestionnaire(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrLoad))
	assert.Contains(t, err.Error(), "status 503")
	assert.Contains(t, err.Error(), "Service not initialized")
}

func TestClient_FetchQuestionnaire_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewClient(Config{BaseURL: srv.URL})

	_, err := c.FetchQuestionnaire(context.Background())

	assert.True(t, errors.Is(err, domain.ErrLoad))
}

func TestClient_Recommend(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/recommend", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = io.WriteString(w, recommendJSON)
	})

	result, err := c.Recommend(context.Background(), domain.NewResponseSet())

	require.NoError(t, err)
	assert.Equal(t, "user_20261015_100000", result.UserID)
	assert.Equal(t, []string{"rock", "pop"}, result.PreferredGenres)
	assert.InDelta(t, 3.4, result.Openness, 1e-9)
	assert.Equal(t, 42, result.Stats.Evaluated)
	assert.Equal(t, "Vous aimez **l'énergie**.", result.Narrative())
	assert.Equal(t, "Semaine 1 : jazz", result.Plan())

	require.Len(t, result.Items, 2)
	track := result.Items[0]
	assert.True(t, track.IsTrack())
	assert.Equal(t, "Coldplay", track.Artist)
	assert.Equal(t, "https://open.spotify.com/search/Yellow+Coldplay", track.ListenURL)
	assert.InDelta(t, 0.1, track.SubScores.GenreBoost, 1e-9)
	assert.Equal(t, map[string]float64{"energy": 0.7}, track.Features)
	assert.Equal(t, 87, domain.NewRecommendationCard(track).ScorePercent)

	mood := result.Items[1]
	assert.False(t, mood.IsTrack())
	assert.Empty(t, mood.Artist)
	assert.Empty(t, mood.ListenURL)
	assert.Equal(t, "Pour se détendre", mood.Description)
	assert.Nil(t, mood.Features)
}

func TestClient_Recommend_WithoutReport(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"user_id": "u", "niveau_ouverture": 2, "recommandations": [], "statistiques": {"nombre_elements_evalues": 0}, "rapport_genai": null}`)
	})

	result, err := c.Recommend(context.Background(), domain.NewResponseSet())

	require.NoError(t, err)
	assert.Nil(t, result.Analysis)
	assert.Empty(t, result.PreferredGenres)
	assert.Empty(t, result.Items)
}

func TestClient_Recommend_RequestBody(t *testing.T) {
	var body string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		_, _ = io.WriteString(w, recommendJSON)
	})
	responses := domain.NewResponseSet()
	responses.Ratings["q1_energie"] = 5
	responses.Open["qo1_mood"] = domain.OpenAnswer{Text: "calme"}
	responses.Open["qo3_artistes"] = domain.OpenAnswer{Items: []string{}}

	_, err := c.Recommend(context.Background(), responses)

	require.NoError(t, err)
	assert.JSONEq(t, `{"likert":{"q1_energie":5},"ouvertes":{"qo1_mood":"calme","qo3_artistes":[]}}`, body)
}

func TestClient_Recommend_EmptyResponseSet(t *testing.T) {
	var body string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		_, _ = io.WriteString(w, recommendJSON)
	})

	_, err := c.Recommend(context.Background(), domain.ResponseSet{})

	require.NoError(t, err)
	assert.JSONEq(t, `{"likert":{},"ouvertes":{}}`, body)
}

func TestClient_Recommend_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"server error with detail", http.StatusInternalServerError, `{"detail": "Error processing recommendation: boom"}`, "boom"},
		{"plain text error", http.StatusBadGateway, "upstream down", "upstream down"},
		{"empty error body", http.StatusUnprocessableEntity, "", "status 422"},
		{"malformed success body", http.StatusOK, "{not json", "decode response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.Recommend(context.Background(), domain.NewResponseSet())

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrSubmission))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestClient_Health(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		_, _ = io.WriteString(w, `{"status": "healthy", "timestamp": "2026-10-15T10:00:00", "gemini_enabled": true}`)
	})

	h, err := c.Health(context.Background())

	require.NoError(t, err)
	assert.True(t, h.Healthy())
	assert.True(t, h.GenerationReady)
	assert.Equal(t, "2026-10-15T10:00:00", h.Timestamp)
}

func TestClient_Health_Failure(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Health(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "health check")
}

// TestEndToEnd_SubmissionBody runs a full questionnaire against a fake backend
// and checks the exact body posted to /recommend.
func TestEndToEnd_SubmissionBody(t *testing.T) {
	var (
		mu   sync.Mutex
		body string
	)
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/questionnaire":
			_, _ = io.WriteString(w, `{
				"likert": [{"id": "q1", "question": "Énergie ?", "dimension": "energy", "echelle": "1-5"}],
				"ouvertes": [{"id": "q2", "question": "Genres ?", "type": "liste", "placeholder": ""}]
			}`)
		case "/recommend":
			raw, _ := io.ReadAll(r.Body)
			mu.Lock()
			body = string(raw)
			mu.Unlock()
			_, _ = io.WriteString(w, recommendJSON)
		default:
			http.NotFound(w, r)
		}
	})

	engine := services.NewEngine(
		services.NewLoader(c, nil),
		services.NewSubmitter(c),
		services.NewRenderer(nil),
		nil,
		c.BaseURL(),
	)
	ctx := context.Background()

	require.NoError(t, engine.Start(ctx))
	require.NoError(t, engine.Dispatch(ctx, domain.AnswerSubmitted{QuestionID: "q1", Rating: 4}))
	require.NoError(t, engine.Dispatch(ctx, domain.AnswerSubmitted{QuestionID: "q2", Text: "rock, pop"}))

	assert.Equal(t, domain.StateDone, engine.State())
	mu.Lock()
	defer mu.Unlock()
	assert.JSONEq(t, `{"likert":{"q1":4},"ouvertes":{"q2":["rock","pop"]}}`, body)
}
