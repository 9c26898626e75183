package backend

import "github.com/custodia-labs/vibeyf-cli/internal/core/domain"

// Open question types declared by the backend.
const (
	openTypeText = "texte_libre"
	openTypeList = "liste"
)

// questionnaireResponse is the GET /questionnaire response format.
// Pointers distinguish a missing category from an empty one.
type questionnaireResponse struct {
	Likert   *[]likertQuestion `json:"likert"`
	Ouvertes *[]openQuestion   `json:"ouvertes"`
}

type likertQuestion struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	Dimension string `json:"dimension"`
	Echelle   string `json:"echelle"`
}

type openQuestion struct {
	ID          string `json:"id"`
	Question    string `json:"question"`
	Type        string `json:"type"`
	Placeholder string `json:"placeholder"`
}

func (q likertQuestion) toDomain() domain.Question {
	return domain.Question{
		ID:        q.ID,
		Kind:      domain.KindRating,
		Prompt:    q.Question,
		Scale:     q.Echelle,
		Dimension: q.Dimension,
	}
}

func (q openQuestion) toDomain() domain.Question {
	var format domain.OpenFormat
	switch q.Type {
	case openTypeList:
		format = domain.FormatList
	case openTypeText:
		format = domain.FormatText
	}
	return domain.Question{
		ID:          q.ID,
		Kind:        domain.KindOpen,
		Prompt:      q.Question,
		Placeholder: q.Placeholder,
		Format:      format,
	}
}

// recommendRequest is the POST /recommend request format. Open values are
// a string or a list of strings.
type recommendRequest struct {
	Likert   map[string]int `json:"likert"`
	Ouvertes map[string]any `json:"ouvertes"`
}

func newRecommendRequest(r domain.ResponseSet) recommendRequest {
	req := recommendRequest{
		Likert:   make(map[string]int, len(r.Ratings)),
		Ouvertes: make(map[string]any, len(r.Open)),
	}
	for id, v := range r.Ratings {
		req.Likert[id] = v
	}
	for id, a := range r.Open {
		req.Ouvertes[id] = a.Value()
	}
	return req
}

// recommendResponse is the POST /recommend response format.
type recommendResponse struct {
	UserID          string           `json:"user_id"`
	Timestamp       string           `json:"timestamp"`
	GenresPreferes  []string         `json:"genres_preferes"`
	NiveauOuverture float64          `json:"niveau_ouverture"`
	Recommandations []recommendation `json:"recommandations"`
	Statistiques    statistics       `json:"statistiques"`
	RapportGenAI    *report          `json:"rapport_genai"`
}

type recommendation struct {
	Rang             int            `json:"rang"`
	Type             string         `json:"type"`
	ID               string         `json:"id"`
	Nom              string         `json:"nom"`
	Artiste          *string        `json:"artiste"`
	Genre            *string        `json:"genre"`
	Description      string         `json:"description"`
	ScoreGlobal      float64        `json:"score_global"`
	DetailsScores    scoreDetails   `json:"details_scores"`
	Caracteristiques map[string]any `json:"caracteristiques"`
	SpotifySearchURL *string        `json:"spotify_search_url"`
}

type scoreDetails struct {
	SimilariteSemantique float64 `json:"similarite_semantique"`
	MoodMatch            float64 `json:"mood_match"`
	PreferencesLikert    float64 `json:"preferences_likert"`
	AudioFeatures        float64 `json:"audio_features"`
	GenreBoost           float64 `json:"genre_boost"`
}

type statistics struct {
	ScoreMoyen            float64 `json:"score_moyen"`
	ScoreMax              float64 `json:"score_max"`
	ScoreMin              float64 `json:"score_min"`
	NombreElementsEvalues int     `json:"nombre_elements_evalues"`
}

type report struct {
	Synthese        string `json:"synthese"`
	PlanProgression string `json:"plan_progression"`
}

func (r recommendResponse) toDomain() *domain.RecommendationResult {
	result := &domain.RecommendationResult{
		UserID:          r.UserID,
		Timestamp:       r.Timestamp,
		PreferredGenres: r.GenresPreferes,
		Openness:        r.NiveauOuverture,
		Stats: domain.Statistics{
			Evaluated: r.Statistiques.NombreElementsEvalues,
			Mean:      r.Statistiques.ScoreMoyen,
			Max:       r.Statistiques.ScoreMax,
			Min:       r.Statistiques.ScoreMin,
		},
		Items: make([]domain.Recommendation, 0, len(r.Recommandations)),
	}
	if r.RapportGenAI != nil {
		result.Analysis = &domain.Analysis{
			Narrative: r.RapportGenAI.Synthese,
			Plan:      r.RapportGenAI.PlanProgression,
		}
	}
	for _, rec := range r.Recommandations {
		result.Items = append(result.Items, rec.toDomain())
	}
	return result
}

func (r recommendation) toDomain() domain.Recommendation {
	return domain.Recommendation{
		Rank:        r.Rang,
		Kind:        r.Type,
		ID:          r.ID,
		Name:        r.Nom,
		Artist:      deref(r.Artiste),
		Genre:       deref(r.Genre),
		Description: r.Description,
		ListenURL:   deref(r.SpotifySearchURL),
		Score:       r.ScoreGlobal,
		SubScores: domain.SubScores{
			Semantic:   r.DetailsScores.SimilariteSemantique,
			Mood:       r.DetailsScores.MoodMatch,
			Preference: r.DetailsScores.PreferencesLikert,
			Audio:      r.DetailsScores.AudioFeatures,
			GenreBoost: r.DetailsScores.GenreBoost,
		},
		Features: numericFeatures(r.Caracteristiques),
	}
}

// numericFeatures keeps the numeric audio features and drops anything else.
func numericFeatures(raw map[string]any) map[string]float64 {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]float64, len(raw))
	for k, v := range raw {
		if f, ok := v.(float64); ok {
			out[k] = f
		}
	}
	return out
}

// healthResponse is the GET /health response format.
type healthResponse struct {
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
	GeminiEnabled bool   `json:"gemini_enabled"`
}

// errorResponse is the backend's error body.
type errorResponse struct {
	Detail string `json:"detail"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
