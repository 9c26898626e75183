package sqlite

import "github.com/custodia-labs/vibeyf-cli/internal/core/domain"

// JSON column shapes. They are decoupled from the domain types so the
// stored format stays stable when the domain changes.

type openRow struct {
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
	List  bool     `json:"list,omitempty"`
}

type responsesRow struct {
	Ratings map[string]int     `json:"ratings"`
	Open    map[string]openRow `json:"open"`
}

func toResponsesRow(r domain.ResponseSet) responsesRow {
	row := responsesRow{
		Ratings: r.Ratings,
		Open:    make(map[string]openRow, len(r.Open)),
	}
	for id, a := range r.Open {
		row.Open[id] = openRow{Text: a.Text, Items: a.Items, List: a.IsList()}
	}
	return row
}

func (r responsesRow) toDomain() domain.ResponseSet {
	set := domain.NewResponseSet()
	for id, v := range r.Ratings {
		set.Ratings[id] = v
	}
	for id, a := range r.Open {
		answer := domain.OpenAnswer{Text: a.Text}
		if a.List {
			answer.Items = append([]string{}, a.Items...)
		}
		set.Open[id] = answer
	}
	return set
}

type itemRow struct {
	Rank        int                `json:"rank"`
	Kind        string             `json:"kind"`
	ID          string             `json:"id"`
	Name        string             `json:"name,omitempty"`
	Artist      string             `json:"artist,omitempty"`
	Genre       string             `json:"genre,omitempty"`
	Description string             `json:"description,omitempty"`
	ListenURL   string             `json:"listen_url,omitempty"`
	Score       float64            `json:"score"`
	Semantic    float64            `json:"semantic"`
	Mood        float64            `json:"mood"`
	Preference  float64            `json:"preference"`
	Audio       float64            `json:"audio"`
	GenreBoost  float64            `json:"genre_boost"`
	Features    map[string]float64 `json:"features,omitempty"`
}

type resultRow struct {
	UserID          string    `json:"user_id"`
	Timestamp       string    `json:"timestamp"`
	PreferredGenres []string  `json:"preferred_genres,omitempty"`
	Openness        float64   `json:"openness"`
	Evaluated       int       `json:"evaluated"`
	Mean            float64   `json:"mean"`
	Max             float64   `json:"max"`
	Min             float64   `json:"min"`
	Narrative       *string   `json:"narrative,omitempty"`
	Plan            *string   `json:"plan,omitempty"`
	Items           []itemRow `json:"items"`
}

func toResultRow(r domain.RecommendationResult) resultRow {
	row := resultRow{
		UserID:          r.UserID,
		Timestamp:       r.Timestamp,
		PreferredGenres: r.PreferredGenres,
		Openness:        r.Openness,
		Evaluated:       r.Stats.Evaluated,
		Mean:            r.Stats.Mean,
		Max:             r.Stats.Max,
		Min:             r.Stats.Min,
		Items:           make([]itemRow, 0, len(r.Items)),
	}
	if r.Analysis != nil {
		narrative, plan := r.Analysis.Narrative, r.Analysis.Plan
		row.Narrative, row.Plan = &narrative, &plan
	}
	for _, it := range r.Items {
		row.Items = append(row.Items, itemRow{
			Rank:        it.Rank,
			Kind:        it.Kind,
			ID:          it.ID,
			Name:        it.Name,
			Artist:      it.Artist,
			Genre:       it.Genre,
			Description: it.Description,
			ListenURL:   it.ListenURL,
			Score:       it.Score,
			Semantic:    it.SubScores.Semantic,
			Mood:        it.SubScores.Mood,
			Preference:  it.SubScores.Preference,
			Audio:       it.SubScores.Audio,
			GenreBoost:  it.SubScores.GenreBoost,
			Features:    it.Features,
		})
	}
	return row
}

func (r resultRow) toDomain() domain.RecommendationResult {
	result := domain.RecommendationResult{
		UserID:          r.UserID,
		Timestamp:       r.Timestamp,
		PreferredGenres: r.PreferredGenres,
		Openness:        r.Openness,
		Stats: domain.Statistics{
			Evaluated: r.Evaluated,
			Mean:      r.Mean,
			Max:       r.Max,
			Min:       r.Min,
		},
	}
	if r.Narrative != nil || r.Plan != nil {
		result.Analysis = &domain.Analysis{}
		if r.Narrative != nil {
			result.Analysis.Narrative = *r.Narrative
		}
		if r.Plan != nil {
			result.Analysis.Plan = *r.Plan
		}
	}
	for _, it := range r.Items {
		result.Items = append(result.Items, domain.Recommendation{
			Rank:        it.Rank,
			Kind:        it.Kind,
			ID:          it.ID,
			Name:        it.Name,
			Artist:      it.Artist,
			Genre:       it.Genre,
			Description: it.Description,
			ListenURL:   it.ListenURL,
			Score:       it.Score,
			SubScores: domain.SubScores{
				Semantic:   it.Semantic,
				Mood:       it.Mood,
				Preference: it.Preference,
				Audio:      it.Audio,
				GenreBoost: it.GenreBoost,
			},
			Features: it.Features,
		})
	}
	return result
}
