package domain

import "math"

// KindTrack is the recommendation type tag for a musical track.
const KindTrack = "chanson"

// SubScores breaks down how an item's global score was obtained.
// All values are in [0, 1].
type SubScores struct {
	Semantic   float64
	Mood       float64
	Preference float64
	Audio      float64
	GenreBoost float64
}

// Recommendation is one ranked item returned by the scoring backend.
type Recommendation struct {
	Rank        int
	Kind        string
	ID          string
	Name        string
	Artist      string
	Genre       string
	Description string
	ListenURL   string
	Score       float64
	SubScores   SubScores
	Features    map[string]float64
}

// IsTrack returns true if the item is a musical track.
func (r Recommendation) IsTrack() bool {
	return r.Kind == KindTrack
}

// Statistics summarises the scoring pass.
type Statistics struct {
	Evaluated int
	Mean      float64
	Max       float64
	Min       float64
}

// Analysis is the optional generated report attached to a result.
type Analysis struct {
	Narrative string
	Plan      string
}

// RecommendationResult is the scoring backend's answer to a submission.
type RecommendationResult struct {
	UserID          string
	Timestamp       string
	PreferredGenres []string
	Openness        float64
	Stats           Statistics
	Analysis        *Analysis
	Items           []Recommendation
}

// Narrative returns the analysis narrative, or "" when absent.
func (r *RecommendationResult) Narrative() string {
	if r == nil || r.Analysis == nil {
		return ""
	}
	return r.Analysis.Narrative
}

// Plan returns the progression plan, or "" when absent.
func (r *RecommendationResult) Plan() string {
	if r == nil || r.Analysis == nil {
		return ""
	}
	return r.Analysis.Plan
}

// RecommendationCard is the display projection of a Recommendation.
type RecommendationCard struct {
	Rank         int
	Kind         string
	Title        string
	Artist       string
	Genre        string
	ListenURL    string
	Description  string
	ScorePercent int
	Boosted      bool
	Semantic     int
	Mood         int
	Preference   int
}

// IsTrack returns true if the card describes a musical track.
func (c RecommendationCard) IsTrack() bool {
	return c.Kind == KindTrack
}

// NewRecommendationCard projects a recommendation for display.
func NewRecommendationCard(r Recommendation) RecommendationCard {
	title := r.Name
	if title == "" {
		title = r.ID
	}
	return RecommendationCard{
		Rank:         r.Rank,
		Kind:         r.Kind,
		Title:        title,
		Artist:       r.Artist,
		Genre:        r.Genre,
		ListenURL:    r.ListenURL,
		Description:  r.Description,
		ScorePercent: Percent(r.Score),
		Boosted:      r.SubScores.GenreBoost > 0,
		Semantic:     Percent(r.SubScores.Semantic),
		Mood:         Percent(r.SubScores.Mood),
		Preference:   Percent(r.SubScores.Preference),
	}
}

// Percent converts a [0, 1] score to a rounded percentage.
func Percent(score float64) int {
	return int(math.Round(score * 100))
}
