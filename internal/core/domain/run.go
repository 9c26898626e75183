package domain

import "time"

// RunRecord is a completed questionnaire run kept in the local archive.
type RunRecord struct {
	ID          string
	StartedAt   time.Time
	CompletedAt time.Time
	BackendURL  string
	Responses   ResponseSet
	Result      RecommendationResult
}

// RunSummary is the listing view of an archived run.
type RunSummary struct {
	ID          string
	CompletedAt time.Time
	Answers     int
	TopItem     string
	Genres      []string
}

// Summary projects the record for listings.
func (r RunRecord) Summary() RunSummary {
	s := RunSummary{
		ID:          r.ID,
		CompletedAt: r.CompletedAt,
		Answers:     r.Responses.Len(),
		Genres:      r.Result.PreferredGenres,
	}
	if len(r.Result.Items) > 0 {
		s.TopItem = r.Result.Items[0].Name
	}
	return s
}

// BackendHealth is the scoring backend's health report.
type BackendHealth struct {
	Status          string
	Timestamp       string
	GenerationReady bool
}

// Healthy returns true if the backend reports itself healthy.
func (h BackendHealth) Healthy() bool {
	return h.Status == "healthy"
}
