package domain

// Origin identifies who produced a transcript entry.
type Origin string

// Transcript origins.
const (
	OriginBot  Origin = "bot"
	OriginUser Origin = "user"
)

// EntryKind classifies a transcript entry for renderers.
type EntryKind string

// Transcript entry kinds.
const (
	EntryMessage         EntryKind = "message"
	EntryQuestion        EntryKind = "question"
	EntryAnswer          EntryKind = "answer"
	EntryError           EntryKind = "error"
	EntrySummary         EntryKind = "summary"
	EntryAnalysis        EntryKind = "analysis"
	EntryRecommendations EntryKind = "recommendations"
	EntryPlan            EntryKind = "plan"
	EntryRestart         EntryKind = "restart"
)

// TranscriptEntry is one turn of the conversation. Entries are never
// modified once appended.
type TranscriptEntry struct {
	// Seq is the 0-based position in the transcript.
	Seq int

	// Origin is bot or user.
	Origin Origin

	// Kind classifies the content.
	Kind EntryKind

	// Text is the content in the minimal markup subset (see ParseMarkup).
	Text string

	// Progress is set on question entries.
	Progress Progress

	// Question is set on question entries.
	Question *Question

	// Cards is set on recommendation entries.
	Cards []RecommendationCard
}
