package domain

import (
	"fmt"
	"strings"
)

// QuestionKind identifies how a question is answered.
type QuestionKind string

// Available question kinds.
const (
	// KindRating is answered on the fixed 1-5 scale.
	KindRating QuestionKind = "rating"

	// KindOpen is answered with free text, optionally read as a comma-separated list.
	KindOpen QuestionKind = "open"
)

// IsValid returns true if the kind is recognised.
func (k QuestionKind) IsValid() bool {
	return k == KindRating || k == KindOpen
}

// String returns the string representation.
func (k QuestionKind) String() string {
	return string(k)
}

// OpenFormat is the answer format the backend declares for an open question.
type OpenFormat string

// Open answer formats.
const (
	// FormatUnspecified means the backend did not declare a format.
	FormatUnspecified OpenFormat = ""
	FormatText        OpenFormat = "text"
	FormatList        OpenFormat = "list"
)

// Rating scale bounds.
const (
	RatingMin = 1
	RatingMax = 5
)

// RatingOptions returns the five values offered by the rating control, in order.
func RatingOptions() []int {
	opts := make([]int, 0, RatingMax-RatingMin+1)
	for v := RatingMin; v <= RatingMax; v++ {
		opts = append(opts, v)
	}
	return opts
}

// ValidRating returns true if v is selectable on the rating control.
func ValidRating(v int) bool {
	return v >= RatingMin && v <= RatingMax
}

// Question is a single questionnaire item. It is immutable once loaded.
type Question struct {
	// ID uniquely identifies the question within the loaded set.
	ID string

	// Kind selects rating or open handling.
	Kind QuestionKind

	// Prompt is the question text shown to the user.
	Prompt string

	// Scale describes the rating scale (rating only).
	Scale string

	// Dimension is the audio axis the backend maps a rating onto (rating only).
	Dimension string

	// Placeholder is the input hint (open only).
	Placeholder string

	// Format is the backend-declared answer format (open only).
	Format OpenFormat

	// IsList marks open answers that are stored as comma-separated lists.
	IsList bool
}

// Questionnaire is the question set as delivered by the backend,
// partitioned by kind.
type Questionnaire struct {
	Rating []Question
	Open   []Question
}

// Flatten concatenates rating questions then open questions, preserving
// backend order within each category.
func (q Questionnaire) Flatten() QuestionSequence {
	seq := make(QuestionSequence, 0, len(q.Rating)+len(q.Open))
	seq = append(seq, q.Rating...)
	seq = append(seq, q.Open...)
	return seq
}

// QuestionSequence is the ordered, flattened question list for one run.
type QuestionSequence []Question

// Len returns the number of questions.
func (s QuestionSequence) Len() int {
	return len(s)
}

// IDs returns the question identifiers in order.
func (s QuestionSequence) IDs() []string {
	ids := make([]string, len(s))
	for i, q := range s {
		ids[i] = q.ID
	}
	return ids
}

// Find returns the question with the given identifier.
func (s QuestionSequence) Find(id string) (Question, bool) {
	for _, q := range s {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Validate checks that every identifier is non-empty and appears exactly once.
func (s QuestionSequence) Validate() error {
	seen := make(map[string]struct{}, len(s))
	for i, q := range s {
		if strings.TrimSpace(q.ID) == "" {
			return fmt.Errorf("%w: question %d has no identifier", ErrInvalidInput, i)
		}
		if !q.Kind.IsValid() {
			return fmt.Errorf("%w: question %s has unknown kind %q", ErrInvalidInput, q.ID, q.Kind)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("%w: duplicate question identifier %s", ErrInvalidInput, q.ID)
		}
		seen[q.ID] = struct{}{}
	}
	return nil
}

// Progress locates a question within its sequence, 1-based for display.
type Progress struct {
	Index int
	Total int
}

// IsZero returns true for the zero progress.
func (p Progress) IsZero() bool {
	return p.Total == 0
}

// String renders "i/n".
func (p Progress) String() string {
	return fmt.Sprintf("%d/%d", p.Index, p.Total)
}
