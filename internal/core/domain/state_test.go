package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswerFor(t *testing.T) {
	rating := Question{ID: "q1", Kind: KindRating}
	open := Question{ID: "q2", Kind: KindOpen}

	tests := []struct {
		name     string
		question Question
		raw      string
		expected AnswerSubmitted
	}{
		{"rating with spaces", rating, " 4 ", AnswerSubmitted{QuestionID: "q1", Rating: 4}},
		{"rating not a number", rating, "quatre", AnswerSubmitted{QuestionID: "q1"}},
		{"rating out of range is kept", rating, "9", AnswerSubmitted{QuestionID: "q1", Rating: 9}},
		{"open text untouched", open, " calme ", AnswerSubmitted{QuestionID: "q2", Text: " calme "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AnswerFor(tt.question, tt.raw))
		})
	}
}
