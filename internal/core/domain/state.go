package domain

import (
	"strconv"
	"strings"
)

// EngineState is the progression engine's lifecycle state.
type EngineState int

// Engine states. The machine is linear and forward-only.
const (
	StateNotStarted EngineState = iota
	StateAwaitingAnswer
	StateSubmitting
	StateDone
)

// String returns the string representation.
func (s EngineState) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateAwaitingAnswer:
		return "awaiting_answer"
	case StateSubmitting:
		return "submitting"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Command is an event dispatched into the progression engine.
type Command interface {
	command()
}

// AnswerSubmitted carries the user's answer to the current question.
// Rating is used for rating questions (0 means nothing selected);
// Text is used for open questions.
type AnswerSubmitted struct {
	QuestionID string
	Rating     int
	Text       string
}

func (AnswerSubmitted) command() {}

// AnswerFor builds the command answering q with raw text. For rating
// questions an unparseable value leaves Rating at zero so it is rejected.
func AnswerFor(q Question, raw string) AnswerSubmitted {
	cmd := AnswerSubmitted{QuestionID: q.ID}
	if q.Kind == KindRating {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			cmd.Rating = n
		}
		return cmd
	}
	cmd.Text = raw
	return cmd
}

// RestartRequested discards the current run and starts a new one.
type RestartRequested struct{}

func (RestartRequested) command() {}
