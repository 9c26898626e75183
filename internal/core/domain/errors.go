package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Questionnaire Errors.

	// ErrLoad indicates the questionnaire could not be fetched or was incomplete.
	// It is fatal to the run.
	ErrLoad = errors.New("questionnaire load failed")

	// ErrValidation indicates an answer was empty or out of range.
	// The run stays on the current question.
	ErrValidation = errors.New("invalid answer")

	// ErrSubmission indicates the recommendation request failed.
	// It is terminal for the run.
	ErrSubmission = errors.New("recommendation submission failed")

	// ErrInvalidState indicates a command arrived in a state that cannot accept it.
	ErrInvalidState = errors.New("invalid engine state")

	// ErrAlreadyAnswered indicates a question identifier was written twice in one run.
	ErrAlreadyAnswered = errors.New("question already answered")
)

// ValidationError describes why an answer was rejected.
type ValidationError struct {
	QuestionID string
	Reason     string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s for %s: %s", ErrValidation, e.QuestionID, e.Reason)
}

// Unwrap allows errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
