package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrLoad", ErrLoad},
		{"ErrValidation", ErrValidation},
		{"ErrSubmission", ErrSubmission},
		{"ErrInvalidState", ErrInvalidState},
		{"ErrAlreadyAnswered", ErrAlreadyAnswered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestValidationError_UnwrapsToErrValidation(t *testing.T) {
	err := fmt.Errorf("dispatch: %w", &ValidationError{QuestionID: "q1", Reason: "no rating selected"})

	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrSubmission))

	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
	assert.Equal(t, "q1", vErr.QuestionID)
	assert.Contains(t, err.Error(), "no rating selected")
}

func TestEngineState_String(t *testing.T) {
	assert.Equal(t, "not_started", StateNotStarted.String())
	assert.Equal(t, "awaiting_answer", StateAwaitingAnswer.String())
	assert.Equal(t, "submitting", StateSubmitting.String())
	assert.Equal(t, "done", StateDone.String())
	assert.Equal(t, "unknown", EngineState(42).String())
}
