package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrMissingRunner_Message(t *testing.T) {
	assert.Contains(t, ErrMissingRunner.Error(), "questionnaire runner")
}
