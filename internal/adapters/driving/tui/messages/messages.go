// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
)

// EntryAppended carries a transcript entry published by the runner.
type EntryAppended struct {
	Entry domain.TranscriptEntry
}

// StepCompleted signals that a start or dispatch call returned.
type StepCompleted struct {
	// Restart is true when the step began a new run.
	Restart bool
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
