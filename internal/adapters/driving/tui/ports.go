// Package tui provides the interactive chat interface for vibeyf.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Runner drives the questionnaire run.
	Runner driving.QuestionnaireRunner
}

// NewPorts creates a new Ports aggregate.
func NewPorts(runner driving.QuestionnaireRunner) *Ports {
	return &Ports{Runner: runner}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Runner == nil {
		return ErrMissingRunner
	}
	return nil
}
