package mcp

import (
	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Questionnaire exposes the question set.
	Questionnaire driving.QuestionnaireService

	// Runners creates an independent runner for each recommendation request.
	Runners func() driving.QuestionnaireRunner

	// Health probes the scoring backend.
	Health driving.HealthService

	// History reads the local run archive.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Questionnaire == nil {
		return ErrMissingQuestionnaireService
	}
	// Runners, Health and History are optional
	return nil
}
