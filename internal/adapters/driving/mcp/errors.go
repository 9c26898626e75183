// Package mcp provides an MCP (Model Context Protocol) server adapter for Vibeyf.
// It lets AI assistants read the questionnaire, request recommendations for a
// set of answers and browse past runs.
package mcp

import "errors"

// ErrMissingQuestionnaireService is returned when the questionnaire service is not provided.
var ErrMissingQuestionnaireService = errors.New("mcp: questionnaire service is required")

// ErrRecommendUnavailable is returned by the recommend tool when no runner factory is set.
var ErrRecommendUnavailable = errors.New("mcp: recommendations are not available")
