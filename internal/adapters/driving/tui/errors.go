package tui

import "errors"

// ErrMissingRunner is returned when the questionnaire runner is not provided.
var ErrMissingRunner = errors.New("tui: questionnaire runner is required")
