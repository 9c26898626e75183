// Package console runs a questionnaire over plain line-oriented I/O.
//
// It is used when stdout is not a terminal, with the --plain flag, and for
// scripted runs where answers come from a YAML file keyed by question id.
// Entries are printed as the runner appends them, with the same markup
// rendering as the TUI.
package console
