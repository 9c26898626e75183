// Package driving holds the interfaces the TUI, console, CLI and MCP server
// call into: loading the questionnaire, running a session, probing the
// backend, browsing past runs and editing settings.
//
// The services package implements them.
package driving
