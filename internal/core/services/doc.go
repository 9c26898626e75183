// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The questionnaire run is split across a loader, a response store,
// a transcript with its result renderer, a submitter and the engine
// that sequences them.
//
// Services are pure Go with no CGO or external dependencies.
package services
