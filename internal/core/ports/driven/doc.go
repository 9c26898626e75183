// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - QuestionnaireSource: Fetches the question set from the scoring backend
//   - Recommender: Submits a completed response set for scoring
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Pacer: Spaces out the staged result reveal. Without it, stages are appended back to back.
//   - RunStore: Run archive. Without it, completed runs are not kept.
//   - HealthChecker: Backend health probe. Without it, `vibeyf health` reports unavailable.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
