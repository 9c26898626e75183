// Package domain defines the core business entities for Vibeyf.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Question: A rating or open question loaded from the backend
//   - ResponseSet: The answers collected during one questionnaire run
//   - TranscriptEntry: One bot or user turn in the conversation log
//   - RecommendationResult: The ranked recommendations returned by scoring
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
