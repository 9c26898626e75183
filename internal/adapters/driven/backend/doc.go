// Package backend provides the HTTP adapter for the Vibeyf scoring backend.
//
// It implements driven.QuestionnaireSource, driven.Recommender and
// driven.HealthChecker over three endpoints:
//
//   - GET  /questionnaire  rating and open questions
//   - POST /recommend      scores a completed response set
//   - GET  /health         service status
//
// Wire payloads use the backend's French field names; they are translated
// to domain types at this boundary and nowhere else.
package backend
