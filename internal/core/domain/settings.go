package domain

import "time"

// Default setting values.
const (
	DefaultBackendURL     = "http://localhost:8000"
	DefaultRevealDelay    = 600 * time.Millisecond
	DefaultHistoryEnabled = true
)

// DefaultListMarkers are the identifier substrings treated as list answers
// when the backend does not declare a question type.
func DefaultListMarkers() []string {
	return []string{"genres", "artistes"}
}

// BackendSettings holds scoring backend connection configuration.
type BackendSettings struct {
	// URL is the backend base URL.
	URL string

	// Timeout bounds each request. Zero leaves the transport default in place.
	Timeout time.Duration
}

// RevealSettings controls pacing of the staged result reveal.
type RevealSettings struct {
	// Delay is the pause before each stage. Zero disables pacing.
	Delay time.Duration
}

// QuestionnaireSettings holds questionnaire interpretation options.
type QuestionnaireSettings struct {
	// ListMarkers are identifier substrings marking list answers when the
	// backend omits the question type.
	ListMarkers []string
}

// HistorySettings controls the local run archive.
type HistorySettings struct {
	// Enabled keeps completed runs in the archive.
	Enabled bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	Backend       BackendSettings
	Reveal        RevealSettings
	Questionnaire QuestionnaireSettings
	History       HistorySettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Backend: BackendSettings{
			URL: DefaultBackendURL,
		},
		Reveal: RevealSettings{
			Delay: DefaultRevealDelay,
		},
		Questionnaire: QuestionnaireSettings{
			ListMarkers: DefaultListMarkers(),
		},
		History: HistorySettings{
			Enabled: DefaultHistoryEnabled,
		},
	}
}
