package services

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driven"
	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyBackendURL     = "backend.url"
	KeyBackendTimeout = "backend.timeout_seconds"
	KeyRevealDelay    = "reveal.delay_ms"
	KeyListMarkers    = "questionnaire.list_markers"
	KeyHistoryEnabled = "history.enabled"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Missing or invalid values
// fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Backend: domain.BackendSettings{
			URL:     s.getURL(defaults.Backend.URL),
			Timeout: time.Duration(s.getNonNegativeInt(KeyBackendTimeout, 0)) * time.Second,
		},
		Reveal: domain.RevealSettings{
			Delay: s.getDelay(defaults.Reveal.Delay),
		},
		Questionnaire: domain.QuestionnaireSettings{
			ListMarkers: s.getMarkers(defaults.Questionnaire.ListMarkers),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(KeyHistoryEnabled, defaults.History.Enabled),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(KeyBackendURL, settings.Backend.URL); err != nil {
		return fmt.Errorf("save backend url: %w", err)
	}
	if err := s.configStore.Set(KeyBackendTimeout, int(settings.Backend.Timeout/time.Second)); err != nil {
		return fmt.Errorf("save backend timeout: %w", err)
	}
	if err := s.configStore.Set(KeyRevealDelay, int(settings.Reveal.Delay/time.Millisecond)); err != nil {
		return fmt.Errorf("save reveal delay: %w", err)
	}
	if err := s.configStore.Set(KeyListMarkers, settings.Questionnaire.ListMarkers); err != nil {
		return fmt.Errorf("save list markers: %w", err)
	}
	if err := s.configStore.Set(KeyHistoryEnabled, settings.History.Enabled); err != nil {
		return fmt.Errorf("save history enabled: %w", err)
	}
	return nil
}

// Set updates one setting from its string form.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	switch key {
	case KeyBackendURL:
		if !validBackendURL(value) {
			return fmt.Errorf("%w: backend url must be an http(s) URL: %q", domain.ErrInvalidInput, value)
		}
		settings.Backend.URL = strings.TrimRight(value, "/")
	case KeyBackendTimeout:
		n, err := parseNonNegative(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, key, err)
		}
		settings.Backend.Timeout = time.Duration(n) * time.Second
	case KeyRevealDelay:
		n, err := parseNonNegative(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, key, err)
		}
		settings.Reveal.Delay = time.Duration(n) * time.Millisecond
	case KeyListMarkers:
		settings.Questionnaire.ListMarkers = domain.SplitList(value)
	case KeyHistoryEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, key, err)
		}
		settings.History.Enabled = b
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// Keys returns the recognised config keys in display order.
func (s *SettingsService) Keys() []string {
	return []string{KeyBackendURL, KeyBackendTimeout, KeyRevealDelay, KeyListMarkers, KeyHistoryEnabled}
}

// Validate checks that current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	if !validBackendURL(settings.Backend.URL) {
		return fmt.Errorf("%w: backend url %q", domain.ErrInvalidInput, settings.Backend.URL)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getURL(defaultVal string) string {
	val := s.configStore.GetString(KeyBackendURL)
	if !validBackendURL(val) {
		return defaultVal
	}
	return strings.TrimRight(val, "/")
}

func (s *SettingsService) getNonNegativeInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	val := s.configStore.GetInt(key)
	if val < 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getDelay(defaultVal time.Duration) time.Duration {
	if _, exists := s.configStore.Get(KeyRevealDelay); !exists {
		return defaultVal
	}
	ms := s.configStore.GetInt(KeyRevealDelay)
	if ms < 0 {
		return defaultVal
	}
	return time.Duration(ms) * time.Millisecond
}

func (s *SettingsService) getMarkers(defaultVal []string) []string {
	if _, exists := s.configStore.Get(KeyListMarkers); !exists {
		return defaultVal
	}
	return s.configStore.GetStringSlice(KeyListMarkers)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func validBackendURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func parseNonNegative(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("must not be negative: %d", n)
	}
	return n, nil
}
