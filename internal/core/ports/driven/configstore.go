package driven

// ConfigStore is a flat key/value view over the settings file. Keys are
// dotted ("backend.url"); typed getters return the zero value when a key is
// missing or holds another type.
type ConfigStore interface {
	// Get returns the raw value and whether the key is set.
	Get(key string) (any, bool)

	GetString(key string) string

	GetInt(key string) int

	GetBool(key string) bool

	// GetStringSlice drops non-string array items.
	GetStringSlice(key string) []string

	// Set stores a value and writes the file.
	Set(key string, value any) error

	Save() error

	Load() error

	// Path names where the settings live, for display.
	Path() string
}
