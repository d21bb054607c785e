package driven

// ConfigStore persists client settings under flat dot keys ("api.base_url").
// Backends decide the on-disk shape; the TOML store nests keys into tables.
type ConfigStore interface {
	// Get returns the raw value and whether the key is set.
	Get(key string) (any, bool)

	// GetString returns "" when the key is missing or not a string.
	GetString(key string) string

	// GetInt returns 0 when the key is missing or not an integer.
	GetInt(key string) int

	// GetFloat widens integers; 0 when missing or not numeric.
	GetFloat(key string) float64

	// Set stores value and writes the backend before returning.
	Set(key string, value any) error

	// Load re-reads the backend, replacing in-memory values.
	Load() error

	// Path reports where settings live, for display.
	Path() string
}
