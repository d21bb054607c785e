package driving

import "github.com/custodia-labs/catalog-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings with defaults applied.
	Get() (*domain.AppSettings, error)

	// Set parses value for a known key and persists it.
	Set(key, value string) error

	// Values returns the effective value of every key as text.
	Values() (map[string]string, error)

	// Keys lists the settable configuration keys.
	Keys() []string

	// Path returns where settings are persisted.
	Path() string
}
