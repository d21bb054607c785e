package domain

import "time"

// Default settings values.
const (
	DefaultAPIBaseURL = "http://localhost:5001"
	DefaultCurrency   = "₪"
)

// AppSettings holds all client configuration.
type AppSettings struct {
	API     APISettings
	User    User
	Display DisplaySettings
	Log     LogSettings
}

// APISettings configures the catalog HTTP API.
type APISettings struct {
	// BaseURL prefixes every resource route (e.g. http://localhost:5001).
	BaseURL string

	// Timeout bounds a single request. Zero means no timeout.
	Timeout time.Duration

	// RateLimit caps requests per second. Zero means unlimited.
	RateLimit float64
}

// DisplaySettings configures rendering.
type DisplaySettings struct {
	// Currency is the symbol prefixed to prices.
	Currency string
}

// LogSettings configures where logs go while the TUI owns the terminal.
type LogSettings struct {
	// File is the log file path. Empty disables file logging.
	File string
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		API: APISettings{
			BaseURL: DefaultAPIBaseURL,
		},
		Display: DisplaySettings{
			Currency: DefaultCurrency,
		},
	}
}
