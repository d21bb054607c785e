package services

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/catalog-cli/internal/core/domain"
	"github.com/custodia-labs/catalog-cli/internal/core/ports/driven"
	"github.com/custodia-labs/catalog-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyAPIBaseURL   = "api.base_url"
	KeyAPITimeout   = "api.timeout"
	KeyAPIRateLimit = "api.rate_limit"
	KeyUserName     = "user.name"
	KeyUserRole     = "user.role"
	KeyCurrency     = "display.currency"
	KeyLogFile      = "log.file"
)

var settingKeys = []string{
	KeyAPIBaseURL,
	KeyAPITimeout,
	KeyAPIRateLimit,
	KeyUserName,
	KeyUserRole,
	KeyCurrency,
	KeyLogFile,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	settings := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &settings, nil
	}

	settings.API.BaseURL = s.getString(KeyAPIBaseURL, settings.API.BaseURL)
	if secs := s.configStore.GetInt(KeyAPITimeout); secs > 0 {
		settings.API.Timeout = time.Duration(secs) * time.Second
	}
	if rps := s.configStore.GetFloat(KeyAPIRateLimit); rps > 0 {
		settings.API.RateLimit = rps
	}
	settings.User = domain.User{
		Name: s.configStore.GetString(KeyUserName),
		Role: s.configStore.GetString(KeyUserRole),
	}
	settings.Display.Currency = s.getString(KeyCurrency, settings.Display.Currency)
	settings.Log.File = s.configStore.GetString(KeyLogFile)

	return &settings, nil
}

// Set parses value for key and persists it.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	parsed, err := parseSetting(key, strings.TrimSpace(value))
	if err != nil {
		return err
	}
	return s.configStore.Set(key, parsed)
}

// Values returns the effective value of every key as text.
func (s *SettingsService) Values() (map[string]string, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}
	return map[string]string{
		KeyAPIBaseURL:   settings.API.BaseURL,
		KeyAPITimeout:   strconv.Itoa(int(settings.API.Timeout / time.Second)),
		KeyAPIRateLimit: strconv.FormatFloat(settings.API.RateLimit, 'f', -1, 64),
		KeyUserName:     settings.User.Name,
		KeyUserRole:     settings.User.Role,
		KeyCurrency:     settings.Display.Currency,
		KeyLogFile:      settings.Log.File,
	}, nil
}

// Keys lists the settable configuration keys.
func (s *SettingsService) Keys() []string {
	out := make([]string, len(settingKeys))
	copy(out, settingKeys)
	return out
}

// Path returns the backing config file path.
func (s *SettingsService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

func parseSetting(key, value string) (any, error) {
	switch key {
	case KeyAPIBaseURL:
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("%w: %s must be an http(s) URL", domain.ErrInvalidInput, key)
		}
		return strings.TrimRight(value, "/"), nil
	case KeyAPITimeout:
		secs, err := strconv.Atoi(value)
		if err != nil || secs < 0 {
			return nil, fmt.Errorf("%w: %s must be a whole number of seconds", domain.ErrInvalidInput, key)
		}
		return secs, nil
	case KeyAPIRateLimit:
		rps, err := strconv.ParseFloat(value, 64)
		if err != nil || rps < 0 {
			return nil, fmt.Errorf("%w: %s must be a non-negative number", domain.ErrInvalidInput, key)
		}
		return rps, nil
	case KeyUserName, KeyUserRole, KeyCurrency, KeyLogFile:
		return value, nil
	default:
		return nil, fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// getString returns the string value or a default if empty.
func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}
