// Package env overlays environment variables onto application settings.
// A .env file in the working directory is read first if present; variables
// already set in the process environment win over the file.
package env

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/catalog-cli/internal/core/domain"
	"github.com/custodia-labs/catalog-cli/internal/logger"
)

// Recognised environment variables.
const (
	VarAPIURL   = "CATALOG_API_URL"
	VarUserRole = "CATALOG_USER_ROLE"
	VarUserName = "CATALOG_USER_NAME"
)

// LoadDotEnv reads the given .env files (default ".env") into the process
// environment. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
		logger.Debug("loaded environment from %s", f)
	}
	return nil
}

// Apply copies non-empty CATALOG_* variables into settings.
func Apply(settings *domain.AppSettings) {
	if settings == nil {
		return
	}
	if v := lookup(VarAPIURL); v != "" {
		settings.API.BaseURL = strings.TrimRight(v, "/")
	}
	if v := lookup(VarUserRole); v != "" {
		settings.User.Role = v
	}
	if v := lookup(VarUserName); v != "" {
		settings.User.Name = v
	}
}

func lookup(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
