// Command catalog is the terminal client for a service catalog.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/catalog-cli/internal/adapters/driven/catalogapi"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driven/config/env"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/catalog-cli/internal/core/services"
	"github.com/custodia-labs/catalog-cli/internal/logger"
)

// logFileName is the TUI log written next to the config file unless log.file is set.
const logFileName = "catalog.log"

func main() {
	cli.SetBootstrap(wire)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// wire builds the driven adapters and core services from config, .env,
// the environment and flags, in increasing order of precedence.
func wire(opts cli.Options) (*cli.Services, error) {
	if err := env.LoadDotEnv(); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	configDir := opts.ConfigDir
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		configDir = dir
	}

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(store)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	env.Apply(settings)
	if opts.APIURL != "" {
		settings.API.BaseURL = strings.TrimRight(opts.APIURL, "/")
	}
	if settings.Log.File == "" {
		settings.Log.File = filepath.Join(configDir, logFileName)
	}

	logger.Debug("config: %s", store.Path())
	logger.Debug("api: %s (timeout %s, rate limit %g/s)",
		settings.API.BaseURL, settings.API.Timeout, settings.API.RateLimit)

	api := catalogapi.New(catalogapi.Config{
		BaseURL:   settings.API.BaseURL,
		Timeout:   settings.API.Timeout,
		RateLimit: settings.API.RateLimit,
	})

	return &cli.Services{
		Category: services.NewCategoryService(api),
		Catalog:  services.NewServiceCatalog(api),
		Settings: settingsService,
		User:     settings.User,
		Currency: settings.Display.Currency,
		LogFile:  settings.Log.File,
	}, nil
}
