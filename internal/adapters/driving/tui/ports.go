// Package tui provides an interactive terminal user interface for the catalog.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/catalog-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Category reads category records.
	Category driving.CategoryService

	// Services manages a category's services.
	Services driving.ServiceCatalog

	// Settings manages application settings. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	category driving.CategoryService,
	services driving.ServiceCatalog,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Category: category,
		Services: services,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Category == nil {
		return ErrMissingCategoryService
	}
	if p.Services == nil {
		return ErrMissingServiceCatalog
	}
	return nil
}
