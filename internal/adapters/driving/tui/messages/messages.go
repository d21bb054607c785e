// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
//
// Results of remote calls carry the category they were issued for and,
// where responses can overlap, a sequence number. Receivers drop results
// that no longer match their current request.
package messages

import (
	"github.com/custodia-labs/catalog-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewCatalog is the root view; "back" from a category lands here.
	ViewCatalog ViewType = iota
	// ViewCategory is a single category's page.
	ViewCategory
	// ViewBooking is the booking flow entry point.
	ViewBooking
	// ViewSettings is the settings view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewCatalog:
		return "catalog"
	case ViewCategory:
		return "category"
	case ViewBooking:
		return "booking"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// CategoryRequested asks the app to open a category page.
type CategoryRequested struct {
	ID string
}

// BookingRequested hands a service to the booking flow.
type BookingRequested struct {
	Service domain.Service
}

// CategoryLoaded carries the result of fetching a category.
type CategoryLoaded struct {
	ID       string
	Seq      uint64
	Category *domain.Category
	Err      error
}

// ServicesLoaded carries the result of listing a category's services.
type ServicesLoaded struct {
	CategoryID string
	Seq        uint64
	Services   []domain.Service
	Err        error
}

// ServiceCreated signals a create request finished.
type ServiceCreated struct {
	CategoryID string
	Service    *domain.Service
	Err        error
}

// ServiceUpdated signals an update request finished.
type ServiceUpdated struct {
	CategoryID string
	ServiceID  string
	Service    *domain.Service
	Err        error
}

// ServiceDeleted signals a delete request finished.
type ServiceDeleted struct {
	CategoryID string
	ServiceID  string
	Err        error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals a setting was saved.
type SettingsSaved struct {
	Key string
	Err error
}
