package tui

import "errors"

// ErrMissingCategoryService is returned when the category service is not provided.
var ErrMissingCategoryService = errors.New("tui: category service is required")

// ErrMissingServiceCatalog is returned when the service catalog is not provided.
var ErrMissingServiceCatalog = errors.New("tui: service catalog is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
