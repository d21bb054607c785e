// Package domain defines the core business entities for the catalog client.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Category: A catalog grouping shown as a page
//   - Service: A bookable offering under a category
//   - ServiceDraft: Unsaved form state for creating or editing a service
//   - EditSession: A checked-out copy of a Service being edited
//   - User: The opaque caller identity injected by the auth collaborator
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
