package driving

import (
	"context"

	"github.com/custodia-labs/catalog-cli/internal/core/domain"
)

// CategoryService reads categories.
type CategoryService interface {
	// Get retrieves a category by ID.
	Get(ctx context.Context, id string) (*domain.Category, error)

	// ImageURL returns where the category image is served, or "" if it has none.
	ImageURL(category *domain.Category) string

	// Image downloads the category image.
	// Returns domain.ErrNotFound if the category has no image.
	Image(ctx context.Context, category *domain.Category) ([]byte, error)
}

// ServiceCatalog manages the services of a category.
// Mutations are validated before any request is made.
type ServiceCatalog interface {
	// List returns the services of a category as the server currently has them.
	List(ctx context.Context, categoryID string) ([]domain.Service, error)

	// Create validates a draft and posts it to the category.
	Create(ctx context.Context, categoryID string, draft domain.ServiceDraft) (*domain.Service, error)

	// Update validates an edit session and replaces the service it was checked out from.
	Update(ctx context.Context, session domain.EditSession) (*domain.Service, error)

	// Delete removes a service. Callers obtain confirmation first.
	Delete(ctx context.Context, id string) error
}
