package driven

import (
	"context"

	"github.com/custodia-labs/catalog-cli/internal/core/domain"
)

// CatalogAPI is the remote catalog server.
// The server is authoritative for every value it returns.
type CatalogAPI interface {
	// GetCategory fetches a category by ID.
	// Returns an error matching domain.ErrNotFound when the server has none.
	GetCategory(ctx context.Context, id string) (*domain.Category, error)

	// ListServices fetches every service of a category.
	ListServices(ctx context.Context, categoryID string) ([]domain.Service, error)

	// CreateService adds a service to a category. The server assigns the ID.
	CreateService(ctx context.Context, categoryID string, in domain.ServiceInput) (*domain.Service, error)

	// UpdateService replaces name, price and time of a service.
	UpdateService(ctx context.Context, id string, in domain.ServiceInput) (*domain.Service, error)

	// DeleteService removes a service.
	DeleteService(ctx context.Context, id string) error

	// FetchAsset downloads a static upload by filename.
	FetchAsset(ctx context.Context, filename string) ([]byte, error)

	// AssetURL returns the absolute URL of a static upload.
	AssetURL(filename string) string
}
