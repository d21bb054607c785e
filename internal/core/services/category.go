package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/catalog-cli/internal/core/domain"
	"github.com/custodia-labs/catalog-cli/internal/core/ports/driven"
	"github.com/custodia-labs/catalog-cli/internal/core/ports/driving"
	"github.com/custodia-labs/catalog-cli/internal/logger"
)

// Ensure CategoryService implements the interface.
var _ driving.CategoryService = (*CategoryService)(nil)

// CategoryService reads categories from the catalog API.
type CategoryService struct {
	api driven.CatalogAPI
}

// NewCategoryService creates a new category service.
func NewCategoryService(api driven.CatalogAPI) *CategoryService {
	return &CategoryService{api: api}
}

// Get retrieves a category by ID.
func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	if s.api == nil {
		return nil, domain.ErrNotImplemented
	}
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	logger.Debug("fetching category %s", id)
	category, err := s.api.GetCategory(ctx, id)
	if err != nil {
		logger.Debug("category %s unavailable: %v", id, err)
		return nil, fmt.Errorf("get category %s: %w", id, err)
	}
	if category == nil || category.ID == "" {
		return nil, fmt.Errorf("get category %s: %w", id, domain.ErrNotFound)
	}
	return category, nil
}

// ImageURL returns the served location of the category image.
func (s *CategoryService) ImageURL(category *domain.Category) string {
	if s.api == nil || !category.HasImage() {
		return ""
	}
	return s.api.AssetURL(category.Image)
}

// Image downloads the category image.
func (s *CategoryService) Image(ctx context.Context, category *domain.Category) ([]byte, error) {
	if s.api == nil {
		return nil, domain.ErrNotImplemented
	}
	if !category.HasImage() {
		return nil, domain.ErrNotFound
	}
	data, err := s.api.FetchAsset(ctx, category.Image)
	if err != nil {
		return nil, fmt.Errorf("fetch image %s: %w", category.Image, err)
	}
	return data, nil
}
