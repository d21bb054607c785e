package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/catalog-cli/internal/core/domain"
	"github.com/custodia-labs/catalog-cli/internal/core/ports/driven"
	"github.com/custodia-labs/catalog-cli/internal/core/ports/driving"
	"github.com/custodia-labs/catalog-cli/internal/logger"
)

// Ensure ServiceCatalog implements the interface.
var _ driving.ServiceCatalog = (*ServiceCatalog)(nil)

// ServiceCatalog manages the services of a category through the catalog API.
// Drafts are validated here so no invalid payload reaches the server.
// Failed mutations are logged and returned; nothing is retried.
type ServiceCatalog struct {
	api driven.CatalogAPI
}

// NewServiceCatalog creates a new service catalog.
func NewServiceCatalog(api driven.CatalogAPI) *ServiceCatalog {
	return &ServiceCatalog{api: api}
}

// List returns the services of a category.
func (s *ServiceCatalog) List(ctx context.Context, categoryID string) ([]domain.Service, error) {
	if s.api == nil {
		return nil, domain.ErrNotImplemented
	}
	if categoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	services, err := s.api.ListServices(ctx, categoryID)
	if err != nil {
		logger.Warn("list services for category %s: %v", categoryID, err)
		return nil, fmt.Errorf("list services: %w", err)
	}
	logger.Debug("category %s has %d services", categoryID, len(services))
	return services, nil
}

// Create validates the draft and posts it under categoryID.
func (s *ServiceCatalog) Create(ctx context.Context, categoryID string, draft domain.ServiceDraft) (*domain.Service, error) {
	if s.api == nil {
		return nil, domain.ErrNotImplemented
	}
	if categoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	in, err := draft.Validate()
	if err != nil {
		return nil, err
	}
	created, err := s.api.CreateService(ctx, categoryID, in)
	if err != nil {
		logger.Error("create service %q in category %s: %v", in.Name, categoryID, err)
		return nil, fmt.Errorf("create service: %w", err)
	}
	logger.Info("created service %s (%s)", created.ID, created.Name)
	return created, nil
}

// Update validates the session draft and replaces the service it was checked out from.
func (s *ServiceCatalog) Update(ctx context.Context, session domain.EditSession) (*domain.Service, error) {
	if s.api == nil {
		return nil, domain.ErrNotImplemented
	}
	if session.ServiceID == "" {
		return nil, domain.ErrInvalidInput
	}
	in, err := session.Draft.Validate()
	if err != nil {
		return nil, err
	}
	updated, err := s.api.UpdateService(ctx, session.ServiceID, in)
	if err != nil {
		logger.Error("update service %s: %v", session.ServiceID, err)
		return nil, fmt.Errorf("update service: %w", err)
	}
	logger.Info("updated service %s", session.ServiceID)
	return updated, nil
}

// Delete removes a service.
func (s *ServiceCatalog) Delete(ctx context.Context, id string) error {
	if s.api == nil {
		return domain.ErrNotImplemented
	}
	if id == "" {
		return domain.ErrInvalidInput
	}
	if err := s.api.DeleteService(ctx, id); err != nil {
		logger.Error("delete service %s: %v", id, err)
		return fmt.Errorf("delete service: %w", err)
	}
	logger.Info("deleted service %s", id)
	return nil
}
