package category

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/catalog-cli/internal/core/domain"
	"github.com/custodia-labs/catalog-cli/internal/core/ports/driving"
)

var errNoCatalog = errors.New("service catalog not available")

// Store mirrors the server's service list for one category.
//
// The list is replaced wholesale by refresh results and never patched
// locally. Mutations re-fetch once acknowledged. Every refresh is
// numbered and only the most recent one may replace the list.
type Store struct {
	ctx        context.Context
	services   driving.ServiceCatalog
	categoryID string
	seq        uint64
	items      []domain.Service
}

// NewStore creates a store backed by services.
func NewStore(ctx context.Context, services driving.ServiceCatalog) *Store {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Store{
		ctx:      ctx,
		services: services,
		items:    []domain.Service{},
	}
}

// SetContext sets the context used by issued requests.
func (s *Store) SetContext(ctx context.Context) {
	if ctx != nil {
		s.ctx = ctx
	}
}

// SetCategory switches the store to another category and clears the list.
// Results still in flight for the previous category are dropped on arrival.
func (s *Store) SetCategory(id string) {
	s.categoryID = id
	s.items = []domain.Service{}
	s.seq++
}

// CategoryID returns the current category.
func (s *Store) CategoryID() string {
	return s.categoryID
}

// Seq returns the number of the most recently issued refresh.
func (s *Store) Seq() uint64 {
	return s.seq
}

// Items returns the current list.
func (s *Store) Items() []domain.Service {
	return s.items
}

// Refresh returns a command that lists the current category's services.
func (s *Store) Refresh() tea.Cmd {
	s.seq++
	ctx, services, id, seq := s.ctx, s.services, s.categoryID, s.seq

	return func() tea.Msg {
		if services == nil {
			return messages.ServicesLoaded{CategoryID: id, Seq: seq, Err: errNoCatalog}
		}
		list, err := services.List(ctx, id)
		return messages.ServicesLoaded{CategoryID: id, Seq: seq, Services: list, Err: err}
	}
}

// Apply installs a refresh result. It reports false when the result is
// stale and was dropped. A failed refresh leaves the list empty.
func (s *Store) Apply(msg messages.ServicesLoaded) bool {
	if msg.CategoryID != s.categoryID || msg.Seq != s.seq {
		return false
	}
	if msg.Err != nil || msg.Services == nil {
		s.items = []domain.Service{}
		return true
	}
	s.items = msg.Services
	return true
}

// Create validates draft and returns a command that posts it.
// A validation failure is returned immediately and no request is made.
func (s *Store) Create(draft domain.ServiceDraft) (tea.Cmd, error) {
	if _, err := draft.Validate(); err != nil {
		return nil, err
	}
	ctx, services, id := s.ctx, s.services, s.categoryID

	return func() tea.Msg {
		if services == nil {
			return messages.ServiceCreated{CategoryID: id, Err: errNoCatalog}
		}
		svc, err := services.Create(ctx, id, draft)
		return messages.ServiceCreated{CategoryID: id, Service: svc, Err: err}
	}, nil
}

// Update validates session and returns a command that replaces the service.
func (s *Store) Update(session domain.EditSession) (tea.Cmd, error) {
	if _, err := session.Draft.Validate(); err != nil {
		return nil, err
	}
	ctx, services, id := s.ctx, s.services, s.categoryID

	return func() tea.Msg {
		if services == nil {
			return messages.ServiceUpdated{CategoryID: id, ServiceID: session.ServiceID, Err: errNoCatalog}
		}
		svc, err := services.Update(ctx, session)
		return messages.ServiceUpdated{CategoryID: id, ServiceID: session.ServiceID, Service: svc, Err: err}
	}, nil
}

// Delete returns a command that removes a service. Confirm before calling.
func (s *Store) Delete(serviceID string) tea.Cmd {
	ctx, services, id := s.ctx, s.services, s.categoryID

	return func() tea.Msg {
		if services == nil {
			return messages.ServiceDeleted{CategoryID: id, ServiceID: serviceID, Err: errNoCatalog}
		}
		err := services.Delete(ctx, serviceID)
		return messages.ServiceDeleted{CategoryID: id, ServiceID: serviceID, Err: err}
	}
}
