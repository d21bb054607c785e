package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/custodia-labs/catalog-cli/internal/core/domain"
	"github.com/custodia-labs/catalog-cli/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.CatalogAPI = (*Catalog)(nil)

// Op names a CatalogAPI operation for call recording and failure injection.
type Op string

// Catalog operations.
const (
	OpGetCategory   Op = "GetCategory"
	OpListServices  Op = "ListServices"
	OpCreateService Op = "CreateService"
	OpUpdateService Op = "UpdateService"
	OpDeleteService Op = "DeleteService"
	OpFetchAsset    Op = "FetchAsset"
)

// Call is one recorded request.
type Call struct {
	Op Op
	// ID is the category or service the call addressed.
	ID string
	// Input is set for create and update.
	Input domain.ServiceInput
}

// Catalog is an in-memory stand-in for the remote catalog server.
// It assigns sequential service IDs, records every call and can be told
// to fail an operation.
type Catalog struct {
	mu         sync.RWMutex
	categories map[string]domain.Category
	services   map[string]domain.Service
	order      []string
	assets     map[string][]byte
	failures   map[Op]error
	calls      []Call
	nextID     int
}

// NewCatalog creates an empty in-memory catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		categories: make(map[string]domain.Category),
		services:   make(map[string]domain.Service),
		assets:     make(map[string][]byte),
		failures:   make(map[Op]error),
		nextID:     1,
	}
}

// AddCategory seeds a category.
func (c *Catalog) AddCategory(category domain.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.categories[category.ID] = category
}

// AddService seeds a service. An empty ID is assigned like a server would.
func (c *Catalog) AddService(service domain.Service) domain.Service {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.insertLocked(service)
}

// AddAsset seeds a static upload.
func (c *Catalog) AddAsset(filename string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.assets[filename] = data
}

// Fail makes every following call of op return err. A nil err clears it.
func (c *Catalog) Fail(op Op, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil {
		delete(c.failures, op)
		return
	}
	c.failures[op] = err
}

// Calls returns a copy of the recorded calls in order.
func (c *Catalog) Calls() []Call {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Call, len(c.calls))
	copy(out, c.calls)
	return out
}

// CallCount returns how many times op was called.
func (c *Catalog) CallCount(op Op) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, call := range c.calls {
		if call.Op == op {
			n++
		}
	}
	return n
}

// MutationCount returns the number of create, update and delete calls.
func (c *Catalog) MutationCount() int {
	return c.CallCount(OpCreateService) + c.CallCount(OpUpdateService) + c.CallCount(OpDeleteService)
}

// Services returns a snapshot of the stored services of a category.
func (c *Catalog) Services(categoryID string) []domain.Service {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.listLocked(categoryID)
}

// GetCategory returns the seeded category or domain.ErrNotFound.
func (c *Catalog) GetCategory(_ context.Context, id string) (*domain.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.recordLocked(Call{Op: OpGetCategory, ID: id}); err != nil {
		return nil, err
	}
	category, ok := c.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &category, nil
}

// ListServices returns services of the category in insertion order.
func (c *Catalog) ListServices(_ context.Context, categoryID string) ([]domain.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.recordLocked(Call{Op: OpListServices, ID: categoryID}); err != nil {
		return nil, err
	}
	return c.listLocked(categoryID), nil
}

// CreateService stores a new service with the next ID.
func (c *Catalog) CreateService(_ context.Context, categoryID string, in domain.ServiceInput) (*domain.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.recordLocked(Call{Op: OpCreateService, ID: categoryID, Input: in}); err != nil {
		return nil, err
	}
	created := c.insertLocked(domain.Service{
		Name:       in.Name,
		Price:      in.Price,
		Time:       in.Time,
		CategoryID: categoryID,
	})
	return &created, nil
}

// UpdateService replaces name, price and time of an existing service.
func (c *Catalog) UpdateService(_ context.Context, id string, in domain.ServiceInput) (*domain.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.recordLocked(Call{Op: OpUpdateService, ID: id, Input: in}); err != nil {
		return nil, err
	}
	service, ok := c.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	service.Name = in.Name
	service.Price = in.Price
	service.Time = in.Time
	c.services[id] = service
	return &service, nil
}

// DeleteService removes a service.
func (c *Catalog) DeleteService(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.recordLocked(Call{Op: OpDeleteService, ID: id}); err != nil {
		return err
	}
	if _, ok := c.services[id]; !ok {
		return domain.ErrNotFound
	}
	delete(c.services, id)
	for i, sid := range c.order {
		if sid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// FetchAsset returns a seeded upload or domain.ErrNotFound.
func (c *Catalog) FetchAsset(_ context.Context, filename string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.recordLocked(Call{Op: OpFetchAsset, ID: filename}); err != nil {
		return nil, err
	}
	data, ok := c.assets[filename]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// AssetURL returns a memory: pseudo-URL for the upload.
func (c *Catalog) AssetURL(filename string) string {
	return "memory:///uploads/" + filename
}

func (c *Catalog) recordLocked(call Call) error {
	c.calls = append(c.calls, call)
	return c.failures[call.Op]
}

func (c *Catalog) insertLocked(service domain.Service) domain.Service {
	for service.ID == "" {
		id := strconv.Itoa(c.nextID)
		c.nextID++
		if _, taken := c.services[id]; !taken {
			service.ID = id
		}
	}
	if _, exists := c.services[service.ID]; !exists {
		c.order = append(c.order, service.ID)
	}
	c.services[service.ID] = service
	return service
}

func (c *Catalog) listLocked(categoryID string) []domain.Service {
	result := make([]domain.Service, 0)
	for _, id := range c.order {
		if s := c.services[id]; s.CategoryID == categoryID {
			result = append(result, s)
		}
	}
	return result
}
