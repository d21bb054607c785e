package category

import (
	"bytes"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/catalog-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/components/alert"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/components/confirm"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/components/serviceform"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/catalog-cli/internal/core/domain"
	"github.com/custodia-labs/catalog-cli/internal/core/services"
	"github.com/custodia-labs/catalog-cli/internal/logger"
)

var (
	admin  = domain.User{Name: "ada", Role: domain.RoleAdmin}
	viewer = domain.User{Name: "vic", Role: "Customer"}
)

// haircuts seeds category 7 with Buzz and Fade.
func haircuts() *memory.Catalog {
	api := memory.NewCatalog()
	api.AddCategory(domain.Category{ID: "7", Name: "Haircuts"})
	api.AddService(domain.Service{ID: "1", Name: "Buzz", Price: 50, Time: 15, CategoryID: "7"})
	api.AddService(domain.Service{ID: "2", Name: "Fade", Price: 80, Time: 30, CategoryID: "7"})
	return api
}

func newPage(api *memory.Catalog, user domain.User) *View {
	v := NewView(nil, services.NewCategoryService(api), services.NewServiceCatalog(api), user, "₪")
	v.SetDimensions(120, 60)
	return v
}

// openPage loads category id and applies every result.
func openPage(t *testing.T, api *memory.Catalog, user domain.User, id string) *View {
	t.Helper()
	v := newPage(api, user)
	drain(t, v, v.SetCategory(id))
	return v
}

// drain runs cmd and feeds page messages back into v until none remain.
// Commands returning other messages (cursor blinks) are not followed.
func drain(t *testing.T, v *View, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			drain(t, v, c)
		}
		return
	}
	switch msg.(type) {
	case messages.CategoryLoaded, messages.ServicesLoaded,
		messages.ServiceCreated, messages.ServiceUpdated, messages.ServiceDeleted,
		serviceform.Submitted, serviceform.Closed, confirm.Resolved, alert.Dismissed:
		_, next := v.Update(msg)
		drain(t, v, next)
	}
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// typeText sends s one rune at a time, ignoring cursor commands.
func typeText(v *View, s string) {
	for _, r := range s {
		v.Update(key(r))
	}
}

func serviceNames(list []domain.Service) []string {
	names := make([]string, len(list))
	for i := range list {
		names[i] = list[i].Name
	}
	return names
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}
