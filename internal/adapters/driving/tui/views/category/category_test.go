package category

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/catalog-cli/internal/adapters/driven/catalogapi"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/components/serviceform"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/catalog-cli/internal/core/domain"
	"github.com/custodia-labs/catalog-cli/internal/core/services"
)

// MockCategoryService implements driving.CategoryService for testing.
type MockCategoryService struct {
	GetFunc func(ctx context.Context, id string) (*domain.Category, error)
}

func (m *MockCategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockCategoryService) ImageURL(category *domain.Category) string {
	if category.HasImage() {
		return "http://localhost:5001/uploads/" + category.Image
	}
	return ""
}

func (m *MockCategoryService) Image(_ context.Context, _ *domain.Category) ([]byte, error) {
	return nil, domain.ErrNotFound
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, nil, viewer, "")

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.Equal(t, FocusList, v.Focus())
	assert.Nil(t, v.Init())
	assert.Nil(t, v.Category())
}

func TestView_SetCategory_ShowsLoading(t *testing.T) {
	v := newPage(haircuts(), viewer)

	cmd := v.SetCategory("7")

	require.NotNil(t, cmd)
	assert.True(t, v.Loading())
	assert.False(t, v.NotFound())
	assert.Contains(t, v.View(), LoadingText)
	assert.Equal(t, "7", v.CategoryID())
}

func TestView_Haircuts_Viewer(t *testing.T) {
	v := openPage(t, haircuts(), viewer, "7")

	require.NotNil(t, v.Category())
	view := v.View()

	assert.Contains(t, view, "Haircuts")
	assert.Contains(t, view, BackText)
	assert.Contains(t, view, ServicesHeading)
	assert.Contains(t, view, "Buzz")
	assert.Contains(t, view, "Fade")
	assert.Contains(t, view, "₪50")
	assert.Contains(t, view, "₪80")
	assert.Contains(t, view, "Make an appointment")
	assert.NotContains(t, view, "[e] Edit")
	assert.NotContains(t, view, "[d] Delete")
	assert.NotContains(t, view, "Add Service")
}

func TestView_Haircuts_Admin(t *testing.T) {
	v := openPage(t, haircuts(), admin, "7")

	view := v.View()

	assert.Contains(t, view, "Buzz")
	assert.Contains(t, view, "Fade")
	assert.Contains(t, view, "Make an appointment")
	assert.Contains(t, view, "[e] Edit")
	assert.Contains(t, view, "[d] Delete")
	assert.Contains(t, view, "Add Service")
}

func TestView_Viewer_ManageKeysIgnored(t *testing.T) {
	api := haircuts()
	v := openPage(t, api, viewer, "7")

	for _, r := range []rune{'a', 'e', 'd', 'f'} {
		_, cmd := v.Update(key(r))
		assert.Nil(t, cmd)
	}

	assert.False(t, v.CreateForm().IsOpen())
	assert.False(t, v.EditForm().IsOpen())
	assert.False(t, v.Dialog().Active())
	assert.Equal(t, 0, api.MutationCount())
}

func TestView_CategoryImage(t *testing.T) {
	api := haircuts()
	api.AddCategory(domain.Category{ID: "8", Name: "Nails", Image: "nails.png"})

	v := openPage(t, api, viewer, "8")

	assert.Contains(t, v.View(), "memory:///uploads/nails.png")
	assert.Contains(t, v.View(), "No services found for this category.")
}

func TestView_NotFound_HidesEverything(t *testing.T) {
	for _, user := range []domain.User{viewer, admin} {
		t.Run(user.Role, func(t *testing.T) {
			api := haircuts()
			api.Fail(memory.OpGetCategory, errors.New("404"))

			v := openPage(t, api, user, "7")

			assert.True(t, v.NotFound())
			view := v.View()
			assert.Contains(t, view, NotFoundText)
			assert.NotContains(t, view, "Buzz")
			assert.NotContains(t, view, ServicesHeading)
			assert.NotContains(t, view, "Add Service")
			assert.NotContains(t, view, "Make an appointment")
		})
	}
}

func TestView_EmptyCategoryResponse_NotFound(t *testing.T) {
	for _, body := range []string{`null`, ``, `{}`} {
		t.Run("body "+body, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				if r.URL.Path == "/categories/99" {
					_, _ = w.Write([]byte(body))
					return
				}
				_, _ = w.Write([]byte(`[]`))
			}))
			defer server.Close()
			api := catalogapi.New(catalogapi.Config{BaseURL: server.URL})
			v := NewView(nil, services.NewCategoryService(api), services.NewServiceCatalog(api), admin, "₪")
			v.SetDimensions(120, 60)

			drain(t, v, v.SetCategory("99"))

			assert.True(t, v.NotFound())
			assert.Nil(t, v.Category())
			view := v.View()
			assert.Contains(t, view, NotFoundText)
			assert.NotContains(t, view, ServicesHeading)
			assert.NotContains(t, view, "Add Service")
		})
	}
}

func TestView_CategoryWithoutID_NotFound(t *testing.T) {
	mock := &MockCategoryService{
		GetFunc: func(context.Context, string) (*domain.Category, error) {
			return &domain.Category{}, nil
		},
	}
	v := NewView(nil, mock, services.NewServiceCatalog(haircuts()), admin, "₪")
	v.SetDimensions(120, 60)

	drain(t, v, v.SetCategory("7"))

	assert.True(t, v.NotFound())
	assert.NotContains(t, v.View(), "Buzz")
}

func TestView_NotFound_OnlyBackWorks(t *testing.T) {
	api := memory.NewCatalog()
	v := openPage(t, api, admin, "404")
	require.True(t, v.NotFound())

	_, cmd := v.Update(key('a'))
	assert.Nil(t, cmd)
	assert.False(t, v.CreateForm().IsOpen())

	_, cmd = v.Update(key('r'))
	assert.Nil(t, cmd, "no retry")

	_, cmd = v.Update(keyType(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewCatalog}, cmd())
}

func TestView_NilCategoryService(t *testing.T) {
	v := NewView(nil, nil, &MockServiceCatalog{}, admin, "₪")

	drain(t, v, v.SetCategory("7"))

	assert.True(t, v.NotFound())
}

func TestView_ListFailure_ShowsEmpty(t *testing.T) {
	api := haircuts()
	api.Fail(memory.OpListServices, errors.New("timeout"))
	captureLog(t)

	v := openPage(t, api, viewer, "7")

	require.NotNil(t, v.Category())
	assert.Empty(t, v.Services())
	assert.Contains(t, v.View(), "No services found for this category.")
}

func TestView_GoBack(t *testing.T) {
	v := openPage(t, haircuts(), viewer, "7")

	for _, k := range []tea.KeyMsg{keyType(tea.KeyEsc), key('b')} {
		_, cmd := v.Update(k)
		require.NotNil(t, cmd)
		assert.Equal(t, messages.ViewChanged{View: messages.ViewCatalog}, cmd())
	}
}

func TestView_Book(t *testing.T) {
	api := haircuts()
	v := openPage(t, api, viewer, "7")

	v.Update(key('j'))
	_, cmd := v.Update(keyType(tea.KeyEnter))
	require.NotNil(t, cmd)

	msg, ok := cmd().(messages.BookingRequested)
	require.True(t, ok)
	assert.Equal(t, "Fade", msg.Service.Name)
	assert.Equal(t, 0, api.MutationCount())
}

func TestView_Book_EmptyList(t *testing.T) {
	v := openPage(t, memoryWithEmptyCategory(), viewer, "5")

	_, cmd := v.Update(keyType(tea.KeyEnter))

	assert.Nil(t, cmd)
}

func memoryWithEmptyCategory() *memory.Catalog {
	api := memory.NewCatalog()
	api.AddCategory(domain.Category{ID: "5", Name: "Empty"})
	return api
}

func TestView_AddToggle(t *testing.T) {
	v := openPage(t, haircuts(), admin, "7")

	v.Update(key('a'))
	assert.True(t, v.CreateForm().IsOpen())
	assert.Equal(t, FocusCreate, v.Focus())
	assert.Contains(t, v.View(), "Close Form")
	assert.True(t, v.CapturesInput())

	v.Update(keyType(tea.KeyCtrlL))
	assert.Equal(t, FocusList, v.Focus())
	assert.True(t, v.CreateForm().IsOpen())

	v.Update(key('a'))
	assert.False(t, v.CreateForm().IsOpen())
	assert.Contains(t, v.View(), "Add Service")
}

func TestView_CreateShave(t *testing.T) {
	api := haircuts()
	v := openPage(t, api, admin, "7")
	listCalls := api.CallCount(memory.OpListServices)

	v.Update(key('a'))
	typeText(v, "Shave")
	v.Update(keyType(tea.KeyTab))
	typeText(v, "0")

	_, cmd := v.Update(keyType(tea.KeyEnter))
	drain(t, v, cmd)

	assert.True(t, v.Alert().Active())
	assert.Equal(t, "Price must be greater than 0", v.Alert().Message())
	assert.Contains(t, v.View(), "Price must be greater than 0")
	assert.True(t, v.CreateForm().IsOpen())
	assert.Equal(t, 0, api.CallCount(memory.OpCreateService), "no POST for price 0")

	_, cmd = v.Update(keyType(tea.KeyEnter))
	drain(t, v, cmd)
	require.False(t, v.Alert().Active())
	assert.Equal(t, "Shave", v.CreateForm().Draft().Name, "form keeps input")

	v.Update(keyType(tea.KeyBackspace))
	typeText(v, "30")
	_, cmd = v.Update(keyType(tea.KeyEnter))
	drain(t, v, cmd)

	require.Equal(t, 1, api.CallCount(memory.OpCreateService))
	calls := api.Calls()
	var created memory.Call
	for _, c := range calls {
		if c.Op == memory.OpCreateService {
			created = c
		}
	}
	assert.Equal(t, "7", created.ID)
	assert.Equal(t, domain.ServiceInput{Name: "Shave", Price: 30, Time: 15}, created.Input)

	assert.False(t, v.CreateForm().IsOpen())
	assert.Equal(t, domain.NewServiceDraft(), v.CreateForm().Draft(), "draft reset")
	assert.Equal(t, FocusList, v.Focus())
	assert.Equal(t, listCalls+1, api.CallCount(memory.OpListServices), "list reloaded")
	assert.Equal(t, []string{"Buzz", "Fade", "Shave"}, serviceNames(v.Services()))
	assert.Equal(t, api.Services("7"), v.Services())
}

func TestView_CreateFailure_KeepsForm(t *testing.T) {
	api := haircuts()
	api.Fail(memory.OpCreateService, errors.New("500"))
	buf := captureLog(t)
	v := openPage(t, api, admin, "7")
	listCalls := api.CallCount(memory.OpListServices)

	v.Update(key('a'))
	typeText(v, "Shave")
	v.Update(keyType(tea.KeyTab))
	typeText(v, "30")
	_, cmd := v.Update(keyType(tea.KeyEnter))
	drain(t, v, cmd)

	assert.True(t, v.CreateForm().IsOpen())
	assert.Equal(t, serviceform.StateEditing, v.CreateForm().State())
	assert.Equal(t, "Shave", v.CreateForm().Draft().Name)
	assert.Equal(t, "30", v.CreateForm().Draft().Price)
	assert.Equal(t, status.StateError, v.StatusBar().State())
	assert.Equal(t, SaveFailedText, v.StatusBar().Message())
	assert.Equal(t, listCalls, api.CallCount(memory.OpListServices), "no reload")
	assert.Equal(t, []string{"Buzz", "Fade"}, serviceNames(v.Services()))
	assert.Contains(t, buf.String(), "[ERROR]")
}

func TestView_EditThenCancel_ListUnchanged(t *testing.T) {
	api := haircuts()
	v := openPage(t, api, admin, "7")
	before := append([]domain.Service(nil), v.Services()...)

	v.Update(key('e'))
	require.True(t, v.EditForm().IsOpen())
	assert.Contains(t, v.View(), "Edit Service")
	typeText(v, "zzz")
	assert.Equal(t, "Buzzzzz", v.EditForm().Draft().Name)

	_, cmd := v.Update(keyType(tea.KeyEsc))
	drain(t, v, cmd)

	assert.False(t, v.EditForm().IsOpen())
	assert.Equal(t, FocusList, v.Focus())
	assert.Equal(t, before, v.Services())
	assert.Equal(t, 0, api.MutationCount())
}

func TestView_EditSubmit(t *testing.T) {
	api := haircuts()
	v := openPage(t, api, admin, "7")

	v.Update(key('j'))
	v.Update(key('e'))
	v.Update(keyType(tea.KeyTab))
	v.Update(keyType(tea.KeyBackspace))
	v.Update(keyType(tea.KeyBackspace))
	typeText(v, "95")
	v.Update(keyType(tea.KeyTab))
	v.Update(keyType(tea.KeyRight))

	_, cmd := v.Update(keyType(tea.KeyEnter))
	drain(t, v, cmd)

	require.Equal(t, 1, api.CallCount(memory.OpUpdateService))
	assert.False(t, v.EditForm().IsOpen())
	fade := v.Services()[1]
	assert.Equal(t, "2", fade.ID)
	assert.Equal(t, 95.0, fade.Price)
	assert.Equal(t, 45, fade.Time)
	assert.Equal(t, api.Services("7"), v.Services())
}

func TestView_EditInvalidPrice_Blocked(t *testing.T) {
	api := haircuts()
	v := openPage(t, api, admin, "7")

	v.Update(key('e'))
	v.Update(keyType(tea.KeyTab))
	v.Update(keyType(tea.KeyBackspace))
	v.Update(keyType(tea.KeyBackspace))
	typeText(v, "-1")
	_, cmd := v.Update(keyType(tea.KeyEnter))
	drain(t, v, cmd)

	assert.True(t, v.Alert().Active())
	assert.True(t, v.EditForm().IsOpen())
	assert.Equal(t, 0, api.MutationCount())
}

func TestView_EditFailure_KeepsSession(t *testing.T) {
	api := haircuts()
	api.Fail(memory.OpUpdateService, errors.New("500"))
	captureLog(t)
	v := openPage(t, api, admin, "7")

	v.Update(key('e'))
	typeText(v, "!")
	_, cmd := v.Update(keyType(tea.KeyEnter))
	drain(t, v, cmd)

	assert.True(t, v.EditForm().IsOpen())
	assert.Equal(t, "1", v.EditForm().Session().ServiceID)
	assert.Equal(t, "Buzz!", v.EditForm().Draft().Name)
	assert.Equal(t, "Buzz", v.Services()[0].Name)
}

func TestView_DeleteDeclined_NoCall(t *testing.T) {
	for _, decline := range []tea.KeyMsg{key('n'), keyType(tea.KeyEsc)} {
		api := haircuts()
		v := openPage(t, api, admin, "7")
		before := append([]domain.Service(nil), v.Services()...)

		v.Update(key('d'))
		require.True(t, v.Dialog().Active())
		assert.Contains(t, v.View(), DeletePrompt)

		_, cmd := v.Update(decline)
		drain(t, v, cmd)

		assert.False(t, v.Dialog().Active())
		assert.Equal(t, 0, api.MutationCount())
		assert.Equal(t, before, v.Services())
	}
}

func TestView_DeleteConfirmed(t *testing.T) {
	api := haircuts()
	v := openPage(t, api, admin, "7")

	v.Update(key('j'))
	v.Update(key('d'))
	_, cmd := v.Update(key('y'))
	drain(t, v, cmd)

	assert.Equal(t, 1, api.CallCount(memory.OpDeleteService))
	assert.Equal(t, []string{"Buzz"}, serviceNames(v.Services()))
	assert.Equal(t, api.Services("7"), v.Services())
}

func TestView_DeleteFailure_ListStale(t *testing.T) {
	api := haircuts()
	api.Fail(memory.OpDeleteService, errors.New("500"))
	captureLog(t)
	v := openPage(t, api, admin, "7")
	listCalls := api.CallCount(memory.OpListServices)

	v.Update(key('d'))
	_, cmd := v.Update(key('y'))
	drain(t, v, cmd)

	assert.Equal(t, []string{"Buzz", "Fade"}, serviceNames(v.Services()))
	assert.Equal(t, listCalls, api.CallCount(memory.OpListServices))
	assert.Equal(t, DeleteFailedText, v.StatusBar().Message())
}

func TestView_StaleCategoryDropped(t *testing.T) {
	api := haircuts()
	api.AddCategory(domain.Category{ID: "8", Name: "Nails"})
	v := newPage(api, viewer)

	first := v.SetCategory("7")
	second := v.SetCategory("8")
	drain(t, v, second)
	drain(t, v, first)

	require.NotNil(t, v.Category())
	assert.Equal(t, "Nails", v.Category().Name)
	assert.Empty(t, v.Services())
}

func TestView_StaleServicesDropped(t *testing.T) {
	v := openPage(t, haircuts(), viewer, "7")

	v.Update(messages.ServicesLoaded{CategoryID: "7", Seq: 0, Services: []domain.Service{{ID: "x", Name: "Ghost"}}})
	v.Update(messages.ServicesLoaded{CategoryID: "9", Seq: v.Store().Seq(), Services: []domain.Service{{ID: "x", Name: "Ghost"}}})

	assert.Equal(t, []string{"Buzz", "Fade"}, serviceNames(v.Services()))
}

func TestView_LateMutationForOtherCategoryIgnored(t *testing.T) {
	v := openPage(t, haircuts(), admin, "7")

	_, cmd := v.Update(messages.ServiceCreated{CategoryID: "9", Service: &domain.Service{ID: "x"}})
	assert.Nil(t, cmd)
	_, cmd = v.Update(messages.ServiceDeleted{CategoryID: "9", ServiceID: "1"})
	assert.Nil(t, cmd)
}

func TestView_Reload(t *testing.T) {
	api := haircuts()
	v := openPage(t, api, viewer, "7")
	api.AddService(domain.Service{Name: "Trim", Price: 20, Time: 15, CategoryID: "7"})

	_, cmd := v.Update(key('r'))
	drain(t, v, cmd)

	assert.Equal(t, []string{"Buzz", "Fade", "Trim"}, serviceNames(v.Services()))
}

func TestView_MockCategoryService(t *testing.T) {
	mock := &MockCategoryService{
		GetFunc: func(_ context.Context, id string) (*domain.Category, error) {
			return &domain.Category{ID: id, Name: "Massage", Image: "massage.jpg"}, nil
		},
	}
	v := NewView(nil, mock, services.NewServiceCatalog(memory.NewCatalog()), viewer, "₪")

	drain(t, v, v.SetCategory("3"))

	assert.Contains(t, v.View(), "Massage")
	assert.Contains(t, v.View(), "http://localhost:5001/uploads/massage.jpg")
}

func TestView_WindowSize(t *testing.T) {
	v := NewView(nil, nil, nil, viewer, "₪")

	updated, cmd := v.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, v, updated)
	assert.Nil(t, cmd)
	assert.True(t, v.ready)
	assert.Equal(t, 100, v.width)
	assert.Equal(t, 100, v.StatusBar().Width())
}
