package settings

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/catalog-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/catalog-cli/internal/core/domain"
	"github.com/custodia-labs/catalog-cli/internal/core/services"
)

// MockSettingsService implements driving.SettingsService for testing.
type MockSettingsService struct {
	ValuesFunc func() (map[string]string, error)
	SetFunc    func(key, value string) error
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	s := domain.DefaultAppSettings()
	return &s, nil
}

func (m *MockSettingsService) Set(key, value string) error {
	if m.SetFunc != nil {
		return m.SetFunc(key, value)
	}
	return nil
}

func (m *MockSettingsService) Values() (map[string]string, error) {
	if m.ValuesFunc != nil {
		return m.ValuesFunc()
	}
	return map[string]string{}, nil
}

func (m *MockSettingsService) Keys() []string {
	return []string{"api.base_url", "user.role"}
}

func (m *MockSettingsService) Path() string {
	return "/tmp/config.toml"
}

func loaded(t *testing.T, v *View) *View {
	t.Helper()
	cmd := v.Init()
	require.NotNil(t, cmd)
	v, _ = v.Update(cmd())
	return v
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewView(t *testing.T) {
	v := NewView(nil, &MockSettingsService{})

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.Len(t, v.keys, 2)
	assert.False(t, v.Editing())
}

func TestView_Init_NilService(t *testing.T) {
	v := loaded(t, NewView(nil, nil))

	assert.Error(t, v.Err())
	assert.Contains(t, v.View(), "No settings available.")
}

func TestView_ListsValues(t *testing.T) {
	v := loaded(t, NewView(nil, services.NewSettingsService(memory.NewConfigStore())))

	view := v.View()
	assert.Contains(t, view, "api.base_url")
	assert.Contains(t, view, domain.DefaultAPIBaseURL)
	assert.Contains(t, view, "user.role")
	assert.Contains(t, view, "(not set)")
	assert.Contains(t, view, ":memory:")
}

func TestView_LoadError(t *testing.T) {
	mock := &MockSettingsService{
		ValuesFunc: func() (map[string]string, error) { return nil, errors.New("boom") },
	}

	v := loaded(t, NewView(nil, mock))

	assert.EqualError(t, v.Err(), "boom")
	assert.Contains(t, v.View(), "Error: boom")
}

func TestView_EditAndSave(t *testing.T) {
	store := memory.NewConfigStore()
	v := loaded(t, NewView(nil, services.NewSettingsService(store)))
	v.SetDimensions(80, 24)

	// user.role is the fifth key
	for i := 0; i < 4; i++ {
		v.Update(runes("j"))
	}
	v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, v.Editing())

	for _, r := range "Admin" {
		v.Update(runes(string(r)))
	}
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, v.Editing())

	saved, ok := cmd().(messages.SettingsSaved)
	require.True(t, ok)
	require.NoError(t, saved.Err)
	assert.Equal(t, "user.role", saved.Key)
	assert.Equal(t, "Admin", store.GetString("user.role"))

	_, reload := v.Update(saved)
	require.NotNil(t, reload)
	v.Update(reload())
	assert.Equal(t, "Admin", v.Values()["user.role"])
	assert.Contains(t, v.View(), "Saved user.role")
}

func TestView_SaveError(t *testing.T) {
	v := loaded(t, NewView(nil, services.NewSettingsService(memory.NewConfigStore())))

	v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	for _, r := range "ftp://x" {
		v.Update(runes(string(r)))
	}
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	v.Update(cmd())

	assert.ErrorIs(t, v.Err(), domain.ErrInvalidInput)
}

func TestView_SaveWriteFailure(t *testing.T) {
	store := memory.NewConfigStoreWith(map[string]any{"display.currency": "$"})
	store.FailWrites(errors.New("read-only file system"))
	v := loaded(t, NewView(nil, services.NewSettingsService(store)))
	v.SetDimensions(80, 24)

	// display.currency is the sixth key
	for i := 0; i < 5; i++ {
		v.Update(runes("j"))
	}
	v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	v.Update(runes("€"))
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	v.Update(cmd())

	require.Error(t, v.Err())
	assert.Contains(t, v.View(), "read-only file system")
	assert.Equal(t, "$", store.GetString("display.currency"))
}

func TestView_EditCancel(t *testing.T) {
	mock := &MockSettingsService{
		SetFunc: func(_, _ string) error {
			t.Fatal("Set must not be called")
			return nil
		},
	}
	v := loaded(t, NewView(nil, mock))

	v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v.Update(runes("x"))
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
	assert.False(t, v.Editing())
}

func TestView_EscGoesBack(t *testing.T) {
	v := NewView(nil, &MockSettingsService{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	assert.Equal(t, messages.ViewChanged{View: messages.ViewCatalog}, cmd())
}

func TestView_Navigation_Bounded(t *testing.T) {
	v := NewView(nil, &MockSettingsService{})

	v.Update(runes("k"))
	assert.Equal(t, 0, v.selected)
	v.Update(runes("j"))
	v.Update(runes("j"))
	assert.Equal(t, 1, v.selected)
}
