// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/catalog-cli/internal/core/ports/driving"
)

var errNoSettings = errors.New("settings service not available")

// valuesLoadedMsg carries the text value of every key.
type valuesLoadedMsg struct {
	values map[string]string
	err    error
}

// View lists settings and edits one at a time.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	keys     []string
	values   map[string]string
	selected int
	editing  bool
	field    *input.Field
	err      error
	notice   string

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	var keys []string
	if settingsService != nil {
		keys = settingsService.Keys()
	}

	return &View{
		styles:          s,
		settingsService: settingsService,
		keys:            keys,
		values:          map[string]string{},
		field:           input.NewField(s, "Value", ""),
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadValues()
}

func (v *View) loadValues() tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return valuesLoadedMsg{err: errNoSettings}
		}
		values, err := svc.Values()
		return valuesLoadedMsg{values: values, err: err}
	}
}

func (v *View) save(key, value string) tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsSaved{Key: key, Err: errNoSettings}
		}
		return messages.SettingsSaved{Key: key, Err: svc.Set(key, value)}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case valuesLoadedMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.values = msg.values
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			v.notice = ""
			return v, nil
		}
		v.err = nil
		v.notice = fmt.Sprintf("Saved %s. Restart to apply.", msg.Key)
		return v, v.loadValues()

	case tea.KeyMsg:
		if v.editing {
			return v.handleEditKey(msg)
		}
		return v.handleListKey(msg)
	}

	if v.editing {
		var cmd tea.Cmd
		v.field, cmd = v.field.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) handleListKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.keys)-1 {
			v.selected++
		}
	case "enter":
		if v.selected < len(v.keys) {
			v.editing = true
			v.err = nil
			v.notice = ""
			v.field.SetValue(v.values[v.keys[v.selected]])
			return v, v.field.Focus()
		}
	case "r":
		return v, v.loadValues()
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewCatalog}
		}
	}
	return v, nil
}

func (v *View) handleEditKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.stopEditing()
		return v, nil
	case "enter":
		key, value := v.keys[v.selected], v.field.Value()
		v.stopEditing()
		return v, v.save(key, value)
	}
	var cmd tea.Cmd
	v.field, cmd = v.field.Update(msg)
	return v, cmd
}

func (v *View) stopEditing() {
	v.editing = false
	v.field.Blur()
	v.field.Reset()
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n")
	if v.settingsService != nil && v.settingsService.Path() != "" {
		b.WriteString(v.styles.Muted.Render(v.settingsService.Path()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(v.keys) == 0 {
		b.WriteString(v.styles.Muted.Render("No settings available."))
		b.WriteString("\n")
	}

	for i, key := range v.keys {
		cursor := "  "
		label := v.styles.Normal.Width(20).Render(key)
		if i == v.selected {
			cursor = "> "
			label = v.styles.Selected.Width(20).Render(key)
		}
		value := v.values[key]
		if value == "" {
			value = v.styles.Muted.Render("(not set)")
		}
		b.WriteString(cursor + label + " " + value + "\n")
	}

	if v.editing {
		b.WriteString("\n")
		b.WriteString(v.field.View())
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n")
	} else if v.notice != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Success.Render(v.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.editing {
		b.WriteString(v.styles.Help.Render("[Enter] Save  [Esc] Cancel"))
	} else {
		b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Edit  [r] Reload  [Esc] Back"))
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.field.SetWidth(width - 4)
	v.ready = true
}

// Editing reports whether a value is being edited. Global shortcuts
// should not fire while it is.
func (v *View) Editing() bool {
	return v.editing
}

// Values returns the loaded values.
func (v *View) Values() map[string]string {
	return v.values
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
