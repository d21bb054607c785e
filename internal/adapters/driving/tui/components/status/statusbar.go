// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/styles"
)

// State represents the current page state for display.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateSaving  State = "saving"
	StateError   State = "error"
)

// Hints selects which keybinding hints the bar shows.
type Hints int

const (
	// HintsList shows service list bindings.
	HintsList Hints = iota
	// HintsForm shows form bindings.
	HintsForm
	// HintsShort shows only quit and help.
	HintsShort
)

// Bar displays page status and keybinding hints.
type Bar struct {
	styles       *styles.Styles
	keymap       *keymap.KeyMap
	state        State
	hints        Hints
	canManage    bool
	message      string
	serviceCount int
	width        int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		hints:  HintsList,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the state or message.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Loading...")
	case StateSaving:
		return s.styles.Muted.Render("Saving...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(s.message)
		}
		return s.styles.Error.Render("Error")
	case StateReady:
		if s.message != "" {
			return s.styles.Success.Render(s.message)
		}
	}
	switch s.serviceCount {
	case 0:
		return s.styles.Muted.Render("Ready")
	case 1:
		return s.styles.Normal.Render("1 service")
	default:
		return s.styles.Normal.Render(fmt.Sprintf("%d services", s.serviceCount))
	}
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch s.hints {
	case HintsForm:
		bindings = s.keymap.FormHelp()
	case HintsShort:
		bindings = s.keymap.ShortHelp()
	default:
		bindings = s.keymap.ListHelp(s.canManage)
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetHints selects the keybinding hints.
func (s *Bar) SetHints(h Hints) {
	s.hints = h
}

// SetCanManage includes the add, edit and delete hints.
func (s *Bar) SetCanManage(canManage bool) {
	s.canManage = canManage
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetServiceCount sets the number of listed services.
func (s *Bar) SetServiceCount(count int) {
	s.serviceCount = count
}

// ServiceCount returns the listed service count.
func (s *Bar) ServiceCount() int {
	return s.serviceCount
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.serviceCount = 0
}
