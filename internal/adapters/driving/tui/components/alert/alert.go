// Package alert provides a blocking notice that must be dismissed.
package alert

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/styles"
)

// Dismissed is emitted when the alert is closed.
type Dismissed struct{}

// Alert shows a message until enter or esc is pressed.
type Alert struct {
	styles  *styles.Styles
	message string
	active  bool
}

// New creates an inactive alert.
func New(s *styles.Styles) *Alert {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Alert{styles: s}
}

// Show activates the alert with message.
func (a *Alert) Show(message string) {
	a.message = message
	a.active = true
}

// Active reports whether the alert is shown.
func (a *Alert) Active() bool {
	return a.active
}

// Message returns the shown message.
func (a *Alert) Message() string {
	return a.message
}

// Update dismisses the alert on enter or esc. Other keys are swallowed.
func (a *Alert) Update(msg tea.Msg) (*Alert, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !a.active || !ok {
		return a, nil
	}
	switch keyMsg.String() {
	case "enter", "esc":
		a.active = false
		return a, func() tea.Msg { return Dismissed{} }
	}
	return a, nil
}

// View renders the alert, or nothing when inactive.
func (a *Alert) View() string {
	if !a.active {
		return ""
	}
	return a.styles.Alert.Render(a.message + "\n\n" + a.styles.Help.Render("[enter] OK"))
}
