// Package confirm provides a yes/no confirmation dialog.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/styles"
)

// Resolved is emitted once the user answers the dialog.
type Resolved struct {
	Accepted bool
	// Token is the value passed to Open, typically the id being acted on.
	Token string
}

// Dialog asks a single yes/no question.
type Dialog struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	prompt string
	token  string
	active bool
}

// NewDialog creates an inactive dialog.
func NewDialog(s *styles.Styles, km *keymap.KeyMap) *Dialog {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Dialog{styles: s, keymap: km}
}

// Open activates the dialog.
func (d *Dialog) Open(prompt, token string) {
	d.prompt = prompt
	d.token = token
	d.active = true
}

// Active reports whether the dialog is awaiting an answer.
func (d *Dialog) Active() bool {
	return d.active
}

// Prompt returns the question being asked.
func (d *Dialog) Prompt() string {
	return d.prompt
}

// Update resolves the dialog on a confirm or decline key.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !d.active || !ok {
		return d, nil
	}

	keyStr := keyMsg.String()
	switch {
	case keymap.Matches(keyStr, d.keymap.Confirm):
		return d, d.resolve(true)
	case keymap.Matches(keyStr, d.keymap.Decline):
		return d, d.resolve(false)
	}
	return d, nil
}

// View renders the dialog, or nothing when inactive.
func (d *Dialog) View() string {
	if !d.active {
		return ""
	}
	return d.styles.Dialog.Render(
		d.prompt + "\n\n" + d.styles.Help.Render("[y] Yes   [n] No"),
	)
}

func (d *Dialog) resolve(accepted bool) tea.Cmd {
	resolved := Resolved{Accepted: accepted, Token: d.token}
	d.active = false
	d.token = ""
	return func() tea.Msg {
		return resolved
	}
}
