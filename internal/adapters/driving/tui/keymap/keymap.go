// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Book starts the booking flow for the selected service.
	Book key.Binding

	// Add toggles the creation form.
	Add key.Binding

	// Edit opens an edit session for the selected service.
	Edit key.Binding

	// Delete asks to delete the selected service.
	Delete key.Binding

	// Reload refreshes the service list.
	Reload key.Binding

	// FocusForm moves focus from the list to an open form.
	FocusForm key.Binding

	// FocusList moves focus from a form back to the list.
	FocusList key.Binding

	// NextField moves to the next form field.
	NextField key.Binding

	// PrevField moves to the previous form field.
	PrevField key.Binding

	// NextOption cycles a choice field forward.
	NextOption key.Binding

	// PrevOption cycles a choice field backward.
	PrevOption key.Binding

	// Submit sends the form.
	Submit key.Binding

	// Cancel closes a form or dialog without saving.
	Cancel key.Binding

	// Confirm accepts a dialog.
	Confirm key.Binding

	// Decline rejects a dialog.
	Decline key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Book: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "make an appointment"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add service"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		FocusForm: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "focus form"),
		),
		FocusList: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "focus list"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		NextOption: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "longer"),
		),
		PrevOption: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "shorter"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "yes"),
		),
		Decline: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "no"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

// ListHelp returns keybindings for the service list.
// Mutating bindings are only listed when canManage is set.
func (k *KeyMap) ListHelp(canManage bool) []key.Binding {
	bindings := []key.Binding{k.Up, k.Book}
	if canManage {
		bindings = append(bindings, k.Add, k.Edit, k.Delete)
	}
	return append(bindings, k.Back)
}

// FormHelp returns keybindings for an open form.
func (k *KeyMap) FormHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevOption, k.NextOption, k.Submit, k.Cancel, k.FocusList}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Book, k.Back},
		{k.Add, k.Edit, k.Delete, k.Reload},
		{k.NextField, k.PrevField, k.NextOption, k.PrevOption, k.Submit, k.Cancel},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
