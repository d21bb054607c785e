// Package catalog provides the catalog root view: the entry point that
// opens category pages and the place "back" returns to.
package catalog

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/catalog-cli/internal/core/domain"
)

// maxRecent bounds the recently opened categories list.
const maxRecent = 5

// Item represents a single menu option.
type Item struct {
	Label string
	View  messages.ViewType
	// CategoryID opens that category directly.
	CategoryID string
	// Prompt asks for a category id before opening.
	Prompt bool
	// Quit exits the app.
	Quit bool
}

// View is the catalog root view.
type View struct {
	styles    *styles.Styles
	recent    []domain.Category
	items     []Item
	selected  int
	prompting bool
	prompt    *input.Field
	width     int
	height    int
	ready     bool
}

// NewView creates a new catalog root view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	prompt := input.NewField(s, "Category", "Category ID")
	prompt.SetCharLimit(64)

	v := &View{
		styles: s,
		prompt: prompt,
		width:  80,
		height: 24,
	}
	v.rebuildItems()
	return v
}

func (v *View) rebuildItems() {
	items := make([]Item, 0, len(v.recent)+4)
	for _, c := range v.recent {
		items = append(items, Item{Label: fmt.Sprintf("%s (%s)", c.Name, c.ID), CategoryID: c.ID})
	}
	items = append(items,
		Item{Label: "Open Category", Prompt: true},
		Item{Label: "Settings", View: messages.ViewSettings},
		Item{Label: "Help", View: messages.ViewHelp},
		Item{Label: "Quit", Quit: true},
	)
	v.items = items
	if v.selected >= len(items) {
		v.selected = len(items) - 1
	}
}

// Remember records a category that was opened, most recent first.
func (v *View) Remember(c domain.Category) {
	if c.ID == "" {
		return
	}
	recent := []domain.Category{c}
	for _, r := range v.recent {
		if r.ID != c.ID && len(recent) < maxRecent {
			recent = append(recent, r)
		}
	}
	v.recent = recent
	v.rebuildItems()
}

// Recent returns the recently opened categories.
func (v *View) Recent() []domain.Category {
	return v.recent
}

// Init initialises the catalog view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the catalog view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.prompting {
			return v.handlePromptKey(msg)
		}
		return v.handleMenuKey(msg)
	}

	if v.prompting {
		var cmd tea.Cmd
		v.prompt, cmd = v.prompt.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) handleMenuKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.items)-1 {
			v.selected++
		}
	case "o", "/":
		return v, v.startPrompt()
	case "enter":
		item := v.items[v.selected]
		switch {
		case item.Quit:
			return v, tea.Quit
		case item.Prompt:
			return v, v.startPrompt()
		case item.CategoryID != "":
			return v, open(item.CategoryID)
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: item.View}
		}
	case "q":
		return v, tea.Quit
	}
	return v, nil
}

func (v *View) handlePromptKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.stopPrompt()
		return v, nil
	case "enter":
		id := strings.TrimSpace(v.prompt.Value())
		if id == "" {
			return v, nil
		}
		v.stopPrompt()
		return v, open(id)
	}

	var cmd tea.Cmd
	v.prompt, cmd = v.prompt.Update(msg)
	return v, cmd
}

func (v *View) startPrompt() tea.Cmd {
	v.prompting = true
	v.prompt.Reset()
	return v.prompt.Focus()
}

func (v *View) stopPrompt() {
	v.prompting = false
	v.prompt.Blur()
	v.prompt.Reset()
}

func open(id string) tea.Cmd {
	return func() tea.Msg {
		return messages.CategoryRequested{ID: id}
	}
}

// View renders the catalog view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Catalog"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Browse a category and book a service"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		style := v.styles.Normal
		if i == v.selected {
			cursor = "> "
			style = v.styles.Selected
		}
		b.WriteString(cursor + style.Render(item.Label))
		b.WriteString("\n")
	}

	if v.prompting {
		b.WriteString("\n")
		b.WriteString(v.prompt.View())
		b.WriteString("\n")
		b.WriteString(v.styles.Help.Render("[Enter] Open  [Esc] Cancel"))
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [o] Open by ID  [q] Quit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.prompt.SetWidth(width - 4)
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Items returns the menu items.
func (v *View) Items() []Item {
	return v.items
}

// Prompting reports whether the category id prompt is open.
func (v *View) Prompting() bool {
	return v.prompting
}
