package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/components/alert"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/components/confirm"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/components/serviceform"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/views/booking"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/views/catalog"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/views/category"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/catalog-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is passed to every request the views issue.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	catalogView  *catalog.View
	categoryView *category.View
	bookingView  *booking.View
	settingsView *settings.View

	// initialCategory is opened on start when set.
	initialCategory string

	// currentView tracks which view is active.
	currentView messages.ViewType

	// helpReturn is the view help returns to.
	helpReturn messages.ViewType

	// err holds the last error reported to the app.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application for user. Prices are shown with currency.
func NewApp(ports *Ports, user domain.User, currency string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       keymap.DefaultKeyMap(),
		catalogView:  catalog.NewView(s),
		categoryView: category.NewView(s, ports.Category, ports.Services, user, currency),
		bookingView:  booking.NewView(s, currency),
		settingsView: settings.NewView(s, ports.Settings),
		currentView:  messages.ViewCatalog,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
		a.categoryView.SetContext(ctx)
	}
	return a
}

// WithCategory opens category id when the program starts.
func (a *App) WithCategory(id string) *App {
	a.initialCategory = strings.TrimSpace(id)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("catalog"),
	}
	if id := a.initialCategory; id != "" {
		cmds = append(cmds, func() tea.Msg {
			return messages.CategoryRequested{ID: id}
		})
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message router
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.CategoryRequested:
		a.currentView = messages.ViewCategory
		return a, a.categoryView.SetCategory(msg.ID)

	case messages.CategoryLoaded:
		a.categoryView, cmd = a.categoryView.Update(msg)
		if c := a.categoryView.Category(); c != nil {
			a.catalogView.Remember(*c)
		}
		return a, cmd

	// Category page results are routed there regardless of the active
	// view; the page drops those that are no longer current.
	case messages.ServicesLoaded, messages.ServiceCreated, messages.ServiceUpdated,
		messages.ServiceDeleted, serviceform.Submitted, serviceform.Closed,
		confirm.Resolved, alert.Dismissed:
		a.categoryView, cmd = a.categoryView.Update(msg)
		return a, cmd

	case messages.BookingRequested:
		a.bookingView.SetService(msg.Service)
		a.currentView = messages.ViewBooking
		return a, nil

	case messages.ViewChanged:
		return a, a.switchView(msg.View)

	case messages.SettingsLoaded, messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.forward(msg)
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	// Global quit with ctrl+c
	if keyStr == "ctrl+c" {
		return a, tea.Quit
	}

	if !a.capturesInput() {
		switch {
		case keyStr == "q":
			return a, tea.Quit
		case keymap.Matches(keyStr, a.keymap.Help) && a.currentView != messages.ViewHelp:
			return a, a.switchView(messages.ViewHelp)
		}
	}

	if a.currentView == messages.ViewHelp {
		if msg.Type == tea.KeyEsc || keyStr == "?" {
			a.currentView = a.helpReturn
		}
		return a, nil
	}

	return a, a.forward(msg)
}

// capturesInput reports whether the active view is taking text input.
func (a *App) capturesInput() bool {
	switch a.currentView {
	case messages.ViewCatalog:
		return a.catalogView.Prompting()
	case messages.ViewCategory:
		return a.categoryView.CapturesInput()
	case messages.ViewSettings:
		return a.settingsView.Editing()
	}
	return false
}

func (a *App) switchView(view messages.ViewType) tea.Cmd {
	if view == messages.ViewHelp && a.currentView != messages.ViewHelp {
		a.helpReturn = a.currentView
	}
	a.currentView = view

	if view == messages.ViewSettings {
		return a.settingsView.Init()
	}
	return nil
}

// forward passes msg to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewCatalog:
		a.catalogView, cmd = a.catalogView.Update(msg)
	case messages.ViewCategory:
		a.categoryView, cmd = a.categoryView.Update(msg)
	case messages.ViewBooking:
		a.bookingView, cmd = a.bookingView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		// Help is static
	}
	return cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewCategory:
		return a.categoryView.View()
	case messages.ViewBooking:
		return a.bookingView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.catalogView.View()
	}
}

// viewHelp renders the keybinding reference.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n")

	titles := []string{"Services", "Manage (Admin)", "Forms", "General"}
	for i, group := range a.keymap.FullHelp() {
		b.WriteString("\n")
		if i < len(titles) {
			b.WriteString(a.styles.Subtitle.Render(titles[i]))
			b.WriteString("\n")
		}
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-12s %s\n", h.Key, h.Desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("[esc] back"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// CategoryView returns the category page.
func (a *App) CategoryView() *category.View {
	return a.categoryView
}

// BookingView returns the booking view.
func (a *App) BookingView() *booking.View {
	return a.bookingView
}

// CatalogView returns the catalog root view.
func (a *App) CatalogView() *catalog.View {
	return a.catalogView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.catalogView.SetDimensions(width, height)
	a.categoryView.SetDimensions(width, height)
	a.bookingView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
