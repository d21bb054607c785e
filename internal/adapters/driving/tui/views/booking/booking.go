// Package booking provides the booking entry view for the TUI.
//
// Booking itself is handled elsewhere; this view only receives the
// selected service as transfer state and shows what is being booked.
package booking

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/catalog-cli/internal/core/domain"
	"github.com/custodia-labs/catalog-cli/internal/display"
)

// View shows the service handed over for booking.
type View struct {
	styles   *styles.Styles
	currency string
	service  *domain.Service
	width    int
	height   int
}

// NewView creates a booking view.
func NewView(s *styles.Styles, currency string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return &View{styles: s, currency: currency}
}

// SetService sets the service being booked.
func (v *View) SetService(svc domain.Service) {
	v.service = &svc
}

// Service returns the service being booked, or nil.
func (v *View) Service() *domain.Service {
	return v.service
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the booking view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "b":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewCategory}
			}
		}
	}
	return v, nil
}

// View renders the booking view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Make an appointment"))
	b.WriteString("\n\n")

	if v.service == nil {
		b.WriteString(v.styles.Muted.Render("No service selected."))
	} else {
		b.WriteString(v.styles.Subtitle.Render(v.service.Name))
		b.WriteString("\n")
		b.WriteString("Price: " + v.styles.Price.Render(display.Price(v.service.Price, v.currency)))
		b.WriteString("\n")
		b.WriteString("Time: " + display.Duration(v.service.Time))
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[esc] Back to category"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
