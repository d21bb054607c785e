// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/catalog-cli/internal/core/domain"
	"github.com/custodia-labs/catalog-cli/internal/display"
)

// EmptyMessage is shown when a category has no services.
const EmptyMessage = "No services found for this category."

// ServiceList displays a category's services in a navigable list.
type ServiceList struct {
	services  []domain.Service
	selected  int
	styles    *styles.Styles
	currency  string
	canManage bool
	width     int
	height    int
}

// NewServiceList creates a new service list component.
func NewServiceList(s *styles.Styles, currency string) *ServiceList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	return &ServiceList{
		styles:   s,
		currency: currency,
		width:    80,
		height:   20,
	}
}

// Init initialises the service list.
func (l *ServiceList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *ServiceList) Update(msg tea.Msg) (*ServiceList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the service list.
func (l *ServiceList) View() string {
	if len(l.services) == 0 {
		return l.styles.Muted.Render(EmptyMessage)
	}

	// Each service takes two lines
	visible := (l.height - 2) / 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.services) {
		end = len(l.services)
	}

	lines := make([]string, 0, (end-start)*2)
	for i := start; i < end; i++ {
		lines = append(lines, l.renderService(i, &l.services[i]))
	}
	if end < len(l.services) || start > 0 {
		lines = append(lines, l.styles.Muted.Render(fmt.Sprintf("  %d of %d", l.selected+1, len(l.services))))
	}
	return strings.Join(lines, "\n")
}

// renderService formats a single service with its price and time.
func (l *ServiceList) renderService(index int, svc *domain.Service) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	maxName := l.width - 30
	if maxName < 10 {
		maxName = 10
	}
	name := display.Truncate(svc.Name, maxName)

	var nameLine string
	if index == l.selected {
		nameLine = l.styles.Selected.Render(indicator + name)
	} else {
		nameLine = l.styles.Normal.Render(indicator + name)
	}

	details := "    Price: " + l.styles.Price.Render(display.Price(svc.Price, l.currency)) +
		l.styles.Muted.Render("  Time: "+display.Minutes(svc.Time))

	if index == l.selected {
		actions := "[enter] Make an appointment"
		if l.canManage {
			actions += "  [e] Edit  [d] Delete"
		}
		details += "  " + l.styles.Help.Render(actions)
	}

	return nameLine + "\n" + details
}

// SetServices replaces the list, keeping the selection in range.
func (l *ServiceList) SetServices(services []domain.Service) {
	l.services = services
	if l.selected >= len(services) {
		l.selected = len(services) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// Services returns the displayed services.
func (l *ServiceList) Services() []domain.Service {
	return l.services
}

// SetCanManage toggles the edit and delete hints.
func (l *ServiceList) SetCanManage(canManage bool) {
	l.canManage = canManage
}

// Selected returns the index of the selected service.
func (l *ServiceList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *ServiceList) SetSelected(index int) {
	if index >= 0 && index < len(l.services) {
		l.selected = index
	}
}

// SelectedService returns the currently selected service, or nil if none.
func (l *ServiceList) SelectedService() *domain.Service {
	if len(l.services) == 0 || l.selected < 0 || l.selected >= len(l.services) {
		return nil
	}
	svc := l.services[l.selected]
	return &svc
}

// MoveUp moves selection up.
func (l *ServiceList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *ServiceList) MoveDown() {
	if l.selected < len(l.services)-1 {
		l.selected++
	}
}

// SetDimensions sets the list dimensions.
func (l *ServiceList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}
