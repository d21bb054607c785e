// Package category provides the category page view for the TUI.
//
// The page loads one category and its services. Anyone can browse and
// hand a service to the booking flow; users who can manage services also
// get the create form, edit sessions and delete confirmation.
package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/components/alert"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/components/confirm"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/components/serviceform"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/catalog-cli/internal/core/domain"
	"github.com/custodia-labs/catalog-cli/internal/core/ports/driving"
	"github.com/custodia-labs/catalog-cli/internal/logger"
)

// UI text.
const (
	NotFoundText      = "Service not found"
	LoadingText       = "Loading category..."
	BackText          = "← Back to Main Page"
	ServicesHeading   = "Available Services"
	DeletePrompt      = "Are you sure you want to delete this service?"
	SaveFailedText    = "Save failed"
	DeleteFailedText  = "Delete failed"
	addServiceLabel   = "Add Service"
	closeFormLabel    = "Close Form"
	serviceSavedText  = "Service saved"
	serviceDeleteText = "Service deleted"
)

// Focus identifies which part of the page receives keys.
type Focus int

const (
	FocusList Focus = iota
	FocusCreate
	FocusEdit
)

var errNoCategoryService = errors.New("category service not available")

// View is the category page.
type View struct {
	ctx        context.Context
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	categories driving.CategoryService
	store      *Store
	user       domain.User

	categoryID  string
	categorySeq uint64
	category    *domain.Category
	loading     bool

	list       *list.ServiceList
	createForm *serviceform.Form
	editForm   *serviceform.Form
	alert      *alert.Alert
	confirm    *confirm.Dialog
	statusBar  *status.Bar
	focus      Focus

	width  int
	height int
	ready  bool
}

// NewView creates a category page. currency prefixes displayed prices.
func NewView(
	s *styles.Styles,
	categories driving.CategoryService,
	services driving.ServiceCatalog,
	user domain.User,
	currency string,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	v := &View{
		ctx:        context.Background(),
		styles:     s,
		keymap:     km,
		categories: categories,
		store:      NewStore(context.Background(), services),
		user:       user,
		list:       list.NewServiceList(s, currency),
		createForm: serviceform.New(s, km, serviceform.ModeCreate, currency),
		editForm:   serviceform.New(s, km, serviceform.ModeEdit, currency),
		alert:      alert.New(s),
		confirm:    confirm.NewDialog(s, km),
		statusBar:  status.NewBar(s, km),
	}
	v.list.SetCanManage(v.canManage())
	v.statusBar.SetCanManage(v.canManage())
	return v
}

// SetContext sets the context for requests issued by the page.
func (v *View) SetContext(ctx context.Context) {
	if ctx == nil {
		return
	}
	v.ctx = ctx
	v.store.SetContext(ctx)
}

// Init initialises the view. Loading starts with SetCategory.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetCategory opens the page for id, discarding any state of the previous
// category, and returns the commands that load it.
func (v *View) SetCategory(id string) tea.Cmd {
	v.categoryID = id
	v.categorySeq++
	v.category = nil
	v.loading = true

	v.createForm.Close()
	v.editForm.Close()
	v.focus = FocusList
	v.list.SetServices(nil)
	v.list.SetSelected(0)
	v.statusBar.Clear()
	v.statusBar.SetState(status.StateLoading)
	v.statusBar.SetHints(status.HintsList)

	v.store.SetCategory(id)
	return tea.Batch(v.loadCategory(), v.store.Refresh())
}

func (v *View) loadCategory() tea.Cmd {
	ctx, categories, id, seq := v.ctx, v.categories, v.categoryID, v.categorySeq

	return func() tea.Msg {
		if categories == nil {
			return messages.CategoryLoaded{ID: id, Seq: seq, Err: errNoCategoryService}
		}
		cat, err := categories.Get(ctx, id)
		return messages.CategoryLoaded{ID: id, Seq: seq, Category: cat, Err: err}
	}
}

// Update handles messages for the category page.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.CategoryLoaded:
		v.applyCategory(msg)
		return v, nil

	case messages.ServicesLoaded:
		v.applyServices(msg)
		return v, nil

	case messages.ServiceCreated:
		return v.handleCreated(msg)

	case messages.ServiceUpdated:
		return v.handleUpdated(msg)

	case messages.ServiceDeleted:
		return v.handleDeleted(msg)

	case serviceform.Submitted:
		return v.handleSubmitted(msg)

	case serviceform.Closed:
		v.focusList()
		return v, nil

	case confirm.Resolved:
		return v.handleResolved(msg)

	case alert.Dismissed:
		return v, nil
	}

	// Cursor blink and other component messages go to the focused form
	if form := v.focusedForm(); form != nil {
		_, cmd := form.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) applyCategory(msg messages.CategoryLoaded) {
	if msg.ID != v.categoryID || msg.Seq != v.categorySeq {
		logger.Debug("dropping stale category %s (seq %d)", msg.ID, msg.Seq)
		return
	}
	v.loading = false
	if msg.Err != nil || msg.Category == nil || msg.Category.ID == "" {
		if msg.Err != nil {
			logger.Warn("load category %s: %v", msg.ID, msg.Err)
		}
		v.category = nil
		v.createForm.Close()
		v.editForm.Close()
		v.focus = FocusList
		return
	}
	v.category = msg.Category
}

func (v *View) applyServices(msg messages.ServicesLoaded) {
	if !v.store.Apply(msg) {
		logger.Debug("dropping stale services for %s (seq %d)", msg.CategoryID, msg.Seq)
		return
	}
	if msg.Err != nil {
		logger.Warn("list services for %s: %v", msg.CategoryID, msg.Err)
	}
	v.list.SetServices(v.store.Items())
	v.statusBar.SetServiceCount(len(v.store.Items()))
	if st := v.statusBar.State(); st == status.StateLoading {
		v.statusBar.SetState(status.StateReady)
	}
}

func (v *View) handleCreated(msg messages.ServiceCreated) (*View, tea.Cmd) {
	if msg.CategoryID != v.categoryID {
		return v, nil
	}
	if msg.Err != nil {
		v.createForm.Fail(SaveFailedText)
		v.setError(SaveFailedText)
		return v, nil
	}
	v.createForm.Close()
	if v.focus == FocusCreate {
		v.focusList()
	}
	v.setNote(serviceSavedText)
	return v, v.store.Refresh()
}

func (v *View) handleUpdated(msg messages.ServiceUpdated) (*View, tea.Cmd) {
	if msg.CategoryID != v.categoryID {
		return v, nil
	}
	if msg.Err != nil {
		v.editForm.Fail(SaveFailedText)
		v.setError(SaveFailedText)
		return v, nil
	}
	v.editForm.Close()
	if v.focus == FocusEdit {
		v.focusList()
	}
	v.setNote(serviceSavedText)
	return v, v.store.Refresh()
}

func (v *View) handleDeleted(msg messages.ServiceDeleted) (*View, tea.Cmd) {
	if msg.CategoryID != v.categoryID {
		return v, nil
	}
	if msg.Err != nil {
		v.setError(DeleteFailedText)
		return v, nil
	}
	v.setNote(serviceDeleteText)
	return v, v.store.Refresh()
}

func (v *View) handleSubmitted(msg serviceform.Submitted) (*View, tea.Cmd) {
	if !v.canManage() || v.category == nil {
		return v, nil
	}

	var (
		cmd  tea.Cmd
		err  error
		form *serviceform.Form
	)
	switch msg.Mode {
	case serviceform.ModeEdit:
		form = v.editForm
		cmd, err = v.store.Update(msg.Session)
	default:
		form = v.createForm
		cmd, err = v.store.Create(msg.Draft)
	}

	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			v.alert.Show(ve.Message())
		} else {
			v.alert.Show(err.Error())
		}
		return v, nil
	}

	form.SetSubmitting()
	v.statusBar.SetState(status.StateSaving)
	return v, cmd
}

func (v *View) handleResolved(msg confirm.Resolved) (*View, tea.Cmd) {
	if !msg.Accepted || msg.Token == "" || !v.canManage() {
		return v, nil
	}
	v.statusBar.SetState(status.StateSaving)
	return v, v.store.Delete(msg.Token)
}

// handleKeyMsg routes keys to the overlay, the focused form or the list.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	if v.category == nil {
		if keymap.Matches(keyStr, v.keymap.Back) {
			return v, v.goBack()
		}
		return v, nil
	}

	if v.alert.Active() {
		_, cmd := v.alert.Update(msg)
		return v, cmd
	}
	if v.confirm.Active() {
		_, cmd := v.confirm.Update(msg)
		return v, cmd
	}

	if form := v.focusedForm(); form != nil {
		if keymap.Matches(keyStr, v.keymap.FocusList) {
			v.focusList()
			return v, nil
		}
		_, cmd := form.Update(msg)
		return v, cmd
	}

	return v.handleListKey(keyStr, msg)
}

func (v *View) handleListKey(keyStr string, msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(keyStr, v.keymap.Up), keymap.Matches(keyStr, v.keymap.Down):
		v.list.Update(msg)
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Book):
		if svc := v.list.SelectedService(); svc != nil {
			service := *svc
			return v, func() tea.Msg {
				return messages.BookingRequested{Service: service}
			}
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Back):
		return v, v.goBack()

	case keymap.Matches(keyStr, v.keymap.Reload):
		v.statusBar.SetState(status.StateLoading)
		return v, v.store.Refresh()
	}

	if !v.canManage() {
		return v, nil
	}

	switch {
	case keymap.Matches(keyStr, v.keymap.Add):
		if v.createForm.IsOpen() {
			v.createForm.Hide()
			return v, nil
		}
		v.createForm.Show()
		return v, v.focusForm(FocusCreate)

	case keymap.Matches(keyStr, v.keymap.Edit):
		if svc := v.list.SelectedService(); svc != nil {
			v.editForm.OpenSession(domain.CheckOut(*svc))
			return v, v.focusForm(FocusEdit)
		}

	case keymap.Matches(keyStr, v.keymap.Delete):
		if svc := v.list.SelectedService(); svc != nil {
			v.confirm.Open(DeletePrompt, svc.ID)
		}

	case keymap.Matches(keyStr, v.keymap.FocusForm):
		switch {
		case v.editForm.IsOpen():
			return v, v.focusForm(FocusEdit)
		case v.createForm.IsOpen():
			return v, v.focusForm(FocusCreate)
		}
	}
	return v, nil
}

func (v *View) goBack() tea.Cmd {
	return func() tea.Msg {
		return messages.ViewChanged{View: messages.ViewCatalog}
	}
}

func (v *View) focusForm(f Focus) tea.Cmd {
	v.createForm.Blur()
	v.editForm.Blur()
	v.focus = f
	v.statusBar.SetHints(status.HintsForm)
	if f == FocusEdit {
		return v.editForm.Focus()
	}
	return v.createForm.Focus()
}

func (v *View) focusList() {
	v.createForm.Blur()
	v.editForm.Blur()
	v.focus = FocusList
	v.statusBar.SetHints(status.HintsList)
}

func (v *View) focusedForm() *serviceform.Form {
	switch v.focus {
	case FocusCreate:
		if v.createForm.IsOpen() {
			return v.createForm
		}
	case FocusEdit:
		if v.editForm.IsOpen() {
			return v.editForm
		}
	}
	return nil
}

func (v *View) setError(message string) {
	v.statusBar.SetState(status.StateError)
	v.statusBar.SetMessage(message)
}

func (v *View) setNote(message string) {
	v.statusBar.SetState(status.StateLoading)
	v.statusBar.SetMessage(message)
}

func (v *View) canManage() bool {
	return v.user.CanManageServices()
}

// View renders the category page.
func (v *View) View() string {
	if v.category == nil {
		if v.loading {
			return v.styles.Muted.Render(LoadingText)
		}
		return v.styles.Title.Render(NotFoundText) + "\n\n" +
			v.styles.Help.Render("[esc] "+BackText)
	}

	if v.alert.Active() {
		return v.overlay(v.alert.View())
	}
	if v.confirm.Active() {
		return v.overlay(v.confirm.View())
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render(v.category.Name))
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[esc] " + BackText))
	b.WriteString("\n")
	if v.categories != nil {
		if url := v.categories.ImageURL(v.category); url != "" {
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Image: %s", url)))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(v.styles.Subtitle.Render(ServicesHeading))
	b.WriteString("\n\n")
	b.WriteString(v.list.View())
	b.WriteString("\n")

	if v.canManage() {
		label := addServiceLabel
		if v.createForm.IsOpen() {
			label = closeFormLabel
		}
		b.WriteString("\n")
		b.WriteString(v.styles.Button.Render(label) + " " + v.styles.Help.Render("[a]"))
		b.WriteString("\n")
		if form := v.createForm.View(); form != "" {
			b.WriteString(form)
			b.WriteString("\n")
		}
		if form := v.editForm.View(); form != "" {
			b.WriteString(form)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.statusBar.View())

	return b.String()
}

// overlay centres a modal over the page area.
func (v *View) overlay(content string) string {
	if !v.ready || v.width == 0 || v.height == 0 {
		return content
	}
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, content)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.list.SetDimensions(width, height-14)
	v.createForm.SetWidth(width - 4)
	v.editForm.SetWidth(width - 4)
	v.statusBar.SetWidth(width)
}

// CapturesInput reports whether keys are going to a text field, so
// global shortcuts such as quit should not fire.
func (v *View) CapturesInput() bool {
	return v.focusedForm() != nil || v.alert.Active() || v.confirm.Active()
}

// CategoryID returns the id the page was opened for.
func (v *View) CategoryID() string {
	return v.categoryID
}

// Category returns the loaded category, or nil if absent.
func (v *View) Category() *domain.Category {
	return v.category
}

// NotFound reports whether loading finished without a category.
func (v *View) NotFound() bool {
	return v.category == nil && !v.loading
}

// Loading reports whether the category is still being fetched.
func (v *View) Loading() bool {
	return v.loading
}

// Services returns the displayed services.
func (v *View) Services() []domain.Service {
	return v.store.Items()
}

// Store returns the page's service store.
func (v *View) Store() *Store {
	return v.store
}

// Focus returns which part of the page has focus.
func (v *View) Focus() Focus {
	return v.focus
}

// CreateForm returns the creation form.
func (v *View) CreateForm() *serviceform.Form {
	return v.createForm
}

// EditForm returns the edit form.
func (v *View) EditForm() *serviceform.Form {
	return v.editForm
}

// Alert returns the blocking alert.
func (v *View) Alert() *alert.Alert {
	return v.alert
}

// Dialog returns the delete confirmation dialog.
func (v *View) Dialog() *confirm.Dialog {
	return v.confirm
}

// StatusBar returns the page status bar.
func (v *View) StatusBar() *status.Bar {
	return v.statusBar
}
