// Package serviceform provides the create and edit forms for a service.
//
// A Form holds its values as a domain.ServiceDraft and never validates on
// its own; the owner validates on Submitted and reports back with
// SetSubmitting, Fail or Close.
package serviceform

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/catalog-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/catalog-cli/internal/core/domain"
)

// Mode selects what a Form submits.
type Mode int

const (
	// ModeCreate submits a new service draft.
	ModeCreate Mode = iota
	// ModeEdit submits an edit session.
	ModeEdit
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// State is the lifecycle state of a Form.
type State int

const (
	// StateClosed means the form is not shown.
	StateClosed State = iota
	// StateEditing means the form is shown and accepts input.
	StateEditing
	// StateSubmitting means a request is in flight; input is ignored.
	StateSubmitting
)

// Field identifies a form field.
type Field int

const (
	FieldName Field = iota
	FieldPrice
	FieldTime
	fieldCount
)

// Submitted is emitted when the user submits the form.
type Submitted struct {
	Mode    Mode
	Draft   domain.ServiceDraft
	Session domain.EditSession
}

// Closed is emitted when the user dismisses the form.
type Closed struct {
	Mode Mode
}

// Form edits a service draft or an edit session.
type Form struct {
	mode    Mode
	state   State
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	name    *input.Field
	price   *input.Field
	time    int
	focus   Field
	focused bool
	session domain.EditSession
	failure string
	width   int
}

// New creates a closed form. currency is shown in the price placeholder.
func New(s *styles.Styles, km *keymap.KeyMap, mode Mode, currency string) *Form {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	price := input.NewField(s, "Price", "Price ("+currency+")")
	price.SetCharLimit(16)

	return &Form{
		mode:   mode,
		state:  StateClosed,
		styles: s,
		keymap: km,
		name:   input.NewField(s, "Name", "Service Name"),
		price:  price,
		time:   domain.DefaultDuration,
		width:  60,
	}
}

// Mode returns the form mode.
func (f *Form) Mode() Mode {
	return f.mode
}

// State returns the lifecycle state.
func (f *Form) State() State {
	return f.state
}

// IsOpen reports whether the form is shown.
func (f *Form) IsOpen() bool {
	return f.state != StateClosed
}

// Submitting reports whether a request is in flight.
func (f *Form) Submitting() bool {
	return f.state == StateSubmitting
}

// Open shows the form holding draft.
func (f *Form) Open(draft domain.ServiceDraft) {
	f.setDraft(draft)
	f.focus = FieldName
	f.failure = ""
	f.state = StateEditing
}

// OpenSession shows the form for an edit session.
func (f *Form) OpenSession(session domain.EditSession) {
	f.session = session
	f.Open(session.Draft)
}

// Show reopens the form keeping whatever values it holds.
func (f *Form) Show() {
	if f.state == StateClosed {
		f.state = StateEditing
	}
}

// Hide closes the form but keeps its values for the next Show.
func (f *Form) Hide() {
	f.Blur()
	f.state = StateClosed
}

// Close hides the form and resets it to an empty draft.
func (f *Form) Close() {
	f.Hide()
	f.setDraft(domain.NewServiceDraft())
	f.session = domain.EditSession{}
	f.focus = FieldName
	f.failure = ""
}

// SetSubmitting marks a request in flight.
func (f *Form) SetSubmitting() {
	if f.state == StateEditing {
		f.state = StateSubmitting
		f.failure = ""
	}
}

// Fail returns a submitting form to editing with its values intact.
func (f *Form) Fail(message string) {
	if f.state == StateSubmitting {
		f.state = StateEditing
	}
	f.failure = message
}

// Failure returns the last failure note.
func (f *Form) Failure() string {
	return f.failure
}

// Draft returns the current values.
func (f *Form) Draft() domain.ServiceDraft {
	return domain.NewServiceDraft().
		WithName(f.name.Value()).
		WithPrice(f.price.Value()).
		WithTime(f.time)
}

// Session returns the edit session with the current values.
func (f *Form) Session() domain.EditSession {
	return f.session.WithDraft(f.Draft())
}

// FocusedField returns the field that receives input.
func (f *Form) FocusedField() Field {
	return f.focus
}

// Focus gives the form keyboard focus.
func (f *Form) Focus() tea.Cmd {
	f.focused = true
	return f.focusField(f.focus)
}

// Blur removes keyboard focus.
func (f *Form) Blur() {
	f.focused = false
	f.name.Blur()
	f.price.Blur()
}

// Focused reports whether the form has keyboard focus.
func (f *Form) Focused() bool {
	return f.focused
}

// SetWidth sets the form width.
func (f *Form) SetWidth(width int) {
	f.width = width
	f.name.SetWidth(width - 4)
	f.price.SetWidth(width - 4)
}

// Init initialises the form.
func (f *Form) Init() tea.Cmd {
	return nil
}

// Update handles key input while the form is focused and editing.
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if !f.focused || f.state != StateEditing {
		return f, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, f.updateField(msg)
	}

	keyStr := keyMsg.String()
	switch {
	case keymap.Matches(keyStr, f.keymap.Submit):
		return f, f.submit()
	case keymap.Matches(keyStr, f.keymap.Cancel):
		return f, f.cancel()
	case keymap.Matches(keyStr, f.keymap.NextField):
		return f, f.focusField((f.focus + 1) % fieldCount)
	case keymap.Matches(keyStr, f.keymap.PrevField):
		return f, f.focusField((f.focus + fieldCount - 1) % fieldCount)
	}

	if f.focus == FieldTime {
		switch {
		case keymap.Matches(keyStr, f.keymap.NextOption):
			f.time = domain.NextDuration(f.time)
		case keymap.Matches(keyStr, f.keymap.PrevOption):
			f.time = domain.PrevDuration(f.time)
		}
		return f, nil
	}

	return f, f.updateField(msg)
}

// View renders the form, or nothing when closed.
func (f *Form) View() string {
	if f.state == StateClosed {
		return ""
	}

	var b strings.Builder
	if f.mode == ModeEdit {
		b.WriteString(f.styles.Subtitle.Render("Edit Service"))
		b.WriteString("\n")
	}
	b.WriteString(f.name.View())
	b.WriteString("\n")
	b.WriteString(f.price.View())
	b.WriteString("\n")
	b.WriteString(f.renderTime())
	b.WriteString("\n\n")
	b.WriteString(f.renderButtons())

	if f.failure != "" {
		b.WriteString("\n")
		b.WriteString(f.styles.Error.Render(f.failure))
	}

	box := f.styles.Form
	if f.focused {
		box = box.BorderForeground(f.styles.Theme().Primary)
	}
	return box.Width(f.width).Render(b.String())
}

func (f *Form) renderTime() string {
	label := f.styles.Normal.Width(12).Render("Time")
	value := "< " + domain.DurationLabel(f.time) + " >"
	if f.focused && f.focus == FieldTime {
		value = f.styles.Selected.Render(value)
	} else {
		value = f.styles.Normal.Render(value)
	}
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, "  ", value)
}

func (f *Form) renderButtons() string {
	if f.state == StateSubmitting {
		return f.styles.Muted.Render("Saving...")
	}
	if f.mode == ModeEdit {
		return f.styles.Button.Render("Update Service") + "  " +
			f.styles.Help.Render("[esc] Cancel")
	}
	return f.styles.Button.Render("Save Service")
}

func (f *Form) setDraft(d domain.ServiceDraft) {
	f.name.SetValue(d.Name)
	f.price.SetValue(d.Price)
	f.time = d.Time
	if !domain.IsValidDuration(f.time) {
		f.time = domain.DefaultDuration
	}
}

func (f *Form) focusField(field Field) tea.Cmd {
	f.focus = field
	f.name.Blur()
	f.price.Blur()
	if !f.focused {
		return nil
	}
	switch field {
	case FieldName:
		return f.name.Focus()
	case FieldPrice:
		return f.price.Focus()
	}
	return nil
}

func (f *Form) updateField(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case FieldName:
		f.name, cmd = f.name.Update(msg)
	case FieldPrice:
		f.price, cmd = f.price.Update(msg)
	}
	return cmd
}

func (f *Form) submit() tea.Cmd {
	submitted := Submitted{Mode: f.mode, Draft: f.Draft()}
	if f.mode == ModeEdit {
		submitted.Session = f.Session()
	}
	return func() tea.Msg {
		return submitted
	}
}

// cancel hides a create form with its values kept and discards an edit session.
func (f *Form) cancel() tea.Cmd {
	mode := f.mode
	if mode == ModeEdit {
		f.Close()
	} else {
		f.Hide()
	}
	return func() tea.Msg {
		return Closed{Mode: mode}
	}
}
