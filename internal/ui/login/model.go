package login

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/study-dashboard/internal/theme"
)

// SubmitMsg is dispatched when the user submits a credential token.
type SubmitMsg struct {
	Credential string
}

// bindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type bindings struct {
	credential string
}

// Model is the login view: a single form where the user pastes the signed
// token issued by the identity provider.
type Model struct {
	form    *huh.Form
	fb      *bindings
	errMsg  string
	width   int
	height  int
}

// New creates a new login view model with its form ready.
func New(width, height int) Model {
	m := Model{
		fb:     &bindings{},
		width:  width,
		height: height,
	}
	m.form = m.buildForm()
	return m
}

// Init returns the form's initial command.
func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// Start reinitializes the form for a fresh sign-in attempt.
func (m *Model) Start() tea.Cmd {
	m.fb.credential = ""
	m.errMsg = ""
	m.form = m.buildForm()
	return m.form.Init()
}

// SetError shows a rejection message above the form. Authorization is
// all-or-nothing per attempt; the user may simply try again.
func (m *Model) SetError(message string) {
	m.errMsg = message
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Sign in").
				Description("Paste the sign-in token from your identity provider.").
				Value(&m.fb.credential),
		),
	).WithWidth(min(m.width-8, 80))
}

// Update handles messages for the login view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		credential := m.fb.credential
		restart := m.Start()
		return m, tea.Batch(restart, func() tea.Msg {
			return SubmitMsg{Credential: credential}
		})
	}

	return m, cmd
}

// View renders the login view.
func (m Model) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1).
		Render("Student Dashboard")

	sections := []string{title}
	if m.errMsg != "" {
		sections = append(sections, theme.ErrorStyle.Render(m.errMsg), "")
	}
	if m.form != nil {
		sections = append(sections, m.form.View())
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.PanelStyle.Render(content))
}

// SetSize updates the login view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
