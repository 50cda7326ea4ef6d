package help

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/study-dashboard/internal/keys"
	"github.com/nhle/study-dashboard/internal/model"
	"github.com/nhle/study-dashboard/internal/theme"
)

// Model is the help overlay view. Besides the keyboard shortcuts it shows
// the most recent feedback messages, so a dismissed notification can
// still be read.
type Model struct {
	keys    *keys.KeyMap
	help    help.Model
	history []model.Feedback
	width   int
	height  int
}

// New creates a new help view model.
func New(keys *keys.KeyMap, width, height int) Model {
	h := help.New()
	h.Width = width
	return Model{
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetHistory installs the recent feedback entries shown below the
// shortcuts.
func (m *Model) SetHistory(entries []model.Feedback) {
	m.history = entries
}

// Update handles messages for the help view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the help overlay.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	title := titleStyle.Render("Keyboard Shortcuts")

	m.help.Width = m.width - 4
	m.help.ShowAll = true
	helpText := m.help.View(m.keys)

	sections := []string{title, helpText}

	if len(m.history) > 0 {
		sections = append(sections,
			"",
			titleStyle.Render("Recent Messages"),
		)
		limit := len(m.history)
		if limit > 5 {
			limit = 5
		}
		for _, fb := range m.history[:limit] {
			line := fb.Message
			if fb.Kind == model.FeedbackError {
				line = theme.ErrorStyle.Render(line)
			} else {
				line = theme.HelpStyle.Render(line)
			}
			sections = append(sections,
				fb.CreatedAt.Local().Format("15:04")+" "+line,
			)
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return theme.PanelStyle.
		Width(m.width - 4).
		Height(m.height - 4).
		Render(content)
}

// SetSize updates the help view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width - 4
}
