package assignmentlist

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/study-dashboard/internal/keys"
	"github.com/nhle/study-dashboard/internal/render"
	"github.com/nhle/study-dashboard/internal/theme"
)

// Model is the assignment list view. It only paints; which records appear
// and in what order is decided upstream by the filter engine and
// render.Cards.
type Model struct {
	list    list.Model
	keys    *keys.KeyMap
	pending map[string]bool
	loading string
	loadErr string
	width   int
	height  int
}

// New creates a new assignment list model.
func New(k *keys.KeyMap, width, height int) Model {
	pending := make(map[string]bool)

	delegate := CardDelegate{pending: pending}
	l := list.New([]list.Item{}, delegate, width, height)
	l.Title = "Assignments"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	return Model{
		list:    l,
		keys:    k,
		pending: pending,
		width:   width,
		height:  height,
	}
}

// SetCards installs the computed cards as list items, in their given
// (already sorted) order.
func (m *Model) SetCards(cards []render.Card) tea.Cmd {
	items := make([]list.Item, len(cards))
	for i, card := range cards {
		items[i] = CardItem{Card: card}
	}
	m.loading = ""
	m.loadErr = ""
	return m.list.SetItems(items)
}

// SetLoading shows the loading placeholder with the given message.
func (m *Model) SetLoading(message string) {
	m.loading = message
	m.loadErr = ""
}

// SetLoadError shows the inline error placeholder that replaces the list
// when an initial load fails.
func (m *Model) SetLoadError(message string) {
	m.loadErr = message
	m.loading = ""
}

// SelectedCard returns the currently focused card.
func (m Model) SelectedCard() (render.Card, bool) {
	item, ok := m.list.SelectedItem().(CardItem)
	if !ok {
		return render.Card{}, false
	}
	return item.Card, true
}

// SetPending records an optimistic checkbox flip for an in-flight status
// push so the delegate paints the new value immediately.
func (m *Model) SetPending(uid string, completed bool) {
	m.pending[uid] = completed
}

// ClearPending removes the optimistic flip; the delegate falls back to
// the card's real value. This is the whole revert path for a failed
// toggle — in-memory data was never touched.
func (m *Model) ClearPending(uid string) {
	delete(m.pending, uid)
}

// Update handles messages for the list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the list, or one of the placeholder states.
func (m Model) View() string {
	if m.loading != "" {
		return m.placeholder(theme.HelpStyle.Render(m.loading))
	}

	if m.loadErr != "" {
		return m.placeholder(theme.ErrorStyle.Render(m.loadErr))
	}

	if len(m.list.Items()) == 0 {
		return m.placeholder(
			theme.HelpStyle.Render("No assignments found!"),
		)
	}

	return m.list.View()
}

// placeholder centers a single message in the content area.
func (m Model) placeholder(message string) string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(message)
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height)
}
