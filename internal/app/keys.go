package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/study-dashboard/internal/filter"
	"github.com/nhle/study-dashboard/internal/model"
	"github.com/nhle/study-dashboard/internal/theme"
)

// typeOptions are the values the type filter cycles through.
var typeOptions = []string{
	model.TypeTestQuiz,
	model.TypeProject,
	model.TypeHomework,
	model.TypeReading,
	model.TypeClasswork,
	model.TypeParticipation,
}

// statusOptions are the values the status filter cycles through.
var statusOptions = []string{
	model.StatusCompleted,
	model.StatusNotStarted,
}

// handleKey routes key input by active view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.currentView {
	case ViewLogin:
		// The form owns almost every key; only ctrl+c escapes it.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateActiveView(msg)

	case ViewHelp:
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Back) {
			m.currentView = ViewList
			return m, nil
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	return m.handleListKeys(msg)
}

// handleListKeys processes key input on the assignment list.
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		card, ok := m.listView.SelectedCard()
		if !ok {
			return m, nil
		}
		target := !card.Completed
		// Flip the checkbox immediately; the push result either
		// confirms it or reverts it.
		m.listView.SetPending(card.UID, target)
		return m, m.pushStatus(card.UID, target)

	case key.Matches(msg, m.keys.QuickToday):
		m.st.SetFiltered(filter.DueToday(m.st.Assignments()))
		return m, m.refreshCards()

	case key.Matches(msg, m.keys.QuickWeek):
		m.st.SetFiltered(filter.DueThisWeek(m.st.Assignments()))
		return m, m.refreshCards()

	case key.Matches(msg, m.keys.QuickTests):
		m.st.SetFiltered(filter.ByType(m.st.Assignments(), model.TypeTestQuiz))
		return m, m.refreshCards()

	case key.Matches(msg, m.keys.ClearQuick):
		m.criteria = filter.NewCriteria()
		return m.applyCriteria()

	case key.Matches(msg, m.keys.CycleCategory):
		m.criteria.Category = cycle(m.criteria.Category, m.categories)
		return m.applyCriteria()

	case key.Matches(msg, m.keys.CycleType):
		m.criteria.Type = cycle(m.criteria.Type, typeOptions)
		return m.applyCriteria()

	case key.Matches(msg, m.keys.CycleStatus):
		m.criteria.Status = cycle(m.criteria.Status, statusOptions)
		return m.applyCriteria()

	case key.Matches(msg, m.keys.Sync):
		m.listView.SetLoading("Syncing with calendar...")
		return m, m.runSync()

	case key.Matches(msg, m.keys.SignOut):
		return m.handleSignOut()

	case key.Matches(msg, m.keys.Help):
		m.currentView = ViewHelp
		return m, m.loadHistory()

	case key.Matches(msg, m.keys.Back):
		// Esc drops any quick filter back to the criteria view.
		return m.applyCriteria()
	}

	return m.updateActiveView(msg)
}

// applyCriteria recomputes the filtered view from the full collection and
// the three dropdown criteria.
func (m Model) applyCriteria() (tea.Model, tea.Cmd) {
	m.st.SetFiltered(filter.Apply(m.st.Assignments(), m.criteria))
	return m, m.refreshCards()
}

// handleSignOut clears the persisted session and returns to the login
// view with all in-memory state dropped.
func (m Model) handleSignOut() (tea.Model, tea.Cmd) {
	_ = m.gate.SignOut()

	m.st.Clear()
	m.criteria = filter.NewCriteria()
	m.categories = nil
	m.feedback = ""
	m.currentView = ViewLogin

	clearCmd := m.listView.SetCards(nil)
	return m, tea.Batch(clearCmd, m.loginView.Start())
}

// cycle advances a filter dimension through the wildcard plus the given
// options, wrapping around.
func cycle(current string, options []string) string {
	values := append([]string{filter.All}, options...)
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return filter.All
}

// statusBar renders the transient feedback message when one is active,
// otherwise the keyboard hints.
func (m Model) statusBar() string {
	if m.feedback != "" {
		style := theme.FeedbackStyle
		if m.feedbackKind == model.FeedbackError {
			style = style.Background(theme.ColorRed)
		}
		return style.Render(m.feedback)
	}

	hints := "space toggle · d today · w week · T tests · a all · " +
		"c/t/s filters · r sync · ? help · Q sign out · q quit"
	return m.layout.RenderStatusBar(hints)
}
