package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/study-dashboard/internal/model"
	"github.com/nhle/study-dashboard/internal/render"
)

// feedbackDuration is how long a transient message stays on screen.
const feedbackDuration = 3 * time.Second

// cachedLoadedMsg carries the locally cached collection read at startup.
type cachedLoadedMsg struct {
	assignments []model.Assignment
}

// assignmentsLoadedMsg carries a freshly fetched collection and category
// list, or the load error.
type assignmentsLoadedMsg struct {
	assignments []model.Assignment
	categories  []string
	err         error
}

// statusPushedMsg reports the outcome of a status push for one record.
type statusPushedMsg struct {
	uid    string
	status string
	err    error
}

// syncDoneMsg reports the outcome of the upstream sync action.
type syncDoneMsg struct {
	err error
}

// feedbackExpiredMsg dismisses a transient message once its timer fires.
type feedbackExpiredMsg struct {
	seq int
}

// historyLoadedMsg carries recent feedback entries for the help view.
type historyLoadedMsg struct {
	entries []model.Feedback
}

// loadCached reads the last successfully loaded collection from the local
// cache so the dashboard paints instantly while the first fetch runs.
func (m *Model) loadCached() tea.Cmd {
	cache := m.cache
	return func() tea.Msg {
		assignments, err := cache.GetAssignments(context.Background())
		if err != nil {
			return cachedLoadedMsg{}
		}
		return cachedLoadedMsg{assignments: assignments}
	}
}

// loadAssignments fetches the collection and the category list. A failed
// category fetch is tolerated; the categories then derive from the
// collection itself.
func (m *Model) loadAssignments() tea.Cmd {
	g := m.gateway
	return func() tea.Msg {
		ctx := context.Background()

		assignments, err := g.GetAssignments(ctx)
		if err != nil {
			return assignmentsLoadedMsg{err: err}
		}

		categories, err := g.GetCategories(ctx)
		if err != nil {
			categories = nil
		}

		return assignmentsLoadedMsg{
			assignments: assignments,
			categories:  categories,
		}
	}
}

// pushStatus sends one status change to the gateway. The cached row is
// patched on success so a restart before the next load shows the right
// checkbox.
func (m *Model) pushStatus(uid string, completed bool) tea.Cmd {
	g := m.gateway
	cache := m.cache

	status := model.StatusNotStarted
	if completed {
		status = model.StatusCompleted
	}

	return func() tea.Msg {
		ctx := context.Background()
		if err := g.UpdateStatus(ctx, uid, status); err != nil {
			return statusPushedMsg{uid: uid, status: status, err: err}
		}

		// Best effort; the server already accepted the change.
		_ = cache.SetAssignmentStatus(ctx, uid, status)

		return statusPushedMsg{uid: uid, status: status}
	}
}

// runSync triggers the server-side calendar pull.
func (m *Model) runSync() tea.Cmd {
	g := m.gateway
	return func() tea.Msg {
		return syncDoneMsg{err: g.Sync(context.Background())}
	}
}

// persistCache rewrites the local cache after a successful load.
func (m *Model) persistCache(assignments []model.Assignment) tea.Cmd {
	cache := m.cache
	return func() tea.Msg {
		_ = cache.ReplaceAssignments(context.Background(), assignments)
		return nil
	}
}

// showFeedback installs a transient message, records it, and arms the
// auto-dismiss timer. A newer message supersedes the pending timer.
func (m *Model) showFeedback(kind, text string) tea.Cmd {
	m.feedback = text
	m.feedbackKind = kind
	m.feedbackSeq++
	seq := m.feedbackSeq

	cache := m.cache
	record := func() tea.Msg {
		_ = cache.AddFeedback(context.Background(), model.Feedback{
			Kind:    kind,
			Message: text,
		})
		return nil
	}

	expire := tea.Tick(feedbackDuration, func(time.Time) tea.Msg {
		return feedbackExpiredMsg{seq: seq}
	})

	return tea.Batch(record, expire)
}

// loadHistory fetches recent feedback entries for the help view.
func (m *Model) loadHistory() tea.Cmd {
	cache := m.cache
	return func() tea.Msg {
		entries, err := cache.RecentFeedback(context.Background(), 10)
		if err != nil {
			return historyLoadedMsg{}
		}
		return historyLoadedMsg{entries: entries}
	}
}

// refreshCards recomputes the painted cards from the current filtered
// view.
func (m *Model) refreshCards() tea.Cmd {
	return m.listView.SetCards(render.Cards(m.st.Filtered()))
}
