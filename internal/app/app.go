package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/study-dashboard/internal/api"
	"github.com/nhle/study-dashboard/internal/auth"
	"github.com/nhle/study-dashboard/internal/filter"
	"github.com/nhle/study-dashboard/internal/keys"
	"github.com/nhle/study-dashboard/internal/model"
	"github.com/nhle/study-dashboard/internal/render"
	"github.com/nhle/study-dashboard/internal/state"
	"github.com/nhle/study-dashboard/internal/store"
	"github.com/nhle/study-dashboard/internal/ui"
	"github.com/nhle/study-dashboard/internal/ui/assignmentlist"
	helpview "github.com/nhle/study-dashboard/internal/ui/help"
	"github.com/nhle/study-dashboard/internal/ui/login"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewLogin ViewState = iota
	ViewList
	ViewHelp
)

// Model is the root Bubble Tea model. It owns the shared state and routes
// messages between the session gate, the gateway, and the views. All
// mutation of state happens inside Update, which is the single-writer
// discipline the whole design leans on.
type Model struct {
	currentView ViewState
	layout      ui.Layout
	cfg         *model.AppConfig
	gateway     *api.Client
	gate        *auth.Gate
	cache       store.Store
	st          *state.State
	keys        *keys.KeyMap

	criteria   filter.Criteria
	categories []string

	loginView login.Model
	listView  assignmentlist.Model
	helpView  helpview.Model

	feedback     string
	feedbackKind string
	feedbackSeq  int

	ready bool
}

// New creates the root application model.
func New(
	cfg *model.AppConfig,
	gateway *api.Client,
	gate *auth.Gate,
	cache store.Store,
) Model {
	k := keys.DefaultKeyMap()

	m := Model{
		currentView: ViewLogin,
		cfg:         cfg,
		gateway:     gateway,
		gate:        gate,
		cache:       cache,
		st:          state.New(),
		keys:        k,
		criteria:    filter.NewCriteria(),
		loginView:   login.New(80, 24),
		listView:    assignmentlist.New(k, 80, 24),
		helpView:    helpview.New(k, 80, 24),
	}

	// Resume a persisted session when one exists and is still
	// allow-listed; otherwise the login view is shown first.
	if email, ok := gate.Resume(); ok {
		m.st.SetUser(email)
		m.currentView = ViewList
		m.listView.SetLoading("Loading your assignments...")
	}

	return m
}

// Init kicks off the initial data load or the login form.
func (m Model) Init() tea.Cmd {
	if m.currentView == ViewList {
		return tea.Batch(m.loadCached(), m.loadAssignments())
	}
	return m.loginView.Init()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.listView.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		m.loginView.SetSize(msg.Width, msg.Height)
		// Forward to the active view so huh forms can lay out.
		return m.updateActiveView(msg)

	case login.SubmitMsg:
		return m.handleLogin(msg.Credential)

	case cachedLoadedMsg:
		// Paint the cached collection only while the live fetch is
		// still in flight; a fetch that already landed wins.
		if len(msg.assignments) > 0 && len(m.st.Assignments()) == 0 {
			m.st.SetAssignments(msg.assignments)
			m.categories = m.st.Categories()
			return m, m.refreshCards()
		}
		return m, nil

	case assignmentsLoadedMsg:
		return m.handleAssignmentsLoaded(msg)

	case statusPushedMsg:
		return m.handleStatusPushed(msg)

	case syncDoneMsg:
		if msg.err != nil {
			// Prior data stays untouched.
			cmd := m.refreshCards()
			return m, tea.Batch(cmd, m.showFeedback(model.FeedbackError, "Sync failed"))
		}
		m.listView.SetLoading("Loading your assignments...")
		return m, tea.Batch(
			m.showFeedback(model.FeedbackInfo, "Sync complete!"),
			m.loadAssignments(),
		)

	case feedbackExpiredMsg:
		if msg.seq == m.feedbackSeq {
			m.feedback = ""
		}
		return m, nil

	case historyLoadedMsg:
		m.helpView.SetHistory(msg.entries)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActiveView(msg)
}

// handleLogin runs the session gate on a submitted credential.
func (m Model) handleLogin(credential string) (tea.Model, tea.Cmd) {
	email, err := m.gate.Authorize(credential)
	if err != nil {
		if _, ok := err.(*auth.NotAllowedError); ok {
			m.loginView.SetError(
				"Sorry, your email is not authorized to access this dashboard.",
			)
		} else {
			m.loginView.SetError("Could not read the sign-in token. Try again.")
		}
		return m, nil
	}

	m.st.SetUser(email)
	m.currentView = ViewList
	m.listView.SetLoading("Loading your assignments...")
	return m, tea.Batch(m.loadCached(), m.loadAssignments())
}

// handleAssignmentsLoaded installs a fresh collection or shows the inline
// load error.
func (m Model) handleAssignmentsLoaded(msg assignmentsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		feedback := m.showFeedback(
			model.FeedbackError, "Error: "+msg.err.Error(),
		)
		if len(m.st.Assignments()) == 0 {
			m.listView.SetLoadError(
				"Failed to load assignments. Press r to retry.",
			)
			return m, feedback
		}
		// A reload can fail after data exists (sync, retry). The prior
		// cards come back; the loading placeholder must not outlive
		// the fetch.
		return m, tea.Batch(m.refreshCards(), feedback)
	}

	m.st.SetAssignments(msg.assignments)
	m.criteria = filter.NewCriteria()

	if len(msg.categories) > 0 {
		m.categories = msg.categories
	} else {
		m.categories = m.st.Categories()
	}

	return m, tea.Batch(m.refreshCards(), m.persistCache(msg.assignments))
}

// handleStatusPushed resolves an optimistic toggle: patch state on
// success, revert the checkbox on failure.
func (m Model) handleStatusPushed(msg statusPushedMsg) (tea.Model, tea.Cmd) {
	m.listView.ClearPending(msg.uid)

	if msg.err != nil {
		// Visual revert only; in-memory data was never touched.
		return m, m.showFeedback(
			model.FeedbackError, "Error: "+msg.err.Error(),
		)
	}

	m.st.SetStatus(msg.uid, msg.status)

	text := "Marked as incomplete"
	if msg.status == model.StatusCompleted {
		text = "Marked as complete!"
	}
	return m, tea.Batch(m.refreshCards(), m.showFeedback(model.FeedbackInfo, text))
}

// updateActiveView forwards a message to whichever view is active.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case ViewLogin:
		m.loginView, cmd = m.loginView.Update(msg)
	case ViewList:
		m.listView, cmd = m.listView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	}
	return m, cmd
}

// View renders the active view inside the standard frame.
func (m Model) View() string {
	if !m.ready {
		return ""
	}

	if m.currentView == ViewLogin {
		return m.loginView.View()
	}

	header := m.layout.RenderHeader("Student Dashboard", m.st.User())
	progress := m.layout.RenderProgress(
		render.ProgressPercent(m.st.Assignments()),
	)

	var content string
	switch m.currentView {
	case ViewHelp:
		content = m.helpView.View()
	default:
		content = m.listView.View()
	}

	return m.layout.RenderWithFrame(header, progress, content, m.statusBar())
}
