package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/study-dashboard/internal/theme"
)

// Layout manages the terminal layout dimensions: a header bar, the
// progress strip, the content area, and a status bar.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	ProgressHeight  int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		ProgressHeight:  1,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height available for the main content area.
func (l Layout) ContentHeight() int {
	return l.Height - l.HeaderHeight - l.ProgressHeight - l.StatusBarHeight
}

// RenderHeader renders the top header bar with the app title and the
// signed-in user.
func (l Layout) RenderHeader(title string, user string) string {
	titleRendered := theme.HeaderStyle.Render(title)

	userRendered := theme.HeaderStyle.
		Align(lipgloss.Right).
		Render(user)

	gap := l.Width -
		lipgloss.Width(titleRendered) -
		lipgloss.Width(userRendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.HeaderStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.HeaderStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		filler,
		userRendered,
	)
}

// RenderProgress renders the completion strip: a proportional fill bar
// followed by the textual percent label. The percent always reflects the
// full collection, never the filtered view.
func (l Layout) RenderProgress(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	label := fmt.Sprintf(" %d%% Complete", percent)

	barWidth := l.Width - lipgloss.Width(label) - 2
	if barWidth < 0 {
		barWidth = 0
	}
	filled := barWidth * percent / 100

	bar := theme.ProgressFilledStyle.Render(strings.Repeat("█", filled)) +
		theme.ProgressEmptyStyle.Render(strings.Repeat("░", barWidth-filled))

	return " " + bar + theme.ProgressLabelStyle.Render(label)
}

// RenderStatusBar renders the bottom status bar with keyboard hints.
func (l Layout) RenderStatusBar(hints string) string {
	rendered := theme.StatusBarStyle.Render(hints)

	gap := l.Width - lipgloss.Width(rendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.StatusBarStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.StatusBarStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderWithFrame composes a full terminal view by vertically joining the
// header, progress strip, content area, and status bar.
func (l Layout) RenderWithFrame(
	header string,
	progress string,
	content string,
	statusBar string,
) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		progress,
		content,
		statusBar,
	)
}
