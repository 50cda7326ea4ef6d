package assignmentlist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/study-dashboard/internal/render"
	"github.com/nhle/study-dashboard/internal/theme"
)

// CardItem wraps a computed render.Card so it can be used in a
// bubbles/list.
type CardItem struct {
	Card render.Card
}

// FilterValue returns the string used for fuzzy filtering.
func (i CardItem) FilterValue() string { return i.Card.Title }

// Title returns the card title for the list.
func (i CardItem) Title() string { return i.Card.Title }

// Description returns a short summary line for the list.
func (i CardItem) Description() string {
	return i.Card.Category + " | " + i.Card.DueLabel
}

// CardDelegate implements list.ItemDelegate, drawing one assignment card
// as a three-line block.
type CardDelegate struct {
	// pending maps uid to the optimistically toggled checkbox value for
	// status pushes still in flight. Shared by reference with the list
	// Model so updates are visible without rebuilding items.
	pending map[string]bool
}

// Height returns the number of lines each card takes.
func (d CardDelegate) Height() int { return 3 }

// Spacing returns the number of blank lines between cards.
func (d CardDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d CardDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single assignment card.
func (d CardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ci, ok := item.(CardItem)
	if !ok {
		return
	}

	card := ci.Card
	isSelected := index == m.Index()

	completed := card.Completed
	if v, ok := d.pending[card.UID]; ok {
		completed = v
	}

	checkbox := "[ ]"
	if completed {
		checkbox = "[x]"
	}

	badge := theme.TypeBadgeStyle(card.Badge).Render(card.TypeLabel)

	title := card.Title
	if completed {
		title = theme.DimmedStyle.Render(title)
	}

	header := fmt.Sprintf("%s %s %s", checkbox, title, badge)

	due := theme.UrgencyStyle(card.Urgency).Render(card.DueLabel)
	details := fmt.Sprintf("    📚 %s  📅 %s  ⚡ %s", card.Category, due, card.Priority)

	desc := ""
	if card.Description != "" {
		desc = "    " + theme.HelpStyle.Render(truncate(card.Description, m.Width()-6))
	}

	lines := []string{header, details, desc}
	for i, line := range lines {
		if isSelected {
			lines[i] = theme.SelectedItemStyle.Render(line)
		} else {
			lines[i] = theme.ListItemStyle.Render(line)
		}
	}

	fmt.Fprint(w, lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// truncate shortens s to at most width runes, appending an ellipsis when
// anything was cut.
func truncate(s string, width int) string {
	if width <= 1 {
		return ""
	}
	runes := []rune(strings.ReplaceAll(s, "\n", " "))
	if len(runes) <= width {
		return string(runes)
	}
	return string(runes[:width-1]) + "…"
}
