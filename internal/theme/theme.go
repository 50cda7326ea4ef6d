package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/study-dashboard/internal/render"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for the top header bar and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// ListItemStyle is the base style for assignment cards in the list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused card.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// DimmedStyle de-emphasizes completed cards.
var DimmedStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Strikethrough(true)

// PanelStyle wraps full-screen overlay content.
var PanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// FeedbackStyle renders the transient feedback message line.
var FeedbackStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorMagenta).
	Padding(0, 1)

// ErrorStyle renders error placeholders and failure feedback.
var ErrorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorRed)

// ProgressFilledStyle and ProgressEmptyStyle draw the completion bar.
var (
	ProgressFilledStyle = lipgloss.NewStyle().Foreground(ColorGreen)
	ProgressEmptyStyle  = lipgloss.NewStyle().Foreground(ColorSubtle)
	ProgressLabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorWhite)
)

// TypeBadgeStyle returns a color-coded style for the given badge class.
func TypeBadgeStyle(badge string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch badge {
	case render.BadgeTestQuiz:
		return base.Foreground(ColorRed)
	case render.BadgeProject:
		return base.Foreground(ColorMagenta)
	case render.BadgeHomework:
		return base.Foreground(ColorBlue)
	case render.BadgeReading:
		return base.Foreground(ColorGreen)
	case render.BadgeClasswork:
		return base.Foreground(ColorOrange)
	case render.BadgeParticipation:
		return base.Foreground(ColorYellow)
	default:
		return base.Foreground(ColorGray)
	}
}

// UrgencyStyle returns the emphasis style for a due-date label.
func UrgencyStyle(u render.Urgency) lipgloss.Style {
	base := lipgloss.NewStyle()

	switch u {
	case render.UrgencyOverdue:
		return base.Bold(true).Foreground(ColorRed)
	case render.UrgencyToday:
		return base.Bold(true).Foreground(ColorOrange)
	case render.UrgencySoon:
		return base.Foreground(ColorYellow)
	case render.UrgencyLater:
		return base.Foreground(ColorGreen)
	default:
		return base.Foreground(ColorGray)
	}
}
