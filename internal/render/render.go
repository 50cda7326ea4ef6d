// Package render computes everything the assignment list paints: sort
// order, due-date labels, badge classes, the progress figure, and the
// sanitized per-card view data. It is deliberately free of any UI imports
// so the whole pipeline is testable without a terminal.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nhle/study-dashboard/internal/model"
)

// dueSentinel stands in for an unknown due distance so such records sort
// after everything with a real date.
const dueSentinel = 9999

// Urgency classifies how pressing an assignment's due date is. It only
// drives emphasis; the label text comes from DueLabel.
type Urgency int

const (
	UrgencyNone Urgency = iota
	UrgencyLater
	UrgencySoon
	UrgencyToday
	UrgencyOverdue
)

// Badge classes for the fixed type lookup. Unrecognized types fall back
// to BadgeGeneric.
const (
	BadgeTestQuiz      = "test-quiz"
	BadgeProject       = "project"
	BadgeHomework      = "homework"
	BadgeReading       = "reading"
	BadgeClasswork     = "classwork"
	BadgeParticipation = "participation"
	BadgeGeneric       = "assignment"
)

var typeBadges = map[string]string{
	model.TypeTestQuiz:      BadgeTestQuiz,
	model.TypeProject:       BadgeProject,
	model.TypeHomework:      BadgeHomework,
	model.TypeReading:       BadgeReading,
	model.TypeClasswork:     BadgeClasswork,
	model.TypeParticipation: BadgeParticipation,
}

// Card is the fully computed, sanitized view data for one assignment.
// The paint layer styles these fields but never touches raw records.
type Card struct {
	UID         string
	Title       string
	TypeLabel   string
	Badge       string
	Category    string
	Priority    string
	Description string
	DueLabel    string
	Urgency     Urgency
	Completed   bool
}

// SortByDue returns a new slice sorted ascending by due distance, with
// unknown-due records last. The sort is stable so equal distances keep
// their incoming order.
func SortByDue(assignments []model.Assignment) []model.Assignment {
	out := make([]model.Assignment, len(assignments))
	copy(out, assignments)
	sort.SliceStable(out, func(i, j int) bool {
		return dueValue(out[i]) < dueValue(out[j])
	})
	return out
}

func dueValue(a model.Assignment) int {
	if d, ok := a.Due(); ok {
		return d
	}
	return dueSentinel
}

// DueLabel returns the human-readable due-date label for a. When the due
// distance is unknown it falls back to the raw due-date string, then to
// "No due date".
func DueLabel(a model.Assignment) string {
	d, ok := a.Due()
	if !ok {
		if s := Sanitize(a.DueDate); s != "" {
			return s
		}
		return "No due date"
	}

	switch {
	case d < 0:
		return fmt.Sprintf("Overdue by %d days", -d)
	case d == 0:
		return "Due Today"
	case d == 1:
		return "Due Tomorrow"
	default:
		return fmt.Sprintf("Due in %d days", d)
	}
}

// UrgencyOf returns the emphasis band for a's due distance.
func UrgencyOf(a model.Assignment) Urgency {
	d, ok := a.Due()
	if !ok {
		return UrgencyNone
	}
	switch {
	case d < 0:
		return UrgencyOverdue
	case d == 0:
		return UrgencyToday
	case d <= 3:
		return UrgencySoon
	default:
		return UrgencyLater
	}
}

// TypeBadge maps an assignment type to its badge class, defaulting to the
// generic class for unrecognized values.
func TypeBadge(typ string) string {
	if badge, ok := typeBadges[typ]; ok {
		return badge
	}
	return BadgeGeneric
}

// ProgressPercent returns the completed share of the full collection as a
// rounded integer percent. Zero total yields zero.
func ProgressPercent(assignments []model.Assignment) int {
	if len(assignments) == 0 {
		return 0
	}
	completed := 0
	for _, a := range assignments {
		if a.Completed() {
			completed++
		}
	}
	return int(float64(completed)/float64(len(assignments))*100 + 0.5)
}

// Sanitize strips terminal control sequences and control bytes from
// upstream text before it reaches the screen. Remote fields are untrusted;
// a title embedding ESC sequences must render as inert text, never drive
// the terminal. This is a hard invariant, not cosmetics.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		// Drop C0 controls (ESC included), DEL, and C1 controls
		// (0x80-0x9F covers CSI/OSC introducers in 8-bit form).
		if r < 0x20 || r == 0x7f || (r >= 0x80 && r <= 0x9f) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NewCard computes the sanitized view data for one assignment.
func NewCard(a model.Assignment) Card {
	typeLabel := Sanitize(a.Type)
	if typeLabel == "" {
		typeLabel = "Assignment"
	}

	return Card{
		UID:         a.UID,
		Title:       Sanitize(a.Title),
		TypeLabel:   typeLabel,
		Badge:       TypeBadge(a.Type),
		Category:    Sanitize(a.Category),
		Priority:    Sanitize(a.Priority),
		Description: Sanitize(a.Description),
		DueLabel:    DueLabel(a),
		Urgency:     UrgencyOf(a),
		Completed:   a.Completed(),
	}
}

// Cards sorts the filtered view by due distance and computes a card per
// record, in rendered order.
func Cards(filtered []model.Assignment) []Card {
	sorted := SortByDue(filtered)
	cards := make([]Card, len(sorted))
	for i, a := range sorted {
		cards[i] = NewCard(a)
	}
	return cards
}
