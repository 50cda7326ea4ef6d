// Package filter holds the pure selection logic applied to the in-memory
// assignment collection. Nothing here performs I/O or mutates its inputs;
// every function returns a fresh slice with input order preserved.
package filter

import "github.com/nhle/study-dashboard/internal/model"

// All is the wildcard value for a criteria dimension.
const All = "all"

// Criteria selects assignments by exact match on up to three independent
// dimensions. A dimension set to All is ignored; the dimensions that remain
// are combined conjunctively.
type Criteria struct {
	Category string
	Type     string
	Status   string
}

// NewCriteria returns criteria with every dimension set to the wildcard.
func NewCriteria() Criteria {
	return Criteria{Category: All, Type: All, Status: All}
}

// Matches reports whether a satisfies every non-wildcard dimension.
func (c Criteria) Matches(a model.Assignment) bool {
	if c.Category != All && a.Category != c.Category {
		return false
	}
	if c.Type != All && a.Type != c.Type {
		return false
	}
	if c.Status != All && a.Status != c.Status {
		return false
	}
	return true
}

// Apply returns the assignments satisfying every non-wildcard dimension of
// c, in their original order.
func Apply(assignments []model.Assignment, c Criteria) []model.Assignment {
	out := make([]model.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if c.Matches(a) {
			out = append(out, a)
		}
	}
	return out
}

// DueToday returns the assignments due today. Records with an unknown due
// distance cannot satisfy the range test and are excluded.
func DueToday(assignments []model.Assignment) []model.Assignment {
	out := make([]model.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if d, ok := a.Due(); ok && d == 0 {
			out = append(out, a)
		}
	}
	return out
}

// DueThisWeek returns the assignments due within the next seven days,
// today included. Records with an unknown due distance are excluded.
func DueThisWeek(assignments []model.Assignment) []model.Assignment {
	out := make([]model.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if d, ok := a.Due(); ok && d >= 0 && d <= 7 {
			out = append(out, a)
		}
	}
	return out
}

// ByType returns the assignments whose type exactly equals typ.
func ByType(assignments []model.Assignment, typ string) []model.Assignment {
	out := make([]model.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.Type == typ {
			out = append(out, a)
		}
	}
	return out
}
