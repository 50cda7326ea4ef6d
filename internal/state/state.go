// Package state owns the mutable application data: the signed-in user,
// the assignment collection, and its derived filtered view. The original
// kept these as ambient globals; here a single State value is owned by the
// root UI model and only ever touched from its update loop.
package state

import "github.com/nhle/study-dashboard/internal/model"

// State is the single holder of shared mutable data.
type State struct {
	user        string
	assignments []model.Assignment
	filtered    []model.Assignment
}

// New returns an empty state.
func New() *State {
	return &State{}
}

// User returns the signed-in email, empty when logged out.
func (s *State) User() string { return s.user }

// SetUser records the signed-in email.
func (s *State) SetUser(email string) { s.user = email }

// Assignments returns the full collection. Callers must not mutate it.
func (s *State) Assignments() []model.Assignment { return s.assignments }

// Filtered returns the current derived view. It is disposable: any filter
// action recomputes it from the full collection, and it is never the
// source of truth for a mutation.
func (s *State) Filtered() []model.Assignment { return s.filtered }

// SetAssignments replaces the whole collection (the lifecycle on every
// successful load or sync) and resets the filtered view to identity.
func (s *State) SetAssignments(assignments []model.Assignment) {
	s.assignments = assignments
	s.filtered = make([]model.Assignment, len(assignments))
	copy(s.filtered, assignments)
}

// SetFiltered installs a newly computed derived view.
func (s *State) SetFiltered(filtered []model.Assignment) {
	s.filtered = filtered
}

// SetStatus patches the status of one record in place, in both the
// collection and the current view. Unknown uids are a silent no-op; the
// record may have vanished in a concurrent reload.
func (s *State) SetStatus(uid, status string) bool {
	found := false
	for i := range s.assignments {
		if s.assignments[i].UID == uid {
			s.assignments[i].Status = status
			found = true
			break
		}
	}
	for i := range s.filtered {
		if s.filtered[i].UID == uid {
			s.filtered[i].Status = status
			break
		}
	}
	return found
}

// Categories returns the distinct categories of the collection in
// first-seen order. Used when the upstream category list is unavailable.
func (s *State) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, a := range s.assignments {
		if a.Category == "" || seen[a.Category] {
			continue
		}
		seen[a.Category] = true
		categories = append(categories, a.Category)
	}
	return categories
}

// Clear drops everything; used at sign-out.
func (s *State) Clear() {
	s.user = ""
	s.assignments = nil
	s.filtered = nil
}
