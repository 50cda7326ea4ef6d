package state

import (
	"testing"

	"github.com/nhle/study-dashboard/internal/model"
)

func seed() []model.Assignment {
	return []model.Assignment{
		{UID: "a1", Category: "Math", Status: model.StatusNotStarted},
		{UID: "a2", Category: "History", Status: model.StatusCompleted},
		{UID: "a3", Category: "Math", Status: model.StatusNotStarted},
	}
}

func TestSetAssignmentsResetsFiltered(t *testing.T) {
	s := New()
	s.SetAssignments(seed())

	if len(s.Filtered()) != 3 {
		t.Fatalf("filtered = %d records, want identity view of 3", len(s.Filtered()))
	}

	s.SetFiltered(s.Filtered()[:1])
	if len(s.Filtered()) != 1 {
		t.Fatalf("SetFiltered did not install the view")
	}

	// A reload replaces everything and drops the stale view.
	s.SetAssignments(seed()[:2])
	if len(s.Assignments()) != 2 || len(s.Filtered()) != 2 {
		t.Errorf("after replace: %d/%d, want 2/2",
			len(s.Assignments()), len(s.Filtered()))
	}
}

func TestSetStatusPatchesBothViews(t *testing.T) {
	s := New()
	s.SetAssignments(seed())

	if !s.SetStatus("a1", model.StatusCompleted) {
		t.Fatalf("SetStatus(a1) = false, want true")
	}

	if got := s.Assignments()[0].Status; got != model.StatusCompleted {
		t.Errorf("collection status = %q", got)
	}
	if got := s.Filtered()[0].Status; got != model.StatusCompleted {
		t.Errorf("filtered status = %q", got)
	}
}

func TestSetStatusUnknownUIDIsNoop(t *testing.T) {
	s := New()
	s.SetAssignments(seed())

	if s.SetStatus("ghost", model.StatusCompleted) {
		t.Errorf("SetStatus(ghost) = true, want false")
	}

	for _, a := range s.Assignments() {
		if a.UID != "a2" && a.Status != model.StatusNotStarted {
			t.Errorf("record %s changed unexpectedly", a.UID)
		}
	}
}

func TestCategoriesFirstSeenOrderDeduplicated(t *testing.T) {
	s := New()
	s.SetAssignments(seed())

	got := s.Categories()
	want := []string{"Math", "History"}
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestClear(t *testing.T) {
	s := New()
	s.SetUser("student@example.com")
	s.SetAssignments(seed())

	s.Clear()

	if s.User() != "" || s.Assignments() != nil || s.Filtered() != nil {
		t.Errorf("Clear left state behind: user=%q assignments=%d",
			s.User(), len(s.Assignments()))
	}
}
