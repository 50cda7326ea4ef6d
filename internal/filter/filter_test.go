package filter

import (
	"testing"

	"github.com/nhle/study-dashboard/internal/model"
)

func days(d int) *int { return &d }

func sampleAssignments() []model.Assignment {
	return []model.Assignment{
		{UID: "a1", Category: "Math", Type: model.TypeHomework, Status: model.StatusNotStarted, DaysUntilDue: days(0)},
		{UID: "a2", Category: "Math", Type: model.TypeTestQuiz, Status: model.StatusCompleted, DaysUntilDue: days(3)},
		{UID: "a3", Category: "History", Type: model.TypeTestQuiz, Status: model.StatusNotStarted, DaysUntilDue: days(7)},
		{UID: "a4", Category: "Science", Type: model.TypeProject, Status: model.StatusNotStarted, DaysUntilDue: nil},
		{UID: "a5", Category: "Math", Type: model.TypeHomework, Status: model.StatusCompleted, DaysUntilDue: days(-2)},
		{UID: "a6", Category: "History", Type: model.TypeReading, Status: model.StatusNotStarted, DaysUntilDue: days(8)},
	}
}

func uids(assignments []model.Assignment) []string {
	out := make([]string, len(assignments))
	for i, a := range assignments {
		out[i] = a.UID
	}
	return out
}

func equalUIDs(got []model.Assignment, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, a := range got {
		if a.UID != want[i] {
			return false
		}
	}
	return true
}

func TestApply(t *testing.T) {
	all := sampleAssignments()

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{
			name:     "all wildcards returns everything",
			criteria: NewCriteria(),
			want:     []string{"a1", "a2", "a3", "a4", "a5", "a6"},
		},
		{
			name:     "category only",
			criteria: Criteria{Category: "Math", Type: All, Status: All},
			want:     []string{"a1", "a2", "a5"},
		},
		{
			name:     "type only",
			criteria: Criteria{Category: All, Type: model.TypeTestQuiz, Status: All},
			want:     []string{"a2", "a3"},
		},
		{
			name:     "status only",
			criteria: Criteria{Category: All, Type: All, Status: model.StatusCompleted},
			want:     []string{"a2", "a5"},
		},
		{
			name:     "conjunction of all three",
			criteria: Criteria{Category: "Math", Type: model.TypeHomework, Status: model.StatusCompleted},
			want:     []string{"a5"},
		},
		{
			name:     "no match",
			criteria: Criteria{Category: "Art", Type: All, Status: All},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(all, tt.criteria)
			if !equalUIDs(got, tt.want...) {
				t.Errorf("Apply() = %v, want %v", uids(got), tt.want)
			}
		})
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	all := sampleAssignments()
	before := uids(all)

	Apply(all, Criteria{Category: "Math", Type: All, Status: All})

	after := uids(all)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("input order changed at %d: %s -> %s", i, before[i], after[i])
		}
	}
}

func TestDueToday(t *testing.T) {
	got := DueToday(sampleAssignments())
	if !equalUIDs(got, "a1") {
		t.Errorf("DueToday() = %v, want [a1]", uids(got))
	}
}

func TestDueTodayExcludesUnknownDue(t *testing.T) {
	assignments := []model.Assignment{
		{UID: "known", DaysUntilDue: days(0)},
		{UID: "unknown", DaysUntilDue: nil},
	}
	got := DueToday(assignments)
	if !equalUIDs(got, "known") {
		t.Errorf("DueToday() = %v, want [known]", uids(got))
	}
}

func TestDueThisWeek(t *testing.T) {
	// Closed range [0, 7]: includes today and day seven, excludes
	// overdue, day eight, and unknown-due records.
	got := DueThisWeek(sampleAssignments())
	if !equalUIDs(got, "a1", "a2", "a3") {
		t.Errorf("DueThisWeek() = %v, want [a1 a2 a3]", uids(got))
	}
}

func TestByType(t *testing.T) {
	got := ByType(sampleAssignments(), model.TypeTestQuiz)
	if !equalUIDs(got, "a2", "a3") {
		t.Errorf("ByType() = %v, want [a2 a3]", uids(got))
	}
}
