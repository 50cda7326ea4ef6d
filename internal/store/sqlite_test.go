package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/nhle/study-dashboard/internal/model"
	"github.com/nhle/study-dashboard/tests/testutil"
)

func days(d int) *int { return &d }

func seed() []model.Assignment {
	return []model.Assignment{
		{
			UID:          "a1",
			Title:        "Chapter quiz",
			Category:     "Math",
			Type:         model.TypeTestQuiz,
			Status:       model.StatusNotStarted,
			Priority:     "High",
			DaysUntilDue: days(2),
		},
		{
			UID:      "a2",
			Title:    "Reading log",
			Category: "English",
			Type:     model.TypeReading,
			Status:   model.StatusCompleted,
			DueDate:  "May 12",
		},
	}
}

func TestReplaceAndGetAssignments(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	if err := s.ReplaceAssignments(ctx, seed()); err != nil {
		t.Fatalf("ReplaceAssignments: %v", err)
	}

	got, err := s.GetAssignments(ctx)
	if err != nil {
		t.Fatalf("GetAssignments: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d assignments, want 2", len(got))
	}

	// Upstream order survives the round trip.
	if got[0].UID != "a1" || got[1].UID != "a2" {
		t.Errorf("order = [%s %s], want [a1 a2]", got[0].UID, got[1].UID)
	}

	if d, ok := got[0].Due(); !ok || d != 2 {
		t.Errorf("a1 due = %v %v, want 2 true", d, ok)
	}
	if _, ok := got[1].Due(); ok {
		t.Errorf("a2 due must round-trip as unknown")
	}
	if got[1].DueDate != "May 12" {
		t.Errorf("a2 dueDate = %q", got[1].DueDate)
	}
}

func TestReplaceAssignmentsSwapsWholeCollection(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	if err := s.ReplaceAssignments(ctx, seed()); err != nil {
		t.Fatalf("first replace: %v", err)
	}
	if err := s.ReplaceAssignments(ctx, seed()[:1]); err != nil {
		t.Fatalf("second replace: %v", err)
	}

	got, err := s.GetAssignments(ctx)
	if err != nil {
		t.Fatalf("GetAssignments: %v", err)
	}
	if len(got) != 1 || got[0].UID != "a1" {
		t.Errorf("cache kept stale records: %d", len(got))
	}
}

func TestSetAssignmentStatus(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	if err := s.ReplaceAssignments(ctx, seed()); err != nil {
		t.Fatalf("ReplaceAssignments: %v", err)
	}

	if err := s.SetAssignmentStatus(ctx, "a1", model.StatusCompleted); err != nil {
		t.Fatalf("SetAssignmentStatus: %v", err)
	}

	got, err := s.GetAssignments(ctx)
	if err != nil {
		t.Fatalf("GetAssignments: %v", err)
	}
	if got[0].Status != model.StatusCompleted {
		t.Errorf("a1 status = %q", got[0].Status)
	}

	// Unknown uid is a no-op, not an error.
	if err := s.SetAssignmentStatus(ctx, "ghost", model.StatusCompleted); err != nil {
		t.Errorf("SetAssignmentStatus(ghost): %v", err)
	}
}

func TestFeedbackHistory(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Minute)
	entries := []model.Feedback{
		{Kind: model.FeedbackInfo, Message: "Marked as complete!", CreatedAt: base},
		{Kind: model.FeedbackError, Message: "Sync failed", CreatedAt: base.Add(time.Second)},
	}
	for _, fb := range entries {
		if err := s.AddFeedback(ctx, fb); err != nil {
			t.Fatalf("AddFeedback: %v", err)
		}
	}

	got, err := s.RecentFeedback(ctx, 10)
	if err != nil {
		t.Fatalf("RecentFeedback: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}

	// Newest first.
	if got[0].Message != "Sync failed" {
		t.Errorf("first entry = %q, want newest", got[0].Message)
	}

	// Ids are filled in when absent.
	if got[0].ID == "" {
		t.Errorf("feedback id was not generated")
	}
}
