package store

import (
	"context"

	"github.com/nhle/study-dashboard/internal/model"
)

// Store defines the local cache of the last successfully loaded assignment
// collection plus the feedback history. The remote service remains the
// source of truth; the cache only lets the dashboard paint instantly at
// startup while the first fetch is in flight.
type Store interface {
	// === Assignments ===

	// ReplaceAssignments swaps the cached collection for the given one
	// inside a single transaction, preserving the incoming order.
	ReplaceAssignments(ctx context.Context, assignments []model.Assignment) error
	GetAssignments(ctx context.Context) ([]model.Assignment, error)

	// SetAssignmentStatus patches one cached record after a successful
	// status push. Unknown uids are a no-op.
	SetAssignmentStatus(ctx context.Context, uid, status string) error

	// === Feedback history ===

	AddFeedback(ctx context.Context, fb model.Feedback) error
	RecentFeedback(ctx context.Context, limit int) ([]model.Feedback, error)
}
