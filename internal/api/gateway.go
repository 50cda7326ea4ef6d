package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nhle/study-dashboard/internal/model"
)

// GetAssignments fetches the full assignment collection. Records without a
// uid cannot be addressed by any later operation and are dropped at this
// boundary.
func (c *Client) GetAssignments(
	ctx context.Context,
) ([]model.Assignment, error) {
	data, err := c.call(ctx, actionGetAssignments, nil)
	if err != nil {
		return nil, err
	}

	var wire []wireAssignment
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decoding assignments: %w", err)
	}

	assignments := make([]model.Assignment, 0, len(wire))
	for _, w := range wire {
		if w.UID == "" {
			continue
		}
		assignments = append(assignments, model.Assignment{
			UID:          w.UID,
			Title:        w.Title,
			Description:  w.Description,
			Category:     w.Category,
			Type:         w.Type,
			Status:       w.Status,
			Priority:     string(w.Priority),
			DaysUntilDue: w.DaysUntilDue.Value,
			DueDate:      string(w.DueDate),
		})
	}

	return assignments, nil
}

// GetCategories fetches the category list for the subject filter,
// deduplicated in server order.
func (c *Client) GetCategories(ctx context.Context) ([]string, error) {
	data, err := c.call(ctx, actionGetCategories, nil)
	if err != nil {
		return nil, err
	}

	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding categories: %w", err)
	}

	seen := make(map[string]bool, len(raw))
	categories := make([]string, 0, len(raw))
	for _, cat := range raw {
		if cat == "" || seen[cat] {
			continue
		}
		seen[cat] = true
		categories = append(categories, cat)
	}

	return categories, nil
}

// UpdateStatus pushes a status change for one assignment. The response
// payload is ignored; success is sufficient.
func (c *Client) UpdateStatus(ctx context.Context, uid, status string) error {
	_, err := c.call(ctx, actionUpdateStatus, map[string]string{
		"uid":    uid,
		"status": status,
	})
	return err
}

// Sync asks the upstream to refresh itself from the calendar source. The
// pull happens entirely server-side; callers reload afterwards.
func (c *Client) Sync(ctx context.Context) error {
	_, err := c.call(ctx, actionSync, nil)
	return err
}
