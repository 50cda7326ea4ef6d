package model

import "time"

// Feedback kind constants.
const (
	FeedbackInfo  = "info"
	FeedbackError = "error"
)

// Feedback is one transient status message shown to the user
// (toggle confirmations, sync results, gateway errors). Messages are
// recorded so the help view can show a short history.
type Feedback struct {
	// ID is the unique identifier for this entry.
	ID string `json:"id"`

	// Kind classifies the entry (use Feedback* constants).
	Kind string `json:"kind"`

	// Message is the human-readable text.
	Message string `json:"message"`

	// CreatedAt is when the message was shown.
	CreatedAt time.Time `json:"created_at"`
}
