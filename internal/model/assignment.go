package model

// Assignment status constants as the upstream API reports them.
const (
	StatusCompleted  = "Completed"
	StatusNotStarted = "Not Started"
)

// Known assignment types. The enumeration is open: the upstream may send
// values outside this set and they must still render (with a generic badge).
const (
	TypeTestQuiz      = "Test/Quiz"
	TypeProject       = "Project"
	TypeHomework      = "Homework"
	TypeReading       = "Reading"
	TypeClasswork     = "Classwork"
	TypeParticipation = "Participation"
)

// Assignment is one academic work item synchronized from the upstream
// calendar source. Every field except Status is client-immutable; the
// collection is wholly replaced on each successful load or sync.
type Assignment struct {
	// UID is the upstream's opaque identifier, stable across syncs.
	UID string `json:"uid" db:"uid"`

	// Title is the human-readable summary.
	Title string `json:"title" db:"title"`

	// Description is the optional full body text.
	Description string `json:"description" db:"description"`

	// Category is the subject label, used as a filter dimension.
	Category string `json:"category" db:"category"`

	// Type is the assignment kind (use Type* constants; open set).
	Type string `json:"type" db:"type"`

	// Status drives the checkbox state and progress accounting
	// (use Status* constants; open set).
	Status string `json:"status" db:"status"`

	// Priority is a free-form display value.
	Priority string `json:"priority" db:"priority"`

	// DaysUntilDue is the signed day distance to the due date.
	// Negative means overdue, zero means due today. Nil when the
	// upstream sent nothing usable; such records sort last and fall
	// back to DueDate for display.
	DaysUntilDue *int `json:"days_until_due,omitempty" db:"days_until_due"`

	// DueDate is the raw due-date string, used for display only when
	// DaysUntilDue is nil.
	DueDate string `json:"due_date" db:"due_date"`
}

// Completed reports whether the assignment's status counts as done.
func (a Assignment) Completed() bool {
	return a.Status == StatusCompleted
}

// Due returns the day distance and whether it is known.
func (a Assignment) Due() (int, bool) {
	if a.DaysUntilDue == nil {
		return 0, false
	}
	return *a.DaysUntilDue, true
}
