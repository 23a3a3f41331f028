package core

import "time"

// DefaultCategory is assigned when a note is created without one.
const DefaultCategory = "Personal"

// Note is the central entity of the domain.
// It represents a single note or reminder, identified by an ID.
// Field names on the wire (JSON) are fixed; the backing store and the
// HTTP layer both rely on them.
type Note struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Category     string     `json:"category"`
	IsReminder   bool       `json:"isReminder"`
	ReminderDate *time.Time `json:"reminderDate"`
	Completed    bool       `json:"completed"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Draft carries the caller-supplied fields for creating a note.
// Title and Content are required; everything else has a stated default.
type Draft struct {
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Category     string     `json:"category"`
	IsReminder   bool       `json:"isReminder"`
	ReminderDate *time.Time `json:"reminderDate"`
}

// Patch is the allow-listed partial update for a note.
// A nil field leaves the stored value untouched; a non-nil field
// overwrites it. Unknown keys in incoming JSON are dropped by the
// decoder rather than stored, so the schema cannot drift.
type Patch struct {
	Title        *string    `json:"title"`
	Content      *string    `json:"content"`
	Category     *string    `json:"category"`
	IsReminder   *bool      `json:"isReminder"`
	ReminderDate *time.Time `json:"reminderDate"`
	Completed    *bool      `json:"completed"`
}

// IsZero reports whether the patch carries no fields at all.
// An empty patch is still a legal update: it only refreshes UpdatedAt.
func (p Patch) IsZero() bool {
	return p.Title == nil && p.Content == nil && p.Category == nil &&
		p.IsReminder == nil && p.ReminderDate == nil && p.Completed == nil
}

// Apply merges the patch onto the note, field by field.
// It does not touch UpdatedAt; the service owns timestamp bookkeeping.
func (p Patch) Apply(n *Note) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Category != nil {
		n.Category = *p.Category
	}
	if p.IsReminder != nil {
		n.IsReminder = *p.IsReminder
	}
	if p.ReminderDate != nil {
		n.ReminderDate = p.ReminderDate
	}
	if p.Completed != nil {
		n.Completed = *p.Completed
	}
}

// Filter narrows a List call. A nil Category means no filtering;
// a non-nil one selects notes whose category matches exactly
// (case-sensitive, no partial matching).
type Filter struct {
	Category *string
}

// Match reports whether the note passes the filter.
func (f Filter) Match(n Note) bool {
	return f.Category == nil || n.Category == *f.Category
}

// EventType represents the type of change observed in the store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a single note in the backing store.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}
