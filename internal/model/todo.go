package model

import "time"

// Status is the workflow state of a todo.
type Status string

const (
	StatusInbox Status = "INBOX"
	StatusTodo  Status = "TODO"
	StatusDone  Status = "DONE"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusInbox, StatusTodo, StatusDone:
		return true
	}
	return false
}

// Rank gives the workflow ordering INBOX < TODO < DONE, independent of the
// strings' alphabetical order.
func (s Status) Rank() int {
	switch s {
	case StatusInbox:
		return 0
	case StatusTodo:
		return 1
	case StatusDone:
		return 2
	}
	return 3
}

// Todo represents a single item in the cockpit. CategoryID is nil for
// uncategorized (inbox) todos. Labels holds label ids; order is irrelevant.
type Todo struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	DueDate     *time.Time `json:"dueDate"`
	IsImportant bool       `gorm:"not null;default:false" json:"isImportant"`
	Status      Status     `gorm:"not null;default:'INBOX'" json:"status"`
	CategoryID  *string    `gorm:"index" json:"categoryId"`
	Labels      []string   `gorm:"serializer:json;type:text" json:"labels"`
	Position    int        `gorm:"not null;default:0" json:"position"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// HasLabel reports whether the todo references the given label id.
func (t *Todo) HasLabel(labelID string) bool {
	for _, id := range t.Labels {
		if id == labelID {
			return true
		}
	}
	return false
}
