package entity

import (
	"strings"
	"time"

	"taskboard/internal/domain/valueobject"
)

// Task is a work item belonging to exactly one board
type Task struct {
	ID          string
	Title       string
	Description string
	Status      valueobject.Status
	Priority    valueobject.Priority
	AssignedTo  string
	DueDate     *time.Time
	BoardID     string
	CreatedAt   time.Time
}

// NewTask creates a task draft with trimmed text fields and defaults applied
func NewTask(boardID, title, description string, status valueobject.Status, priority valueobject.Priority) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrEmptyTaskTitle
	}
	if status == "" {
		status = valueobject.StatusTodo
	}
	if !status.IsValid() {
		return Task{}, ErrInvalidStatus
	}
	if priority == "" {
		priority = valueobject.DefaultPriority
	}
	if !priority.IsValid() {
		return Task{}, ErrInvalidPriority
	}

	return Task{
		Title:       title,
		Description: strings.TrimSpace(description),
		Status:      status,
		Priority:    priority,
		BoardID:     boardID,
	}, nil
}

// Validate checks the fields the client is responsible for
func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTaskTitle
	}
	if !t.Status.IsValid() {
		return ErrInvalidStatus
	}
	if !t.Priority.IsValid() {
		return ErrInvalidPriority
	}
	return nil
}

// IsOverdue checks if the task is past its due date and not done
func (t Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == valueobject.StatusDone {
		return false
	}
	return t.DueDate.Before(now)
}

// Clone returns a copy that shares no pointers with t
func (t Task) Clone() Task {
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	return t
}

// ParseDueDate parses a date typed by a user. Empty input means no due date.
func ParseDueDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if d, err := time.Parse(layout, value); err == nil {
			return &d, nil
		}
	}
	return nil, ErrInvalidDate
}
