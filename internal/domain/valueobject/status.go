package valueobject

import (
	"fmt"
	"strings"
)

// Status is the workflow state of a task. Columns on a board are derived from it.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// AllStatuses returns the statuses in column order
func AllStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// IsValid reports whether s is one of the known statuses
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// String returns the wire value
func (s Status) String() string {
	return string(s)
}

// Label returns the column heading for the status
func (s Status) Label() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}

// Next returns the following status, wrapping around after done
func (s Status) Next() Status {
	all := AllStatuses()
	for i, st := range all {
		if st == s {
			return all[(i+1)%len(all)]
		}
	}
	return StatusTodo
}

// ParseStatus accepts either the wire value or the column label
func ParseStatus(value string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, "_", "-")

	switch normalized {
	case "todo", "to do", "to-do":
		return StatusTodo, nil
	case "in-progress", "in progress", "inprogress":
		return StatusInProgress, nil
	case "done":
		return StatusDone, nil
	default:
		return "", fmt.Errorf("unknown status %q", value)
	}
}
