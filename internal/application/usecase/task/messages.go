package task

import (
	"errors"
	"time"

	"taskboard/internal/domain/entity"
)

// Messages shown to the user when a task call fails
const (
	MsgLoadFailed   = "Failed to load tasks"
	MsgCreateFailed = "Failed to create task"
	MsgUpdateFailed = "Failed to update task"
	MsgDeleteFailed = "Failed to delete task"
)

// DeletePrompt is the question put to the user before a task is deleted
const DeletePrompt = "Are you sure you want to delete this task?"

// Clock returns the current time
type Clock func() time.Time

// Confirmer asks the user to approve a destructive action
type Confirmer func(prompt string) bool

// AlwaysConfirm approves without asking
func AlwaysConfirm(string) bool { return true }

// UserMessage turns a use case error into text for the user. Validation errors
// are shown as is; anything else becomes fallback.
func UserMessage(err error, fallback string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, entity.ErrEmptyTaskTitle),
		errors.Is(err, entity.ErrInvalidDate),
		errors.Is(err, entity.ErrInvalidStatus),
		errors.Is(err, entity.ErrInvalidPriority),
		errors.Is(err, entity.ErrNoActiveBoard),
		errors.Is(err, entity.ErrTaskNotFound):
		return err.Error()
	default:
		return fallback
	}
}
