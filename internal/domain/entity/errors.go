package entity

import "errors"

var (
	// Board errors
	ErrBoardNotFound   = errors.New("board not found")
	ErrEmptyBoardID    = errors.New("board id cannot be empty")
	ErrEmptyBoardName  = errors.New("Board name cannot be empty")
	ErrLastBoard       = errors.New("You must have at least one board")
	ErrNoActiveBoard   = errors.New("no active board")
	ErrDeleteCancelled = errors.New("deletion cancelled")

	// Task errors
	ErrTaskNotFound   = errors.New("task not found")
	ErrEmptyTaskTitle = errors.New("Title is required")
	ErrEmptyTaskID    = errors.New("task id cannot be empty")

	// Validation errors
	ErrInvalidPriority = errors.New("invalid priority value")
	ErrInvalidStatus   = errors.New("invalid status value")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")

	// Auth errors
	ErrMissingCredentials = errors.New("email and password are required")
	ErrMissingName        = errors.New("name is required")
)
