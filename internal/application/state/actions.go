package state

import "taskboard/internal/domain/entity"

// Action describes a single change to State
type Action interface {
	action()
}

// BoardsRequested marks the start of a board call
type BoardsRequested struct{}

// BoardsLoaded replaces the board list
type BoardsLoaded struct{ Boards []entity.Board }

// BoardCreated appends a board returned by the server
type BoardCreated struct{ Board entity.Board }

// BoardUpdated replaces a board in place
type BoardUpdated struct{ Board entity.Board }

// BoardDeleted removes a board and its tasks
type BoardDeleted struct{ ID string }

// BoardRequestFailed records a failed board call
type BoardRequestFailed struct{ Message string }

// ValidationFailed records a local validation error; no call was made
type ValidationFailed struct{ Message string }

// ActiveBoardSelected switches the displayed board
type ActiveBoardSelected struct{ ID string }

// ErrorDismissed clears the error message
type ErrorDismissed struct{}

// TasksLoaded replaces the task list
type TasksLoaded struct{ Tasks []entity.Task }

// TaskCreated appends a task returned by the server
type TaskCreated struct{ Task entity.Task }

// TaskUpdated replaces a task in place
type TaskUpdated struct{ Task entity.Task }

// TaskDeleted removes a task
type TaskDeleted struct{ ID string }

func (BoardsRequested) action()     {}
func (BoardsLoaded) action()        {}
func (BoardCreated) action()        {}
func (BoardUpdated) action()        {}
func (BoardDeleted) action()        {}
func (BoardRequestFailed) action()  {}
func (ValidationFailed) action()    {}
func (ActiveBoardSelected) action() {}
func (ErrorDismissed) action()      {}
func (TasksLoaded) action()         {}
func (TaskCreated) action()         {}
func (TaskUpdated) action()         {}
func (TaskDeleted) action()         {}
