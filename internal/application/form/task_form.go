// Package form holds the state behind the interactive forms: what has been typed,
// which mode the form is in, and what happens on submit. Rendering lives in tui.
package form

import (
	"context"
	"strings"

	"taskboard/internal/application/usecase/task"
	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/valueobject"
)

// TaskCreator creates a task from a draft
type TaskCreator interface {
	Execute(ctx context.Context, draft entity.Task) (entity.Task, error)
}

// TaskUpdater replaces a task with a draft
type TaskUpdater interface {
	Execute(ctx context.Context, id string, draft entity.Task) (entity.Task, error)
}

// TaskMode tells whether a TaskForm creates or edits
type TaskMode int

const (
	TaskModeCreate TaskMode = iota
	TaskModeEdit
)

// TaskForm is the single create/edit form for a task.
// It is in edit mode when built with an initial task.
type TaskForm struct {
	Title       string
	Description string
	AssignedTo  string
	DueDate     string // YYYY-MM-DD, empty for none
	Status      valueobject.Status
	Priority    valueobject.Priority

	Error     string
	IsLoading bool

	// OnSaved receives the task returned by the server
	OnSaved func(entity.Task)

	mode    TaskMode
	boardID string
	initial entity.Task
	creator TaskCreator
	updater TaskUpdater
}

// NewTaskForm creates a form bound to boardID. A non-nil initial task puts the
// form in edit mode, prefilled from it.
func NewTaskForm(creator TaskCreator, updater TaskUpdater, boardID string, initial *entity.Task) *TaskForm {
	f := &TaskForm{
		boardID: boardID,
		creator: creator,
		updater: updater,
	}
	if initial == nil {
		f.mode = TaskModeCreate
		f.Reset()
		return f
	}

	f.mode = TaskModeEdit
	f.initial = initial.Clone()
	f.boardID = initial.BoardID
	f.Title = initial.Title
	f.Description = initial.Description
	f.AssignedTo = initial.AssignedTo
	f.Status = initial.Status
	f.Priority = initial.Priority
	if initial.DueDate != nil {
		f.DueDate = initial.DueDate.Format("2006-01-02")
	}
	return f
}

// Mode returns whether the form creates or edits
func (f *TaskForm) Mode() TaskMode { return f.mode }

// IsEdit reports whether the form edits an existing task
func (f *TaskForm) IsEdit() bool { return f.mode == TaskModeEdit }

// BoardID returns the board the task is saved to
func (f *TaskForm) BoardID() string { return f.boardID }

// Heading is the title shown above the form
func (f *TaskForm) Heading() string {
	if f.IsEdit() {
		return "Edit Task"
	}
	return "Add New Task"
}

// SubmitLabel is the text of the submit button
func (f *TaskForm) SubmitLabel() string {
	switch {
	case f.IsLoading && f.IsEdit():
		return "Updating..."
	case f.IsLoading:
		return "Creating..."
	case f.IsEdit():
		return "Update Task"
	default:
		return "Create Task"
	}
}

// CycleStatus moves to the next status
func (f *TaskForm) CycleStatus() { f.Status = f.Status.Next() }

// CyclePriority moves to the next priority
func (f *TaskForm) CyclePriority() { f.Priority = f.Priority.Next() }

// Reset restores the create-mode defaults
func (f *TaskForm) Reset() {
	f.Title = ""
	f.Description = ""
	f.AssignedTo = ""
	f.DueDate = ""
	f.Status = valueobject.StatusTodo
	f.Priority = valueobject.DefaultPriority
	f.Error = ""
}

// Draft builds the task the form would submit
func (f *TaskForm) Draft() (entity.Task, error) {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return entity.Task{}, entity.ErrEmptyTaskTitle
	}
	due, err := entity.ParseDueDate(f.DueDate)
	if err != nil {
		return entity.Task{}, err
	}

	draft := entity.Task{
		Title:       title,
		Description: strings.TrimSpace(f.Description),
		Status:      f.Status,
		Priority:    f.Priority,
		AssignedTo:  strings.TrimSpace(f.AssignedTo),
		DueDate:     due,
		BoardID:     f.boardID,
	}
	if f.IsEdit() {
		draft.ID = f.initial.ID
		draft.CreatedAt = f.initial.CreatedAt
	}
	return draft, nil
}

// Submit saves the form. On failure Error is set and the form keeps its input;
// in create mode a success clears it.
func (f *TaskForm) Submit(ctx context.Context) (entity.Task, error) {
	defer func() { f.IsLoading = false }()

	draft, err := f.Draft()
	if err != nil {
		f.Error = err.Error()
		return entity.Task{}, err
	}

	f.IsLoading = true
	f.Error = ""

	var saved entity.Task
	if f.IsEdit() {
		saved, err = f.updater.Execute(ctx, f.initial.ID, draft)
		if err != nil {
			f.Error = task.UserMessage(err, task.MsgUpdateFailed)
			return entity.Task{}, err
		}
	} else {
		saved, err = f.creator.Execute(ctx, draft)
		if err != nil {
			f.Error = task.UserMessage(err, task.MsgCreateFailed)
			return entity.Task{}, err
		}
		f.Reset()
	}

	if f.OnSaved != nil {
		f.OnSaved(saved)
	}
	return saved, nil
}
