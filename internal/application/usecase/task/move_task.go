package task

import (
	"context"

	"taskboard/internal/application/state"
	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/valueobject"
)

// MoveTaskUseCase handles moving a task to another status column
type MoveTaskUseCase struct {
	update *UpdateTaskUseCase
	store  *state.Store
}

// NewMoveTaskUseCase creates a new MoveTaskUseCase
func NewMoveTaskUseCase(update *UpdateTaskUseCase, store *state.Store) *MoveTaskUseCase {
	return &MoveTaskUseCase{update: update, store: store}
}

// Execute moves task id to status
func (uc *MoveTaskUseCase) Execute(ctx context.Context, id string, status valueobject.Status) (entity.Task, error) {
	if !status.IsValid() {
		return entity.Task{}, entity.ErrInvalidStatus
	}

	existing := state.FindTask(uc.store.State().Tasks.Tasks, id)
	if existing == nil {
		return entity.Task{}, entity.ErrTaskNotFound
	}
	if existing.Status == status {
		return *existing, nil
	}

	draft := existing.Clone()
	draft.Status = status
	return uc.update.Execute(ctx, id, draft)
}

// Advance moves task id to the next column, wrapping from done back to todo
func (uc *MoveTaskUseCase) Advance(ctx context.Context, id string) (entity.Task, error) {
	existing := state.FindTask(uc.store.State().Tasks.Tasks, id)
	if existing == nil {
		return entity.Task{}, entity.ErrTaskNotFound
	}
	return uc.Execute(ctx, id, existing.Status.Next())
}
