package task

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"taskboard/internal/application/state"
	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"
)

// UpdateTaskUseCase handles editing an existing task
type UpdateTaskUseCase struct {
	taskRepo repository.TaskRepository
	store    *state.Store
	logger   *zap.Logger
}

// NewUpdateTaskUseCase creates a new UpdateTaskUseCase
func NewUpdateTaskUseCase(taskRepo repository.TaskRepository, store *state.Store, logger *zap.Logger) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{
		taskRepo: taskRepo,
		store:    store,
		logger:   logger,
	}
}

// Execute replaces task id with the fields of draft. A draft without a board
// keeps the board of the cached task.
func (uc *UpdateTaskUseCase) Execute(ctx context.Context, id string, draft entity.Task) (entity.Task, error) {
	if strings.TrimSpace(id) == "" {
		return entity.Task{}, entity.ErrEmptyTaskID
	}

	draft.Title = strings.TrimSpace(draft.Title)
	draft.Description = strings.TrimSpace(draft.Description)
	if err := draft.Validate(); err != nil {
		return entity.Task{}, err
	}

	if draft.BoardID == "" || draft.CreatedAt.IsZero() {
		if existing := state.FindTask(uc.store.State().Tasks.Tasks, id); existing != nil {
			if draft.BoardID == "" {
				draft.BoardID = existing.BoardID
			}
			if draft.CreatedAt.IsZero() {
				draft.CreatedAt = existing.CreatedAt
			}
		}
	}
	draft.ID = id

	updated, err := uc.taskRepo.Update(ctx, id, draft)
	if err != nil {
		uc.logger.Error("error updating task", zap.String("task_id", id), zap.Error(err))
		return entity.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	uc.store.Dispatch(state.TaskUpdated{Task: updated})
	return updated, nil
}
