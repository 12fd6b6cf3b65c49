package task

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"taskboard/internal/application/state"
	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"
)

// ListTasksUseCase handles loading every task the server knows about
type ListTasksUseCase struct {
	taskRepo repository.TaskRepository
	store    *state.Store
	logger   *zap.Logger
}

// NewListTasksUseCase creates a new ListTasksUseCase
func NewListTasksUseCase(taskRepo repository.TaskRepository, store *state.Store, logger *zap.Logger) *ListTasksUseCase {
	return &ListTasksUseCase{
		taskRepo: taskRepo,
		store:    store,
		logger:   logger,
	}
}

// Execute replaces the cached task list. The server returns tasks for all boards;
// use state.TasksForBoard to narrow the result.
func (uc *ListTasksUseCase) Execute(ctx context.Context) ([]entity.Task, error) {
	tasks, err := uc.taskRepo.FindAll(ctx)
	if err != nil {
		uc.logger.Error("error fetching tasks", zap.Error(err))
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	uc.store.Dispatch(state.TasksLoaded{Tasks: tasks})
	return tasks, nil
}
