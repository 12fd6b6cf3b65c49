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

// DeleteTaskUseCase handles deleting a task
type DeleteTaskUseCase struct {
	taskRepo repository.TaskRepository
	store    *state.Store
	logger   *zap.Logger
}

// NewDeleteTaskUseCase creates a new DeleteTaskUseCase
func NewDeleteTaskUseCase(taskRepo repository.TaskRepository, store *state.Store, logger *zap.Logger) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{
		taskRepo: taskRepo,
		store:    store,
		logger:   logger,
	}
}

// Execute deletes task id once confirm approves
func (uc *DeleteTaskUseCase) Execute(ctx context.Context, id string, confirm Confirmer) error {
	if strings.TrimSpace(id) == "" {
		return entity.ErrEmptyTaskID
	}
	if confirm == nil || !confirm(DeletePrompt) {
		return entity.ErrDeleteCancelled
	}

	if err := uc.taskRepo.Delete(ctx, id); err != nil {
		uc.logger.Error("error deleting task", zap.String("task_id", id), zap.Error(err))
		return fmt.Errorf("failed to delete task: %w", err)
	}

	uc.store.Dispatch(state.TaskDeleted{ID: id})
	return nil
}
