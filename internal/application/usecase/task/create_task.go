package task

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"taskboard/internal/application/state"
	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"
)

// CreateTaskUseCase handles creating a task on a board
type CreateTaskUseCase struct {
	taskRepo repository.TaskRepository
	store    *state.Store
	clock    Clock
	logger   *zap.Logger
}

// NewCreateTaskUseCase creates a new CreateTaskUseCase
func NewCreateTaskUseCase(taskRepo repository.TaskRepository, store *state.Store, clock Clock, logger *zap.Logger) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		taskRepo: taskRepo,
		store:    store,
		clock:    clock,
		logger:   logger,
	}
}

// Execute validates draft, stamps its creation time and sends it to the server.
// The draft's ID is ignored; the server assigns one.
func (uc *CreateTaskUseCase) Execute(ctx context.Context, draft entity.Task) (entity.Task, error) {
	if draft.BoardID == "" {
		return entity.Task{}, entity.ErrNoActiveBoard
	}

	task, err := entity.NewTask(draft.BoardID, draft.Title, draft.Description, draft.Status, draft.Priority)
	if err != nil {
		return entity.Task{}, err
	}
	task.AssignedTo = draft.AssignedTo
	task.DueDate = draft.DueDate
	task.CreatedAt = uc.clock().UTC()

	created, err := uc.taskRepo.Create(ctx, task)
	if err != nil {
		uc.logger.Error("error creating task",
			zap.String("board_id", task.BoardID),
			zap.String("title", task.Title),
			zap.Error(err))
		return entity.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	uc.store.Dispatch(state.TaskCreated{Task: created})
	uc.logger.Info("task created", zap.String("task_id", created.ID), zap.String("board_id", created.BoardID))
	return created, nil
}
