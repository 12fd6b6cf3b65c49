package repository

import (
	"context"

	"taskboard/internal/domain/entity"
)

// TaskRepository defines the remote operations on tasks.
// FindAll is not filtered by board; callers filter on Task.BoardID.
type TaskRepository interface {
	FindAll(ctx context.Context) ([]entity.Task, error)
	Create(ctx context.Context, task entity.Task) (entity.Task, error)
	Update(ctx context.Context, id string, task entity.Task) (entity.Task, error)
	Delete(ctx context.Context, id string) error
}
