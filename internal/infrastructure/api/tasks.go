package api

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"taskboard/internal/application/dto"
	"taskboard/internal/domain/entity"
)

// ListTasks calls GET /tasks. The result covers every board.
func (c *Client) ListTasks(ctx context.Context) ([]entity.Task, error) {
	var env dto.TaskListEnvelope
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &env); err != nil {
		return nil, err
	}
	tasks, err := dto.TasksFromDTO(env.Tasks)
	if err != nil {
		c.logger.Warn("skipped malformed tasks",
			zap.Int("received", len(env.Tasks)),
			zap.Int("kept", len(tasks)),
			zap.Error(err),
		)
	}
	return tasks, nil
}

// CreateTask calls POST /tasks
func (c *Client) CreateTask(ctx context.Context, task entity.Task) (entity.Task, error) {
	body := dto.TaskToDTO(task)
	body.ID = ""

	var env dto.TaskEnvelope
	if err := c.do(ctx, http.MethodPost, "/tasks", body, &env); err != nil {
		return entity.Task{}, err
	}
	return dto.TaskFromDTO(env.Task)
}

// UpdateTask calls PUT /tasks/:id
func (c *Client) UpdateTask(ctx context.Context, id string, task entity.Task) (entity.Task, error) {
	var env dto.TaskEnvelope
	if err := c.do(ctx, http.MethodPut, pathID("/tasks", id), dto.TaskToDTO(task), &env); err != nil {
		return entity.Task{}, err
	}
	return dto.TaskFromDTO(env.Task)
}

// DeleteTask calls DELETE /tasks/:id. The backend's delete route is inferred from
// its REST layout; no other client exercises it.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, pathID("/tasks", id), nil, nil)
}

// TaskRepository adapts the client to repository.TaskRepository
type TaskRepository struct {
	client *Client
}

// NewTaskRepository creates a task repository over c
func NewTaskRepository(c *Client) *TaskRepository {
	return &TaskRepository{client: c}
}

func (r *TaskRepository) FindAll(ctx context.Context) ([]entity.Task, error) {
	return r.client.ListTasks(ctx)
}

func (r *TaskRepository) Create(ctx context.Context, task entity.Task) (entity.Task, error) {
	return r.client.CreateTask(ctx, task)
}

func (r *TaskRepository) Update(ctx context.Context, id string, task entity.Task) (entity.Task, error) {
	return r.client.UpdateTask(ctx, id, task)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.client.DeleteTask(ctx, id)
}
