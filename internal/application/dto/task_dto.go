package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/valueobject"
)

const dueDateLayout = "2006-01-02"

// TaskDTO represents a task on the wire and in CLI output
type TaskDTO struct {
	ID          string `json:"id,omitempty" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description,omitempty"`
	Status      string `json:"status" yaml:"status"`
	Priority    string `json:"priority" yaml:"priority"`
	AssignedTo  string `json:"assignedTo" yaml:"assigned_to,omitempty"`
	DueDate     string `json:"dueDate,omitempty" yaml:"due_date,omitempty"`
	BoardID     string `json:"boardId" yaml:"board_id"`
	CreatedAt   string `json:"createdAt,omitempty" yaml:"created_at,omitempty"`
}

// UnmarshalJSON accepts the backend's "_id" as well as "id", and a null due date
func (t *TaskDTO) UnmarshalJSON(data []byte) error {
	type alias TaskDTO
	var raw struct {
		alias
		MongoID string  `json:"_id"`
		DueDate *string `json:"dueDate"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = TaskDTO(raw.alias)
	if raw.MongoID != "" {
		t.ID = raw.MongoID
	}
	t.DueDate = ""
	if raw.DueDate != nil {
		t.DueDate = *raw.DueDate
	}
	return nil
}

// TaskEnvelope wraps a single task in a response
type TaskEnvelope struct {
	Task TaskDTO `json:"task"`
}

// TaskListEnvelope wraps the task list in a response
type TaskListEnvelope struct {
	Tasks []TaskDTO `json:"tasks"`
}

// TaskToDTO converts an entity to its DTO
func TaskToDTO(t entity.Task) TaskDTO {
	d := TaskDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status.String(),
		Priority:    t.Priority.String(),
		AssignedTo:  t.AssignedTo,
		BoardID:     t.BoardID,
	}
	if t.DueDate != nil {
		d.DueDate = t.DueDate.Format(dueDateLayout)
	}
	if !t.CreatedAt.IsZero() {
		d.CreatedAt = t.CreatedAt.UTC().Format(time.RFC3339)
	}
	return d
}

// TaskFromDTO converts a DTO into an entity. Unknown status or priority values are
// rejected; a missing priority falls back to the default.
func TaskFromDTO(d TaskDTO) (entity.Task, error) {
	status := valueobject.StatusTodo
	if d.Status != "" {
		s, err := valueobject.ParseStatus(d.Status)
		if err != nil {
			return entity.Task{}, fmt.Errorf("task %s: %w", d.ID, entity.ErrInvalidStatus)
		}
		status = s
	}

	priority, err := valueobject.ParsePriority(d.Priority)
	if err != nil {
		return entity.Task{}, fmt.Errorf("task %s: %w", d.ID, entity.ErrInvalidPriority)
	}

	due, err := entity.ParseDueDate(d.DueDate)
	if err != nil {
		return entity.Task{}, fmt.Errorf("task %s: %w", d.ID, err)
	}

	var created time.Time
	if d.CreatedAt != "" {
		created, err = time.Parse(time.RFC3339, d.CreatedAt)
		if err != nil {
			return entity.Task{}, fmt.Errorf("task %s: invalid createdAt: %w", d.ID, err)
		}
	}

	return entity.Task{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Status:      status,
		Priority:    priority,
		AssignedTo:  d.AssignedTo,
		DueDate:     due,
		BoardID:     d.BoardID,
		CreatedAt:   created,
	}, nil
}

// TasksFromDTO converts a slice of DTOs. Records that fail to convert are left
// out and their errors joined into the second return value.
func TasksFromDTO(ds []TaskDTO) ([]entity.Task, error) {
	tasks := make([]entity.Task, 0, len(ds))
	var errs []error
	for _, d := range ds {
		t, err := TaskFromDTO(d)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, errors.Join(errs...)
}

// TasksToDTO converts a slice of entities
func TasksToDTO(ts []entity.Task) []TaskDTO {
	out := make([]TaskDTO, 0, len(ts))
	for _, t := range ts {
		out = append(out, TaskToDTO(t))
	}
	return out
}
