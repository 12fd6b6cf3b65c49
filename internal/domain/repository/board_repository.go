package repository

import (
	"context"

	"taskboard/internal/domain/entity"
)

// BoardRepository defines the remote operations on boards
type BoardRepository interface {
	// FindAll retrieves all boards
	FindAll(ctx context.Context) ([]entity.Board, error)

	// Create creates a board and returns it with its server-assigned id
	Create(ctx context.Context, name string) (entity.Board, error)

	// Rename changes the name of a board
	Rename(ctx context.Context, id, name string) (entity.Board, error)

	// Delete removes a board
	Delete(ctx context.Context, id string) error
}
