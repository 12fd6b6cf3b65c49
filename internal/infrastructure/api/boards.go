package api

import (
	"context"
	"net/http"

	"taskboard/internal/application/dto"
	"taskboard/internal/domain/entity"
)

// ListBoards calls GET /getboard
func (c *Client) ListBoards(ctx context.Context) ([]entity.Board, error) {
	var env dto.BoardListEnvelope
	if err := c.do(ctx, http.MethodGet, "/getboard", nil, &env); err != nil {
		return nil, err
	}
	return dto.BoardsFromDTO(env.Boards), nil
}

// CreateBoard calls POST /addboard
func (c *Client) CreateBoard(ctx context.Context, name string) (entity.Board, error) {
	var env dto.BoardEnvelope
	if err := c.do(ctx, http.MethodPost, "/addboard", dto.BoardRequest{Name: name}, &env); err != nil {
		return entity.Board{}, err
	}
	return dto.BoardFromDTO(env.Board), nil
}

// UpdateBoard calls PUT /updateboard/:id
func (c *Client) UpdateBoard(ctx context.Context, id, name string) (entity.Board, error) {
	var env dto.BoardEnvelope
	if err := c.do(ctx, http.MethodPut, pathID("/updateboard", id), dto.BoardRequest{Name: name}, &env); err != nil {
		return entity.Board{}, err
	}
	return dto.BoardFromDTO(env.Board), nil
}

// DeleteBoard calls DELETE /deleteboard/:id
func (c *Client) DeleteBoard(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, pathID("/deleteboard", id), nil, nil)
}

// BoardRepository adapts the client to repository.BoardRepository
type BoardRepository struct {
	client *Client
}

// NewBoardRepository creates a board repository over c
func NewBoardRepository(c *Client) *BoardRepository {
	return &BoardRepository{client: c}
}

func (r *BoardRepository) FindAll(ctx context.Context) ([]entity.Board, error) {
	return r.client.ListBoards(ctx)
}

func (r *BoardRepository) Create(ctx context.Context, name string) (entity.Board, error) {
	return r.client.CreateBoard(ctx, name)
}

func (r *BoardRepository) Rename(ctx context.Context, id, name string) (entity.Board, error) {
	return r.client.UpdateBoard(ctx, id, name)
}

func (r *BoardRepository) Delete(ctx context.Context, id string) error {
	return r.client.DeleteBoard(ctx, id)
}
