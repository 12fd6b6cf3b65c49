package dto

import (
	"encoding/json"

	"taskboard/internal/domain/entity"
)

// BoardDTO represents a board on the wire and in CLI output
type BoardDTO struct {
	ID   string `json:"id,omitempty" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// UnmarshalJSON accepts the backend's "_id" as well as "id"
func (b *BoardDTO) UnmarshalJSON(data []byte) error {
	type alias BoardDTO
	var raw struct {
		alias
		MongoID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = BoardDTO(raw.alias)
	if raw.MongoID != "" {
		b.ID = raw.MongoID
	}
	return nil
}

// BoardRequest is the body of create and rename calls
type BoardRequest struct {
	Name string `json:"name"`
}

// BoardEnvelope wraps a single board in a response
type BoardEnvelope struct {
	Board BoardDTO `json:"board"`
}

// BoardListEnvelope wraps the board list in a response
type BoardListEnvelope struct {
	Boards []BoardDTO `json:"boards"`
}

// BoardToDTO converts an entity to its DTO
func BoardToDTO(b entity.Board) BoardDTO {
	return BoardDTO{ID: b.ID, Name: b.Name}
}

// BoardFromDTO converts a DTO to an entity
func BoardFromDTO(d BoardDTO) entity.Board {
	return entity.Board{ID: d.ID, Name: d.Name}
}

// BoardsFromDTO converts a slice of DTOs
func BoardsFromDTO(ds []BoardDTO) []entity.Board {
	boards := make([]entity.Board, 0, len(ds))
	for _, d := range ds {
		boards = append(boards, BoardFromDTO(d))
	}
	return boards
}

// BoardsToDTO converts a slice of entities
func BoardsToDTO(bs []entity.Board) []BoardDTO {
	out := make([]BoardDTO, 0, len(bs))
	for _, b := range bs {
		out = append(out, BoardToDTO(b))
	}
	return out
}
