package entity

import "strings"

// Board is a named container of tasks
type Board struct {
	ID   string
	Name string
}

// NewBoard validates the name and builds a board. The id is assigned by the server
// and may be empty for a board that has not been created yet.
func NewBoard(id, name string) (Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Board{}, ErrEmptyBoardName
	}
	return Board{ID: id, Name: name}, nil
}
