package form

import (
	"context"

	"taskboard/internal/domain/entity"
)

// BoardCreator creates a board by name
type BoardCreator interface {
	Execute(ctx context.Context, name string) (entity.Board, error)
}

// BoardRenamer renames a board
type BoardRenamer interface {
	Execute(ctx context.Context, id, name string) (entity.Board, error)
}

// BoardForm is the name input behind the create-board and edit-board overlays.
// Errors land in the board store, so the form only tracks its input.
type BoardForm struct {
	Name string

	boardID string
	creator BoardCreator
	renamer BoardRenamer
}

// NewCreateBoardForm creates an empty form that creates a board
func NewCreateBoardForm(creator BoardCreator) *BoardForm {
	return &BoardForm{creator: creator}
}

// NewEditBoardForm creates a form prefilled with b's name
func NewEditBoardForm(renamer BoardRenamer, b entity.Board) *BoardForm {
	return &BoardForm{Name: b.Name, boardID: b.ID, renamer: renamer}
}

// IsEdit reports whether the form renames an existing board
func (f *BoardForm) IsEdit() bool { return f.boardID != "" }

// Heading is the title shown above the form
func (f *BoardForm) Heading() string {
	if f.IsEdit() {
		return "Edit Board"
	}
	return "Create New Board"
}

// Clear empties the input
func (f *BoardForm) Clear() { f.Name = "" }

// Submit creates or renames the board and clears the input on success
func (f *BoardForm) Submit(ctx context.Context) (entity.Board, error) {
	var (
		board entity.Board
		err   error
	)
	if f.IsEdit() {
		board, err = f.renamer.Execute(ctx, f.boardID, f.Name)
	} else {
		board, err = f.creator.Execute(ctx, f.Name)
	}
	if err != nil {
		return entity.Board{}, err
	}
	f.Clear()
	return board, nil
}
