package board

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"taskboard/internal/application/state"
	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"
)

// UpdateBoardUseCase handles renaming a board
type UpdateBoardUseCase struct {
	boardRepo repository.BoardRepository
	store     *state.Store
	logger    *zap.Logger
}

// NewUpdateBoardUseCase creates a new UpdateBoardUseCase
func NewUpdateBoardUseCase(boardRepo repository.BoardRepository, store *state.Store, logger *zap.Logger) *UpdateBoardUseCase {
	return &UpdateBoardUseCase{boardRepo: boardRepo, store: store, logger: logger}
}

// Execute renames board id and replaces it in place
func (uc *UpdateBoardUseCase) Execute(ctx context.Context, id, name string) (entity.Board, error) {
	if strings.TrimSpace(id) == "" {
		return entity.Board{}, entity.ErrEmptyBoardID
	}
	draft, err := entity.NewBoard(id, name)
	if err != nil {
		uc.store.Dispatch(state.ValidationFailed{Message: err.Error()})
		return entity.Board{}, err
	}

	uc.store.Dispatch(state.BoardsRequested{})

	board, err := uc.boardRepo.Rename(ctx, id, draft.Name)
	if err != nil {
		uc.logger.Error("error updating board", zap.String("board_id", id), zap.Error(err))
		uc.store.Dispatch(state.BoardRequestFailed{Message: MsgUpdateFailed})
		return entity.Board{}, fmt.Errorf("failed to update board: %w", err)
	}

	uc.store.Dispatch(state.BoardUpdated{Board: board})
	return board, nil
}
