package board

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"taskboard/internal/application/state"
	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"
)

// CreateBoardUseCase handles creating a board
type CreateBoardUseCase struct {
	boardRepo repository.BoardRepository
	store     *state.Store
	logger    *zap.Logger
}

// NewCreateBoardUseCase creates a new CreateBoardUseCase
func NewCreateBoardUseCase(boardRepo repository.BoardRepository, store *state.Store, logger *zap.Logger) *CreateBoardUseCase {
	return &CreateBoardUseCase{boardRepo: boardRepo, store: store, logger: logger}
}

// Execute creates a board named name. A blank name is rejected without a server call.
func (uc *CreateBoardUseCase) Execute(ctx context.Context, name string) (entity.Board, error) {
	draft, err := entity.NewBoard("", name)
	if err != nil {
		uc.store.Dispatch(state.ValidationFailed{Message: err.Error()})
		return entity.Board{}, err
	}

	uc.store.Dispatch(state.BoardsRequested{})

	board, err := uc.boardRepo.Create(ctx, draft.Name)
	if err != nil {
		uc.logger.Error("error creating board", zap.String("name", draft.Name), zap.Error(err))
		uc.store.Dispatch(state.BoardRequestFailed{Message: MsgCreateFailed})
		return entity.Board{}, fmt.Errorf("failed to create board: %w", err)
	}

	uc.store.Dispatch(state.BoardCreated{Board: board})
	uc.logger.Info("board created", zap.String("board_id", board.ID), zap.String("name", board.Name))
	return board, nil
}
