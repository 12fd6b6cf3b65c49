package board

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"taskboard/internal/application/state"
	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"
)

// DeleteBoardUseCase handles deleting a board together with its cached tasks
type DeleteBoardUseCase struct {
	boardRepo repository.BoardRepository
	store     *state.Store
	logger    *zap.Logger
}

// NewDeleteBoardUseCase creates a new DeleteBoardUseCase
func NewDeleteBoardUseCase(boardRepo repository.BoardRepository, store *state.Store, logger *zap.Logger) *DeleteBoardUseCase {
	return &DeleteBoardUseCase{boardRepo: boardRepo, store: store, logger: logger}
}

// Execute deletes board id. The last remaining board cannot be deleted, and nothing
// happens unless confirm approves.
func (uc *DeleteBoardUseCase) Execute(ctx context.Context, id string, confirm Confirmer) error {
	current := uc.store.State()

	if len(current.Boards.Boards) <= 1 {
		uc.store.Dispatch(state.ValidationFailed{Message: entity.ErrLastBoard.Error()})
		return entity.ErrLastBoard
	}
	if !findBoard(current.Boards.Boards, id) {
		return entity.ErrBoardNotFound
	}
	if !confirmed(confirm, DeletePrompt) {
		return entity.ErrDeleteCancelled
	}

	uc.store.Dispatch(state.BoardsRequested{})

	if err := uc.boardRepo.Delete(ctx, id); err != nil {
		uc.logger.Error("error deleting board", zap.String("board_id", id), zap.Error(err))
		uc.store.Dispatch(state.BoardRequestFailed{Message: MsgDeleteFailed})
		return fmt.Errorf("failed to delete board: %w", err)
	}

	uc.store.Dispatch(state.BoardDeleted{ID: id})
	uc.logger.Info("board deleted", zap.String("board_id", id))
	return nil
}
