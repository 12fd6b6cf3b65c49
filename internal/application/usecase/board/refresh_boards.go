package board

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"taskboard/internal/application/state"
	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"
)

// RefreshBoardsUseCase reloads the board list from the server
type RefreshBoardsUseCase struct {
	boardRepo repository.BoardRepository
	store     *state.Store
	logger    *zap.Logger
}

// NewRefreshBoardsUseCase creates a new RefreshBoardsUseCase
func NewRefreshBoardsUseCase(boardRepo repository.BoardRepository, store *state.Store, logger *zap.Logger) *RefreshBoardsUseCase {
	return &RefreshBoardsUseCase{boardRepo: boardRepo, store: store, logger: logger}
}

// Execute replaces the cached boards. If no board is active, the first one becomes active.
func (uc *RefreshBoardsUseCase) Execute(ctx context.Context) ([]entity.Board, error) {
	uc.store.Dispatch(state.BoardsRequested{})

	boards, err := uc.boardRepo.FindAll(ctx)
	if err != nil {
		uc.logger.Error("error fetching boards", zap.Error(err))
		uc.store.Dispatch(state.BoardRequestFailed{Message: MsgLoadFailed})
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}

	uc.store.Dispatch(state.BoardsLoaded{Boards: boards})
	return boards, nil
}
