package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"taskboard/internal/application/state"
	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"
)

// SyncSessionBoardUseCase applies a session written by another process to the store
type SyncSessionBoardUseCase struct {
	boardRepo repository.BoardRepository
	store     *state.Store
	logger    *zap.Logger
}

// NewSyncSessionBoardUseCase creates a new SyncSessionBoardUseCase
func NewSyncSessionBoardUseCase(
	boardRepo repository.BoardRepository,
	store *state.Store,
	logger *zap.Logger,
) *SyncSessionBoardUseCase {
	return &SyncSessionBoardUseCase{
		boardRepo: boardRepo,
		store:     store,
		logger:    logger,
	}
}

// Execute switches to the session's board. It reports whether the active board changed.
func (uc *SyncSessionBoardUseCase) Execute(ctx context.Context, session entity.Session) (bool, error) {
	boardID := session.ActiveBoardID
	if boardID == "" {
		return false, nil
	}

	current := uc.store.State()
	if current.Boards.ActiveBoard == boardID {
		return false, nil
	}

	// The board may have been created by the other process
	if state.FindBoard(current.Boards.Boards, boardID) == nil {
		boards, err := uc.boardRepo.FindAll(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to refresh boards for session: %w", err)
		}
		uc.store.Dispatch(state.BoardsLoaded{Boards: boards})

		if state.FindBoard(boards, boardID) == nil {
			uc.logger.Warn("session references unknown board", zap.String("board_id", boardID))
			return false, entity.ErrBoardNotFound
		}
	}

	uc.store.Dispatch(state.ActiveBoardSelected{ID: boardID})
	uc.logger.Debug("active board synced from session", zap.String("board_id", boardID))
	return true, nil
}
