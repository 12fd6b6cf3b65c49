package board

import (
	"time"

	"go.uber.org/zap"

	"taskboard/internal/application/state"
	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"
)

// SelectBoardUseCase makes a board the active one and remembers the choice
type SelectBoardUseCase struct {
	store       *state.Store
	sessionRepo repository.SessionRepository
	logger      *zap.Logger
}

// NewSelectBoardUseCase creates a new SelectBoardUseCase
func NewSelectBoardUseCase(store *state.Store, sessionRepo repository.SessionRepository, logger *zap.Logger) *SelectBoardUseCase {
	return &SelectBoardUseCase{store: store, sessionRepo: sessionRepo, logger: logger}
}

// Execute activates board id. Failing to persist the session is logged, not returned.
func (uc *SelectBoardUseCase) Execute(id string) error {
	if !findBoard(uc.store.State().Boards.Boards, id) {
		return entity.ErrBoardNotFound
	}

	uc.store.Dispatch(state.ActiveBoardSelected{ID: id})

	session, err := uc.sessionRepo.Load()
	if err != nil {
		uc.logger.Warn("failed to load session", zap.Error(err))
		session = entity.Session{}
	}
	if session.ActiveBoardID == id {
		return nil
	}

	session.ActiveBoardID = id
	session.UpdatedAt = time.Now()
	if err := uc.sessionRepo.Save(session); err != nil {
		uc.logger.Warn("failed to save session", zap.String("board_id", id), zap.Error(err))
	}
	return nil
}
