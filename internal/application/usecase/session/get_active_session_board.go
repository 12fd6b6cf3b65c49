package session

import (
	"context"

	"taskboard/internal/application/state"
	"taskboard/internal/domain/repository"
)

// GetActiveSessionBoardUseCase retrieves the board ID remembered in the session file
type GetActiveSessionBoardUseCase struct {
	sessionRepo repository.SessionRepository
	store       *state.Store
}

// NewGetActiveSessionBoardUseCase creates a new GetActiveSessionBoardUseCase
func NewGetActiveSessionBoardUseCase(
	sessionRepo repository.SessionRepository,
	store *state.Store,
) *GetActiveSessionBoardUseCase {
	return &GetActiveSessionBoardUseCase{
		sessionRepo: sessionRepo,
		store:       store,
	}
}

// Execute returns the board ID for the active session.
// Returns empty string if no board is remembered or the remembered board is
// not among the loaded boards.
func (uc *GetActiveSessionBoardUseCase) Execute(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	session, err := uc.sessionRepo.Load()
	if err != nil {
		return "", err
	}
	if session.ActiveBoardID == "" {
		return "", nil
	}

	// Boards deleted elsewhere leave a stale id behind
	if state.FindBoard(uc.store.State().Boards.Boards, session.ActiveBoardID) == nil {
		return "", nil
	}

	return session.ActiveBoardID, nil
}
