package auth

import (
	"time"

	"go.uber.org/zap"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"
)

// MsgUnexpected is shown when the server could not be reached or failed
const MsgUnexpected = "Something went wrong. Please try again."

// rememberUser records the signed-in email in the session file
func rememberUser(sessionRepo repository.SessionRepository, logger *zap.Logger, email string) {
	session, err := sessionRepo.Load()
	if err != nil {
		logger.Warn("failed to load session", zap.Error(err))
		session = entity.Session{}
	}
	session.UserEmail = email
	session.UpdatedAt = time.Now()
	if err := sessionRepo.Save(session); err != nil {
		logger.Warn("failed to save session", zap.Error(err))
	}
}
