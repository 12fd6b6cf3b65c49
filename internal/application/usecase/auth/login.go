package auth

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"
)

// LoginUseCase handles signing in an existing user
type LoginUseCase struct {
	authRepo    repository.AuthRepository
	sessionRepo repository.SessionRepository
	logger      *zap.Logger
}

// NewLoginUseCase creates a new LoginUseCase
func NewLoginUseCase(authRepo repository.AuthRepository, sessionRepo repository.SessionRepository, logger *zap.Logger) *LoginUseCase {
	return &LoginUseCase{authRepo: authRepo, sessionRepo: sessionRepo, logger: logger}
}

// Execute submits the credentials. A rejected login is not an error: the
// result carries Success false and the server's message.
func (uc *LoginUseCase) Execute(ctx context.Context, email, password string) (entity.AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return entity.AuthResult{}, entity.ErrMissingCredentials
	}

	result, err := uc.authRepo.Login(ctx, email, password)
	if err != nil {
		uc.logger.Error("login request failed", zap.String("email", email), zap.Error(err))
		return entity.AuthResult{Success: false, Message: MsgUnexpected}, fmt.Errorf("login failed: %w", err)
	}

	if result.Success {
		rememberUser(uc.sessionRepo, uc.logger, email)
		uc.logger.Info("user logged in", zap.String("email", email))
	}
	return result, nil
}
