package auth

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"
)

// SignupUseCase handles registering a new user
type SignupUseCase struct {
	authRepo    repository.AuthRepository
	sessionRepo repository.SessionRepository
	logger      *zap.Logger
}

// NewSignupUseCase creates a new SignupUseCase
func NewSignupUseCase(authRepo repository.AuthRepository, sessionRepo repository.SessionRepository, logger *zap.Logger) *SignupUseCase {
	return &SignupUseCase{authRepo: authRepo, sessionRepo: sessionRepo, logger: logger}
}

// Execute registers creds with the server
func (uc *SignupUseCase) Execute(ctx context.Context, creds entity.Credentials) (entity.AuthResult, error) {
	creds.Name = strings.TrimSpace(creds.Name)
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Name == "" {
		return entity.AuthResult{}, entity.ErrMissingName
	}
	if creds.Email == "" || creds.Password == "" {
		return entity.AuthResult{}, entity.ErrMissingCredentials
	}

	result, err := uc.authRepo.Signup(ctx, creds)
	if err != nil {
		uc.logger.Error("signup request failed", zap.String("email", creds.Email), zap.Error(err))
		return entity.AuthResult{Success: false, Message: MsgUnexpected}, fmt.Errorf("signup failed: %w", err)
	}

	if result.Success {
		rememberUser(uc.sessionRepo, uc.logger, creds.Email)
		uc.logger.Info("user signed up", zap.String("email", creds.Email))
	}
	return result, nil
}
