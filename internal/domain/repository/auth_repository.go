package repository

import (
	"context"

	"taskboard/internal/domain/entity"
)

// AuthRepository defines the remote authentication endpoints
type AuthRepository interface {
	Login(ctx context.Context, email, password string) (entity.AuthResult, error)
	Signup(ctx context.Context, creds entity.Credentials) (entity.AuthResult, error)
}
