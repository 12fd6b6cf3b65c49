package api

import (
	"context"
	"net/http"

	"taskboard/internal/application/dto"
	"taskboard/internal/domain/entity"
)

// Login calls POST /login
func (c *Client) Login(ctx context.Context, email, password string) (entity.AuthResult, error) {
	var resp dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/login", dto.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return entity.AuthResult{}, err
	}
	return entity.AuthResult{Success: resp.Success, Message: resp.Message}, nil
}

// Signup calls POST /signup
func (c *Client) Signup(ctx context.Context, creds entity.Credentials) (entity.AuthResult, error) {
	body := dto.SignupRequest{Name: creds.Name, Email: creds.Email, Password: creds.Password}

	var resp dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/signup", body, &resp); err != nil {
		return entity.AuthResult{}, err
	}
	return entity.AuthResult{Success: resp.Success, Message: resp.Message}, nil
}

// AuthRepository adapts the client to repository.AuthRepository
type AuthRepository struct {
	client *Client
}

// NewAuthRepository creates an auth repository over c
func NewAuthRepository(c *Client) *AuthRepository {
	return &AuthRepository{client: c}
}

func (r *AuthRepository) Login(ctx context.Context, email, password string) (entity.AuthResult, error) {
	return r.client.Login(ctx, email, password)
}

func (r *AuthRepository) Signup(ctx context.Context, creds entity.Credentials) (entity.AuthResult, error) {
	return r.client.Signup(ctx, creds)
}
