package auth_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taskboard/internal/application/usecase/auth"
	"taskboard/internal/domain/entity"
	"taskboard/internal/infrastructure/api"
	"taskboard/internal/infrastructure/api/fakeapi"
	"taskboard/internal/infrastructure/persistence/filesystem"
)

type fixture struct {
	backend  *fakeapi.Backend
	login    *auth.LoginUseCase
	signup   *auth.SignupUseCase
	sessions *filesystem.SessionRepositoryImpl
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	backend := fakeapi.NewBackend(t)
	client, err := api.New(backend.URL())
	require.NoError(t, err)

	repo := api.NewAuthRepository(client)
	sessions := filesystem.NewSessionRepository(filepath.Join(t.TempDir(), "session.yaml"))
	return &fixture{
		backend:  backend,
		login:    auth.NewLoginUseCase(repo, sessions, zap.NewNop()),
		signup:   auth.NewSignupUseCase(repo, sessions, zap.NewNop()),
		sessions: sessions,
	}
}

func TestLoginSuccessRemembersUser(t *testing.T) {
	f := newFixture(t)
	f.backend.SeedUser("Ada", "ada@example.com", "secret")

	result, err := f.login.Execute(context.Background(), " ada@example.com ", "secret")
	require.NoError(t, err)
	assert.True(t, result.Success)

	s, err := f.sessions.Load()
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", s.UserEmail)
}

func TestLoginRejected(t *testing.T) {
	f := newFixture(t)
	f.backend.SeedUser("Ada", "ada@example.com", "secret")

	result, err := f.login.Execute(context.Background(), "ada@example.com", "wrong")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid email or password", result.Message)

	s, err := f.sessions.Load()
	require.NoError(t, err)
	assert.Empty(t, s.UserEmail)
}

func TestLoginMissingCredentials(t *testing.T) {
	f := newFixture(t)

	_, err := f.login.Execute(context.Background(), "", "secret")
	assert.ErrorIs(t, err, entity.ErrMissingCredentials)
	_, err = f.login.Execute(context.Background(), "a@b.c", "")
	assert.ErrorIs(t, err, entity.ErrMissingCredentials)
	assert.Zero(t, f.backend.CallCount("POST /login"))
}

func TestLoginServerFailure(t *testing.T) {
	f := newFixture(t)
	f.backend.FailWith("POST /login", 500)

	result, err := f.login.Execute(context.Background(), "a@b.c", "pw")
	require.Error(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, auth.MsgUnexpected, result.Message)
}

func TestSignup(t *testing.T) {
	f := newFixture(t)

	_, err := f.signup.Execute(context.Background(), entity.Credentials{Email: "a@b.c", Password: "pw"})
	assert.ErrorIs(t, err, entity.ErrMissingName)

	result, err := f.signup.Execute(context.Background(), entity.Credentials{Name: "Ada", Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, result.Success)

	result, err = f.login.Execute(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.True(t, result.Success)
}
