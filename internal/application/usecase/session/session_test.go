package session_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taskboard/internal/application/state"
	"taskboard/internal/application/usecase/session"
	"taskboard/internal/domain/entity"
	"taskboard/internal/infrastructure/api"
	"taskboard/internal/infrastructure/api/fakeapi"
	"taskboard/internal/infrastructure/persistence/filesystem"
)

func TestGetActiveSessionBoard(t *testing.T) {
	sessions := filesystem.NewSessionRepository(filepath.Join(t.TempDir(), "session.yaml"))
	store := state.NewStore(state.State{})
	store.Dispatch(state.BoardsLoaded{Boards: []entity.Board{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}})
	uc := session.NewGetActiveSessionBoardUseCase(sessions, store)

	id, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, sessions.Save(entity.Session{ActiveBoardID: "b"}))
	id, err = uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "b", id)

	require.NoError(t, sessions.Save(entity.Session{ActiveBoardID: "gone"}))
	id, err = uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestSyncSessionBoard(t *testing.T) {
	backend := fakeapi.NewBackend(t)
	ids := backend.SeedBoards("A", "B")
	client, err := api.New(backend.URL())
	require.NoError(t, err)
	repo := api.NewBoardRepository(client)

	store := state.NewStore(state.State{})
	store.Dispatch(state.BoardsLoaded{Boards: []entity.Board{{ID: ids[0], Name: "A"}, {ID: ids[1], Name: "B"}}})
	uc := session.NewSyncSessionBoardUseCase(repo, store, zap.NewNop())

	changed, err := uc.Execute(context.Background(), entity.Session{ActiveBoardID: ids[1]})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, ids[1], store.State().Boards.ActiveBoard)

	changed, err = uc.Execute(context.Background(), entity.Session{ActiveBoardID: ids[1]})
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = uc.Execute(context.Background(), entity.Session{})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Zero(t, backend.CallCount("GET /getboard"))
}

func TestSyncSessionBoardFetchesNewBoard(t *testing.T) {
	backend := fakeapi.NewBackend(t)
	ids := backend.SeedBoards("A")
	client, err := api.New(backend.URL())
	require.NoError(t, err)

	store := state.NewStore(state.State{})
	store.Dispatch(state.BoardsLoaded{Boards: []entity.Board{{ID: ids[0], Name: "A"}}})
	uc := session.NewSyncSessionBoardUseCase(api.NewBoardRepository(client), store, zap.NewNop())

	created := backend.SeedBoards("Made elsewhere")
	changed, err := uc.Execute(context.Background(), entity.Session{ActiveBoardID: created[0]})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Len(t, store.State().Boards.Boards, 2)
	assert.Equal(t, created[0], store.State().Boards.ActiveBoard)

	_, err = uc.Execute(context.Background(), entity.Session{ActiveBoardID: "unknown"})
	assert.ErrorIs(t, err, entity.ErrBoardNotFound)
	assert.Equal(t, created[0], store.State().Boards.ActiveBoard)
}
