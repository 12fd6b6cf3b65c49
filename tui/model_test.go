package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taskboard/internal/application/dto"
	"taskboard/internal/application/state"
	"taskboard/internal/application/usecase/auth"
	"taskboard/internal/application/usecase/board"
	"taskboard/internal/application/usecase/session"
	"taskboard/internal/application/usecase/task"
	"taskboard/internal/di"
	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/valueobject"
	"taskboard/internal/infrastructure/api"
	"taskboard/internal/infrastructure/api/fakeapi"
	"taskboard/internal/infrastructure/config"
	"taskboard/internal/infrastructure/persistence/filesystem"
	"taskboard/tui/style"
)

func newTestContainer(t *testing.T, backend *fakeapi.Backend) *di.Container {
	t.Helper()
	dir := t.TempDir()

	cfg := config.NewLoaderAt(filepath.Join(dir, "config.yml"), dir).Defaults()
	cfg.API.BaseURL = backend.URL()
	cfg.Session.Path = filepath.Join(dir, "session.yaml")
	cfg.Session.Watch = false
	style.InitStyles(cfg)
	InitKeybindings(cfg)

	client, err := api.New(backend.URL())
	require.NoError(t, err)

	logger := zap.NewNop()
	store := state.NewStore(state.State{})
	boards := api.NewBoardRepository(client)
	tasks := api.NewTaskRepository(client)
	auths := api.NewAuthRepository(client)
	sessions := filesystem.NewSessionRepository(cfg.Session.Path)
	update := task.NewUpdateTaskUseCase(tasks, store, logger)

	return &di.Container{
		Config:                       cfg,
		Logger:                       logger,
		Client:                       client,
		Store:                        store,
		BoardRepo:                    boards,
		TaskRepo:                     tasks,
		AuthRepo:                     auths,
		SessionRepo:                  sessions,
		RefreshBoardsUseCase:         board.NewRefreshBoardsUseCase(boards, store, logger),
		CreateBoardUseCase:           board.NewCreateBoardUseCase(boards, store, logger),
		UpdateBoardUseCase:           board.NewUpdateBoardUseCase(boards, store, logger),
		DeleteBoardUseCase:           board.NewDeleteBoardUseCase(boards, store, logger),
		SelectBoardUseCase:           board.NewSelectBoardUseCase(store, sessions, logger),
		ListTasksUseCase:             task.NewListTasksUseCase(tasks, store, logger),
		CreateTaskUseCase:            task.NewCreateTaskUseCase(tasks, store, time.Now, logger),
		UpdateTaskUseCase:            update,
		MoveTaskUseCase:              task.NewMoveTaskUseCase(update, store),
		DeleteTaskUseCase:            task.NewDeleteTaskUseCase(tasks, store, logger),
		LoginUseCase:                 auth.NewLoginUseCase(auths, sessions, logger),
		SignupUseCase:                auth.NewSignupUseCase(auths, sessions, logger),
		GetActiveSessionBoardUseCase: session.NewGetActiveSessionBoardUseCase(sessions, store),
		SyncSessionBoardUseCase:      session.NewSyncSessionBoardUseCase(boards, store, logger),
	}
}

func newTestModel(t *testing.T, boards ...string) (*Model, *fakeapi.Backend, []string) {
	t.Helper()
	backend := fakeapi.NewBackend(t)
	ids := backend.SeedBoards(boards...)

	m := NewModel(newTestContainer(t, backend), ScreenBoard)
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: 180, Height: 50})
	return m, backend, ids
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m *Model, k string) tea.Cmd {
	_, cmd := m.Update(keyMsg(k))
	return cmd
}

// run executes one of the model's own commands and feeds the result back
func run(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	if msg := cmd(); msg != nil {
		m.Update(msg)
	}
}

func TestLoadSelectsFirstBoard(t *testing.T) {
	m, _, ids := newTestModel(t, "Work", "Home")
	run(t, m, m.loadCmd())

	assert.Equal(t, ids[0], m.state.Boards.ActiveBoard)
	view := m.View()
	assert.Contains(t, view, "Board: Work")
	assert.Contains(t, view, "Home")
	assert.Contains(t, view, "To Do (0)")
	assert.Contains(t, view, "In Progress (0)")
	assert.Contains(t, view, "Done (0)")
}

func TestLoadRestoresSessionBoard(t *testing.T) {
	m, _, ids := newTestModel(t, "Work", "Home")
	require.NoError(t, m.container.SessionRepo.Save(entity.Session{ActiveBoardID: ids[1]}))

	run(t, m, m.loadCmd())
	assert.Equal(t, ids[1], m.state.Boards.ActiveBoard)
	assert.Contains(t, m.View(), "Board: Home")
}

func TestLoadFailureShowsError(t *testing.T) {
	m, backend, _ := newTestModel(t, "Work")
	backend.FailWith("GET /getboard", 500)

	run(t, m, m.loadCmd())
	assert.Contains(t, m.View(), board.MsgLoadFailed)
}

func TestAddTaskIgnoredWithoutBoard(t *testing.T) {
	m, _, _ := newTestModel(t)
	run(t, m, m.loadCmd())

	press(m, "a")
	assert.Equal(t, overlayNone, m.overlay)
	assert.Contains(t, m.View(), "No board selected")
}

func TestAddTaskFlow(t *testing.T) {
	m, backend, ids := newTestModel(t, "Work")
	run(t, m, m.loadCmd())

	press(m, "a")
	require.Equal(t, overlayTaskForm, m.overlay)
	assert.Contains(t, m.View(), "Add New Task")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Write tests")})
	cmd := press(m, "enter")
	run(t, m, cmd)

	assert.Equal(t, overlayNone, m.overlay)
	assert.Equal(t, 1, backend.TaskCount())
	col := m.state.Column(valueobject.StatusTodo)
	require.Len(t, col, 1)
	assert.Equal(t, "Write tests", col[0].Title)
	assert.Equal(t, ids[0], col[0].BoardID)
	assert.Contains(t, m.View(), "Write tests")
}

func TestTaskFormKeepsOpenOnValidationError(t *testing.T) {
	m, backend, _ := newTestModel(t, "Work")
	run(t, m, m.loadCmd())

	press(m, "a")
	run(t, m, press(m, "enter"))

	assert.Equal(t, overlayTaskForm, m.overlay)
	assert.Equal(t, "Title is required", m.taskForm.Error)
	assert.Contains(t, m.View(), "Title is required")
	assert.Zero(t, backend.CallCount("POST /tasks"))
	assert.False(t, m.taskForm.IsLoading)
	assert.Equal(t, "Create Task", m.taskForm.SubmitLabel())
	assert.NotContains(t, m.View(), "creating...")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Second try")})
	run(t, m, press(m, "enter"))
	assert.Equal(t, overlayNone, m.overlay)
	assert.Equal(t, 1, backend.TaskCount())
}

func TestEditTaskPrefillsForm(t *testing.T) {
	m, backend, ids := newTestModel(t, "Work")
	backend.SeedTask(dto.TaskDTO{Title: "Existing", Status: "todo", Priority: "high", BoardID: ids[0]})
	run(t, m, m.loadCmd())

	press(m, "e")
	require.Equal(t, overlayTaskForm, m.overlay)
	assert.True(t, m.taskForm.IsEdit())
	assert.Equal(t, "Existing", m.taskInputs[fieldTitle].Value())
	assert.Contains(t, m.View(), "Edit Task")

	press(m, "esc")
	assert.Equal(t, overlayNone, m.overlay)
}

func TestAdvanceTask(t *testing.T) {
	m, backend, ids := newTestModel(t, "Work")
	backend.SeedTask(dto.TaskDTO{Title: "Move me", Status: "todo", Priority: "low", BoardID: ids[0]})
	run(t, m, m.loadCmd())

	run(t, m, press(m, "m"))
	require.Len(t, m.state.Column(valueobject.StatusInProgress), 1)
	assert.Empty(t, m.state.Column(valueobject.StatusTodo))
}

func TestDeleteTaskNeedsConfirmation(t *testing.T) {
	m, backend, ids := newTestModel(t, "Work")
	backend.SeedTask(dto.TaskDTO{Title: "Doomed", Status: "todo", Priority: "low", BoardID: ids[0]})
	run(t, m, m.loadCmd())

	press(m, "x")
	require.Equal(t, overlayConfirm, m.overlay)
	press(m, "n")
	assert.Equal(t, overlayNone, m.overlay)
	assert.Equal(t, 1, backend.TaskCount())

	press(m, "x")
	run(t, m, press(m, "y"))
	assert.Zero(t, backend.TaskCount())
	assert.Empty(t, m.state.Tasks.Tasks)
}

func TestDeleteLastBoardRejected(t *testing.T) {
	m, backend, _ := newTestModel(t, "Only")
	run(t, m, m.loadCmd())

	cmd := press(m, "D")
	assert.Equal(t, overlayNone, m.overlay)
	run(t, m, cmd)

	assert.Len(t, m.state.Boards.Boards, 1)
	assert.Contains(t, m.View(), "You must have at least one board")
	assert.Zero(t, backend.CallCount("DELETE /deleteboard/{id}"))
}

func TestDeleteBoardAfterConfirm(t *testing.T) {
	m, _, ids := newTestModel(t, "Work", "Home")
	run(t, m, m.loadCmd())

	press(m, "D")
	require.Equal(t, overlayConfirm, m.overlay)
	assert.Contains(t, m.View(), board.DeletePrompt)
	run(t, m, press(m, "y"))

	require.Len(t, m.state.Boards.Boards, 1)
	assert.Equal(t, ids[1], m.state.Boards.ActiveBoard)
}

func TestCreateBoardOverlay(t *testing.T) {
	m, backend, _ := newTestModel(t, "Work")
	run(t, m, m.loadCmd())

	press(m, "n")
	require.Equal(t, overlayBoardForm, m.overlay)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Frontend Tasks")})
	run(t, m, press(m, "enter"))

	assert.Equal(t, overlayNone, m.overlay)
	assert.Equal(t, []string{"Work", "Frontend Tasks"}, backend.BoardNames())
	assert.Contains(t, m.View(), "Frontend Tasks")
}

func TestCreateBoardBlankNameKeepsOverlay(t *testing.T) {
	m, backend, _ := newTestModel(t, "Work")
	run(t, m, m.loadCmd())

	press(m, "n")
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("   ")})
	run(t, m, press(m, "enter"))

	assert.Equal(t, overlayBoardForm, m.overlay)
	assert.Equal(t, "Board name cannot be empty", m.state.Boards.Error)
	assert.Zero(t, backend.CallCount("POST /addboard"))

	press(m, "esc")
	assert.Equal(t, overlayNone, m.overlay)
}

func TestMutationsIgnoredWhileLoading(t *testing.T) {
	m, _, _ := newTestModel(t, "Work")
	run(t, m, m.loadCmd())

	m.container.Store.Dispatch(state.BoardsRequested{})
	m.Update(stateChangedMsg(m.container.Store.State()))
	require.True(t, m.state.Boards.IsLoading)

	press(m, "n")
	assert.Equal(t, overlayNone, m.overlay)
	press(m, "a")
	assert.Equal(t, overlayNone, m.overlay)
}

func TestSidebarSelectPersistsSession(t *testing.T) {
	m, _, ids := newTestModel(t, "Work", "Home")
	run(t, m, m.loadCmd())

	press(m, "tab")
	press(m, "j")
	press(m, "enter")

	assert.Equal(t, ids[1], m.state.Boards.ActiveBoard)
	assert.Equal(t, paneColumns, m.focus)

	s, err := m.container.SessionRepo.Load()
	require.NoError(t, err)
	assert.Equal(t, ids[1], s.ActiveBoardID)
}

func TestSessionChangeSwitchesBoard(t *testing.T) {
	m, _, ids := newTestModel(t, "Work", "Home")
	run(t, m, m.loadCmd())

	run(t, m, m.syncSessionCmd(entity.Session{ActiveBoardID: ids[1]}))
	assert.Equal(t, ids[1], m.state.Boards.ActiveBoard)
	assert.Contains(t, m.View(), "Switched to Home")
}

func TestAuthScreenLogin(t *testing.T) {
	m, backend, _ := newTestModel(t, "Work")
	backend.SeedUser("Ada", "ada@example.com", "secret")
	run(t, m, m.loadCmd())

	press(m, "L")
	require.Equal(t, ScreenAuth, m.screen)
	assert.Contains(t, m.View(), "Signup")

	press(m, "ctrl+t")
	assert.Contains(t, m.View(), "Login")
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ada@example.com")})
	press(m, "tab")
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("secret")})
	run(t, m, press(m, "enter"))

	assert.Equal(t, ScreenBoard, m.screen)
	assert.Contains(t, m.View(), "Login successful")
}

func TestAuthScreenRejectedStays(t *testing.T) {
	m, _, _ := newTestModel(t, "Work")

	press(m, "L")
	press(m, "ctrl+t")
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("nobody@example.com")})
	press(m, "tab")
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("pw")})
	run(t, m, press(m, "enter"))

	assert.Equal(t, ScreenAuth, m.screen)
	assert.Contains(t, m.View(), "Invalid email or password")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
	assert.Equal(t, "", truncate("abc", 0))
}
