package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"taskboard/internal/application/form"
	"taskboard/internal/application/state"
	"taskboard/internal/application/usecase/board"
	"taskboard/internal/application/usecase/task"
	"taskboard/internal/domain/entity"
)

// stateChangedMsg carries a store snapshot
type stateChangedMsg state.State

// sessionChangedMsg is sent when another process rewrites the session file
type sessionChangedMsg entity.Session

// loadedMsg is sent once boards and tasks have been fetched
type loadedMsg struct {
	taskErr error
}

// boardSavedMsg reports a create or rename; the form is the submitted copy
type boardSavedMsg struct {
	form  *form.BoardForm
	board entity.Board
	err   error
}

// boardDeletedMsg reports a board deletion
type boardDeletedMsg struct{ err error }

// taskSavedMsg reports a task form submission
type taskSavedMsg struct {
	form *form.TaskForm
	task entity.Task
	err  error
}

// taskChangedMsg reports a move or delete
type taskChangedMsg struct {
	action string
	err    error
}

// authDoneMsg reports an auth form submission
type authDoneMsg struct {
	form     *form.AuthForm
	navigate bool
	err      error
}

// sessionSyncedMsg reports the outcome of following the session file
type sessionSyncedMsg struct {
	changed bool
	err     error
}

// waitForState blocks until the store changes
func waitForState(ch <-chan state.State) tea.Cmd {
	return func() tea.Msg {
		return stateChangedMsg(<-ch)
	}
}

// waitForSession blocks until the session file changes
func waitForSession(ch <-chan entity.Session) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return sessionChangedMsg(s)
	}
}

// loadCmd fetches boards and tasks, then restores the board remembered in the session
func (m *Model) loadCmd() tea.Cmd {
	c := m.container
	ctx := m.ctx
	return func() tea.Msg {
		if _, err := c.RefreshBoardsUseCase.Execute(ctx); err != nil {
			// The store already carries the message
			return loadedMsg{}
		}

		if id, err := c.GetActiveSessionBoardUseCase.Execute(ctx); err != nil {
			c.Logger.Warn("failed to read session", zap.Error(err))
		} else if id != "" {
			c.Store.Dispatch(state.ActiveBoardSelected{ID: id})
		}

		_, err := c.ListTasksUseCase.Execute(ctx)
		return loadedMsg{taskErr: err}
	}
}

func (m *Model) submitBoardCmd() tea.Cmd {
	submitted := *m.boardForm
	ctx := m.ctx
	return func() tea.Msg {
		b, err := submitted.Submit(ctx)
		return boardSavedMsg{form: &submitted, board: b, err: err}
	}
}

func (m *Model) deleteBoardCmd(id string) tea.Cmd {
	uc := m.container.DeleteBoardUseCase
	ctx := m.ctx
	return func() tea.Msg {
		// The confirmation overlay has already been answered
		return boardDeletedMsg{err: uc.Execute(ctx, id, board.AlwaysConfirm)}
	}
}

func (m *Model) submitTaskCmd() tea.Cmd {
	submitted := *m.taskForm
	submitted.OnSaved = nil
	ctx := m.ctx
	return func() tea.Msg {
		t, err := submitted.Submit(ctx)
		return taskSavedMsg{form: &submitted, task: t, err: err}
	}
}

func (m *Model) advanceTaskCmd(id string) tea.Cmd {
	uc := m.container.MoveTaskUseCase
	ctx := m.ctx
	return func() tea.Msg {
		_, err := uc.Advance(ctx, id)
		return taskChangedMsg{action: "move", err: err}
	}
}

func (m *Model) deleteTaskCmd(id string) tea.Cmd {
	uc := m.container.DeleteTaskUseCase
	ctx := m.ctx
	return func() tea.Msg {
		return taskChangedMsg{action: "delete", err: uc.Execute(ctx, id, task.AlwaysConfirm)}
	}
}

func (m *Model) submitAuthCmd() tea.Cmd {
	submitted := *m.authForm
	ctx := m.ctx
	return func() tea.Msg {
		navigate := false
		submitted.OnSuccess = func(form.AuthMode) { navigate = true }
		_, err := submitted.Submit(ctx)
		return authDoneMsg{form: &submitted, navigate: navigate, err: err}
	}
}

func (m *Model) syncSessionCmd(s entity.Session) tea.Cmd {
	uc := m.container.SyncSessionBoardUseCase
	ctx := m.ctx
	return func() tea.Msg {
		changed, err := uc.Execute(ctx, s)
		return sessionSyncedMsg{changed: changed, err: err}
	}
}
