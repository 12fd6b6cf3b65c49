package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/application/state"
	"taskboard/internal/application/usecase/board"
	"taskboard/internal/application/usecase/task"
	"taskboard/internal/domain/entity"
)

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case stateChangedMsg:
		cmd = waitForState(m.stateCh)

	case sessionChangedMsg:
		cmd = tea.Batch(m.syncSessionCmd(entity.Session(msg)), waitForSession(m.sessions))

	case sessionSyncedMsg:
		if msg.err != nil {
			m.setError("Could not switch board: " + msg.err.Error())
		} else if msg.changed {
			m.setStatus("Switched to " + m.container.Store.State().CurrentBoard().Name)
		}

	case loadedMsg:
		if msg.taskErr != nil {
			m.setError(task.MsgLoadFailed)
		}

	case boardSavedMsg:
		m.submitting = false
		if msg.err != nil {
			// Input is kept; the store carries the message
			m.boardForm = msg.form
			break
		}
		if msg.form.IsEdit() {
			m.setStatus("Board renamed")
		} else {
			m.setStatus("Board created: " + msg.board.Name)
		}
		m.closeOverlay()

	case boardDeletedMsg:
		m.closeOverlay()
		if msg.err == nil {
			m.setStatus("Board deleted")
			m.focusedColumn, m.focusedTask = 0, 0
		}

	case taskSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.taskForm = msg.form
			break
		}
		if msg.form.IsEdit() {
			m.setStatus("Task updated")
		} else {
			m.setStatus("Task created")
		}
		m.closeOverlay()

	case taskChangedMsg:
		if msg.err != nil {
			fallback := task.MsgUpdateFailed
			if msg.action == "delete" {
				fallback = task.MsgDeleteFailed
			}
			m.setError(task.UserMessage(msg.err, fallback))
		}

	case authDoneMsg:
		m.submitting = false
		m.authForm = msg.form
		if msg.navigate {
			m.screen = ScreenBoard
			m.setStatus(msg.form.Message)
			m.resetAuthForm()
		}

	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}

	m.state = m.container.Store.State()
	m.syncCursors()
	m.updateScroll(m.maxVisibleTasks())
	return m, cmd
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusIsError = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusIsError = true
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if m.screen == ScreenAuth {
		return m.handleAuthKey(msg)
	}

	switch m.overlay {
	case overlayTaskForm:
		return m.handleTaskFormKey(msg)
	case overlayBoardForm:
		return m.handleBoardFormKey(msg)
	case overlayConfirm:
		return m.handleConfirmKey(msg)
	}

	return m.handleBoardKey(msg)
}

func (m *Model) handleBoardKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit

	case msg.Type == tea.KeyEsc:
		m.status = ""
		m.container.Store.Dispatch(state.ErrorDismissed{})
		return nil

	case key.Matches(msg, keys.SwitchPane):
		if m.focus == paneColumns {
			m.focus = paneSidebar
		} else {
			m.focus = paneColumns
		}
		return nil

	case key.Matches(msg, keys.Auth):
		m.screen = ScreenAuth
		m.resetAuthForm()
		return textinput.Blink

	case key.Matches(msg, keys.Left):
		m.moveLeft()
		return nil

	case key.Matches(msg, keys.Right):
		m.moveRight()
		return nil

	case key.Matches(msg, keys.Up):
		m.moveUp()
		return nil

	case key.Matches(msg, keys.Down):
		m.moveDown()
		return nil
	}

	// Everything below changes server state and waits for the current call
	if m.state.Boards.IsLoading {
		return nil
	}

	switch {
	case key.Matches(msg, keys.Refresh):
		return m.loadCmd()

	case key.Matches(msg, keys.Select):
		if m.focus == paneSidebar {
			m.selectBoard()
			return nil
		}
		return m.editTask()

	case key.Matches(msg, keys.AddTask):
		if m.state.Boards.ActiveBoard == "" {
			return nil
		}
		m.openTaskForm(nil)
		return textinput.Blink

	case key.Matches(msg, keys.EditTask):
		return m.editTask()

	case key.Matches(msg, keys.DeleteTask):
		t := m.currentTask()
		if t == nil {
			return nil
		}
		id := t.ID
		m.askConfirm(task.DeletePrompt, func() tea.Cmd { return m.deleteTaskCmd(id) })
		return nil

	case key.Matches(msg, keys.AdvanceTask):
		t := m.currentTask()
		if t == nil {
			return nil
		}
		return m.advanceTaskCmd(t.ID)

	case key.Matches(msg, keys.NewBoard):
		m.openBoardForm(nil)
		return textinput.Blink

	case key.Matches(msg, keys.RenameBoard):
		b := m.targetBoard()
		if b == nil {
			return nil
		}
		m.openBoardForm(b)
		return textinput.Blink

	case key.Matches(msg, keys.DeleteBoard):
		b := m.targetBoard()
		if b == nil {
			return nil
		}
		id := b.ID
		if len(m.state.Boards.Boards) <= 1 {
			// Rejected locally without asking
			return m.deleteBoardCmd(id)
		}
		m.askConfirm(board.DeletePrompt, func() tea.Cmd { return m.deleteBoardCmd(id) })
		return nil
	}

	return nil
}

// targetBoard is the board under the sidebar cursor when the sidebar has focus,
// otherwise the active board
func (m *Model) targetBoard() *entity.Board {
	if m.focus == paneSidebar {
		return m.cursorBoard()
	}
	return state.FindBoard(m.state.Boards.Boards, m.state.Boards.ActiveBoard)
}

func (m *Model) selectBoard() {
	b := m.cursorBoard()
	if b == nil {
		return
	}
	if err := m.container.SelectBoardUseCase.Execute(b.ID); err != nil {
		m.setError(err.Error())
		return
	}
	m.focus = paneColumns
	m.focusedColumn, m.focusedTask = 0, 0
	m.scrollOffsets = [len(columnStatuses)]int{}
}

func (m *Model) editTask() tea.Cmd {
	t := m.currentTask()
	if t == nil {
		return nil
	}
	m.openTaskForm(t)
	return textinput.Blink
}

func (m *Model) askConfirm(prompt string, onYes func() tea.Cmd) {
	m.confirm = &confirmation{prompt: prompt, onYes: onYes}
	m.overlay = overlayConfirm
}

// moveLeft moves focus to the left column
func (m *Model) moveLeft() {
	if m.focus == paneColumns && m.focusedColumn > 0 {
		m.focusedColumn--
		m.focusedTask = 0
		m.clampTaskFocus()
	}
}

// moveRight moves focus to the right column
func (m *Model) moveRight() {
	if m.focus == paneColumns && m.focusedColumn < len(columnStatuses)-1 {
		m.focusedColumn++
		m.focusedTask = 0
		m.clampTaskFocus()
	}
}

// moveUp moves focus to the task or board above
func (m *Model) moveUp() {
	if m.focus == paneSidebar {
		if m.focusedBoard > 0 {
			m.focusedBoard--
		}
		return
	}
	if m.focusedTask > 0 {
		m.focusedTask--
	}
}

// moveDown moves focus to the task or board below
func (m *Model) moveDown() {
	if m.focus == paneSidebar {
		if m.focusedBoard < len(m.state.Boards.Boards)-1 {
			m.focusedBoard++
		}
		return
	}
	if m.focusedTask < m.currentColumnTaskCount()-1 {
		m.focusedTask++
	}
}

func (m *Model) handleTaskFormKey(msg tea.KeyMsg) tea.Cmd {
	if m.submitting {
		return nil
	}

	switch msg.String() {
	case "esc":
		m.closeOverlay()
		return nil

	case "enter":
		m.storeTaskInputs()
		m.submitting = true
		m.taskForm.IsLoading = true
		return m.submitTaskCmd()

	case "tab", "down":
		m.taskField = (m.taskField + 1) % taskFieldCount
		m.focusTaskField()
		return nil

	case "shift+tab", "up":
		m.taskField = (m.taskField + taskFieldCount - 1) % taskFieldCount
		m.focusTaskField()
		return nil
	}

	switch m.taskField {
	case fieldStatus:
		switch msg.String() {
		case " ", "right", "l":
			m.taskForm.CycleStatus()
		case "left", "h":
			m.taskForm.CycleStatus()
			m.taskForm.CycleStatus()
		}
		return nil

	case fieldPriority:
		switch msg.String() {
		case " ", "right", "l":
			m.taskForm.CyclePriority()
		case "left", "h":
			m.taskForm.CyclePriority()
			m.taskForm.CyclePriority()
		}
		return nil
	}

	var cmd tea.Cmd
	m.taskInputs[m.taskField], cmd = m.taskInputs[m.taskField].Update(msg)
	return cmd
}

func (m *Model) handleBoardFormKey(msg tea.KeyMsg) tea.Cmd {
	if m.submitting {
		return nil
	}

	switch msg.String() {
	case "esc":
		m.boardForm.Clear()
		m.closeOverlay()
		return nil

	case "enter":
		m.boardForm.Name = m.boardInput.Value()
		m.submitting = true
		return m.submitBoardCmd()
	}

	var cmd tea.Cmd
	m.boardInput, cmd = m.boardInput.Update(msg)
	return cmd
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y", "enter":
		onYes := m.confirm.onYes
		m.closeOverlay()
		return onYes()
	case "n", "N", "esc", "q":
		m.closeOverlay()
	}
	return nil
}

func (m *Model) handleAuthKey(msg tea.KeyMsg) tea.Cmd {
	if m.submitting {
		return nil
	}

	switch msg.String() {
	case "esc":
		m.screen = ScreenBoard
		m.resetAuthForm()
		return nil

	case "ctrl+t":
		m.storeAuthInputs()
		m.authForm.Toggle()
		m.authField = m.authFields()[0]
		m.focusAuthField()
		return nil

	case "tab", "down", "shift+tab", "up":
		fields := m.authFields()
		pos := 0
		for i, f := range fields {
			if f == m.authField {
				pos = i
			}
		}
		if msg.String() == "tab" || msg.String() == "down" {
			pos = (pos + 1) % len(fields)
		} else {
			pos = (pos + len(fields) - 1) % len(fields)
		}
		m.authField = fields[pos]
		m.focusAuthField()
		return nil

	case "enter":
		m.storeAuthInputs()
		m.submitting = true
		return m.submitAuthCmd()
	}

	var cmd tea.Cmd
	m.authInputs[m.authField], cmd = m.authInputs[m.authField].Update(msg)
	return cmd
}
