package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"taskboard/internal/application/form"
	"taskboard/internal/application/state"
	"taskboard/internal/di"
	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/valueobject"
	"taskboard/internal/infrastructure/persistence/filesystem"
)

// Screen selects what the TUI shows
type Screen int

const (
	ScreenBoard Screen = iota
	ScreenAuth
)

type pane int

const (
	paneColumns pane = iota
	paneSidebar
)

type overlay int

const (
	overlayNone overlay = iota
	overlayTaskForm
	overlayBoardForm
	overlayConfirm
)

// Task form field order
const (
	fieldTitle = iota
	fieldDescription
	fieldAssignee
	fieldDueDate
	fieldStatus
	fieldPriority
	taskFieldCount
)

// Auth form field order
const (
	fieldName = iota
	fieldEmail
	fieldPassword
	authFieldCount
)

// confirmation is a pending yes/no question
type confirmation struct {
	prompt string
	onYes  func() tea.Cmd
}

// Model represents the TUI state
type Model struct {
	container *di.Container
	ctx       context.Context
	cancel    context.CancelFunc

	// Latest store snapshot; the store is the source of truth
	state state.State

	screen        Screen
	focus         pane
	focusedBoard  int                      // sidebar cursor
	focusedColumn int                      // which column is currently selected
	focusedTask   int                      // which task in the current column is selected
	scrollOffsets [len(columnStatuses)]int // scroll offset for each column (vertical)
	width         int
	height        int
	status        string // transient message under the board
	statusIsError bool

	overlay    overlay
	taskForm   *form.TaskForm
	taskInputs []textinput.Model
	taskField  int
	boardForm  *form.BoardForm
	boardInput textinput.Model
	confirm    *confirmation
	submitting bool

	authForm   *form.AuthForm
	authInputs []textinput.Model
	authField  int

	stateCh     chan state.State
	unsubscribe func()
	watcher     *filesystem.SessionWatcher
	sessions    <-chan entity.Session
}

// columnStatuses is the fixed left-to-right column order
var columnStatuses = [...]valueobject.Status{
	valueobject.StatusTodo,
	valueobject.StatusInProgress,
	valueobject.StatusDone,
}

// NewModel creates a new TUI model starting on screen
func NewModel(container *di.Container, screen Screen) *Model {
	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		container: container,
		ctx:       ctx,
		cancel:    cancel,
		state:     container.Store.State(),
		screen:    screen,
		stateCh:   make(chan state.State, 1),
	}

	// Coalesce store notifications; only the latest snapshot matters
	m.unsubscribe = container.Store.Subscribe(func(s state.State) {
		select {
		case m.stateCh <- s:
		default:
			select {
			case <-m.stateCh:
			default:
			}
			select {
			case m.stateCh <- s:
			default:
			}
		}
	})

	if container.Config.Session.Watch {
		m.startSessionWatcher()
	}

	m.resetAuthForm()
	return m
}

func (m *Model) startSessionWatcher() {
	logger := m.container.Logger
	watcher, err := filesystem.NewSessionWatcher(m.container.SessionRepo, logger)
	if err != nil {
		logger.Warn("session watcher unavailable", zap.Error(err))
		return
	}
	sessions, err := watcher.Start(m.ctx)
	if err != nil {
		logger.Warn("failed to watch session file", zap.Error(err))
		watcher.Close()
		return
	}
	m.watcher = watcher
	m.sessions = sessions
}

// Close releases the store subscription and the session watcher
func (m *Model) Close() {
	m.cancel()
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	if m.watcher != nil {
		m.watcher.Close()
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.loadCmd(),
		waitForState(m.stateCh),
		textinput.Blink,
	}
	if m.sessions != nil {
		cmds = append(cmds, waitForSession(m.sessions))
	}
	return tea.Batch(cmds...)
}

// Helper to get the tasks of a column on the active board
func (m *Model) columnTasks(col int) []entity.Task {
	if col < 0 || col >= len(columnStatuses) {
		return nil
	}
	return m.state.Column(columnStatuses[col])
}

// Helper to get task count in current column
func (m *Model) currentColumnTaskCount() int {
	return len(m.columnTasks(m.focusedColumn))
}

// Helper to get current task
func (m *Model) currentTask() *entity.Task {
	tasks := m.columnTasks(m.focusedColumn)
	if len(tasks) == 0 || m.focusedTask < 0 || m.focusedTask >= len(tasks) {
		return nil
	}
	t := tasks[m.focusedTask]
	return &t
}

// Helper to get the board under the sidebar cursor
func (m *Model) cursorBoard() *entity.Board {
	boards := m.state.Boards.Boards
	if m.focusedBoard < 0 || m.focusedBoard >= len(boards) {
		return nil
	}
	b := boards[m.focusedBoard]
	return &b
}

// Helper to update scroll position to keep focused task visible
func (m *Model) updateScroll(viewportHeight int) {
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	taskCount := m.currentColumnTaskCount()
	if taskCount == 0 {
		m.scrollOffsets[m.focusedColumn] = 0
		return
	}

	scrollOffset := m.scrollOffsets[m.focusedColumn]

	// Ensure focused task is visible
	if m.focusedTask < scrollOffset {
		m.scrollOffsets[m.focusedColumn] = m.focusedTask
	} else if m.focusedTask >= scrollOffset+viewportHeight {
		m.scrollOffsets[m.focusedColumn] = m.focusedTask - viewportHeight + 1
	}

	// Clamp scroll offset
	maxScroll := taskCount - viewportHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scrollOffsets[m.focusedColumn] > maxScroll {
		m.scrollOffsets[m.focusedColumn] = maxScroll
	}
	if m.scrollOffsets[m.focusedColumn] < 0 {
		m.scrollOffsets[m.focusedColumn] = 0
	}
}

// syncCursors keeps cursors inside the current state after it changes
func (m *Model) syncCursors() {
	boards := m.state.Boards.Boards
	if m.focusedBoard >= len(boards) {
		m.focusedBoard = len(boards) - 1
	}
	if m.focusedBoard < 0 {
		m.focusedBoard = 0
	}
	m.clampTaskFocus()
}

// clampTaskFocus ensures the task focus is within valid bounds
func (m *Model) clampTaskFocus() {
	taskCount := m.currentColumnTaskCount()
	if taskCount == 0 {
		m.focusedTask = 0
	} else if m.focusedTask >= taskCount {
		m.focusedTask = taskCount - 1
	}
}

// maxVisibleTasks estimates how many cards fit in a column (~5 lines per card)
func (m *Model) maxVisibleTasks() int {
	n := (m.height - 10) / 5
	if n < 1 {
		n = 1
	}
	return n
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = ""
	return ti
}

// openTaskForm shows the task form, editing t when it is non-nil
func (m *Model) openTaskForm(t *entity.Task) {
	c := m.container
	m.taskForm = form.NewTaskForm(c.CreateTaskUseCase, c.UpdateTaskUseCase, m.state.Boards.ActiveBoard, t)

	m.taskInputs = []textinput.Model{
		newInput("Task title", 200),
		newInput("Description", 1000),
		newInput("Assigned to", 100),
		newInput("YYYY-MM-DD", 10),
	}
	m.loadTaskInputs()
	m.taskField = fieldTitle
	m.focusTaskField()
	m.overlay = overlayTaskForm
}

// loadTaskInputs copies the form's fields into the text inputs
func (m *Model) loadTaskInputs() {
	f := m.taskForm
	m.taskInputs[fieldTitle].SetValue(f.Title)
	m.taskInputs[fieldDescription].SetValue(f.Description)
	m.taskInputs[fieldAssignee].SetValue(f.AssignedTo)
	m.taskInputs[fieldDueDate].SetValue(f.DueDate)
}

// storeTaskInputs copies the text inputs into the form
func (m *Model) storeTaskInputs() {
	f := m.taskForm
	f.Title = m.taskInputs[fieldTitle].Value()
	f.Description = m.taskInputs[fieldDescription].Value()
	f.AssignedTo = m.taskInputs[fieldAssignee].Value()
	f.DueDate = m.taskInputs[fieldDueDate].Value()
}

func (m *Model) focusTaskField() {
	for i := range m.taskInputs {
		if i == m.taskField {
			m.taskInputs[i].Focus()
		} else {
			m.taskInputs[i].Blur()
		}
	}
}

// openBoardForm shows the create-board form, or the rename form for b
func (m *Model) openBoardForm(b *entity.Board) {
	c := m.container
	if b == nil {
		m.boardForm = form.NewCreateBoardForm(c.CreateBoardUseCase)
	} else {
		m.boardForm = form.NewEditBoardForm(c.UpdateBoardUseCase, *b)
	}
	m.boardInput = newInput("Board name", 100)
	m.boardInput.SetValue(m.boardForm.Name)
	m.boardInput.Focus()
	m.overlay = overlayBoardForm
}

func (m *Model) closeOverlay() {
	m.overlay = overlayNone
	m.taskForm = nil
	m.taskInputs = nil
	m.boardForm = nil
	m.confirm = nil
	m.submitting = false
}

// resetAuthForm builds a fresh auth form. A successful submit returns to the board.
func (m *Model) resetAuthForm() {
	c := m.container
	m.authForm = form.NewAuthForm(c.LoginUseCase, c.SignupUseCase)

	password := newInput("Password", 100)
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	m.authInputs = []textinput.Model{
		newInput("Name", 100),
		newInput("Email", 200),
		password,
	}
	m.authField = fieldName
	m.focusAuthField()
}

// authFields lists the inputs shown in the current mode
func (m *Model) authFields() []int {
	if m.authForm.Mode == form.AuthModeLogin {
		return []int{fieldEmail, fieldPassword}
	}
	return []int{fieldName, fieldEmail, fieldPassword}
}

func (m *Model) focusAuthField() {
	for i := range m.authInputs {
		if i == m.authField {
			m.authInputs[i].Focus()
		} else {
			m.authInputs[i].Blur()
		}
	}
}

func (m *Model) storeAuthInputs() {
	m.authForm.Name = m.authInputs[fieldName].Value()
	m.authForm.Email = m.authInputs[fieldEmail].Value()
	m.authForm.Password = m.authInputs[fieldPassword].Value()
}
