package di

import (
	"go.uber.org/zap"

	"taskboard/internal/application/state"
	"taskboard/internal/application/usecase/auth"
	"taskboard/internal/application/usecase/board"
	"taskboard/internal/application/usecase/session"
	"taskboard/internal/application/usecase/task"
	"taskboard/internal/domain/repository"
	"taskboard/internal/infrastructure/api"
	"taskboard/internal/infrastructure/config"
)

// Container holds all application dependencies
type Container struct {
	// Config
	Config *config.Config
	Logger *zap.Logger

	// Remote API and local state
	Client *api.Client
	Store  *state.Store

	// Repositories
	BoardRepo   repository.BoardRepository
	TaskRepo    repository.TaskRepository
	AuthRepo    repository.AuthRepository
	SessionRepo repository.SessionRepository

	// Use Cases - Board
	RefreshBoardsUseCase *board.RefreshBoardsUseCase
	CreateBoardUseCase   *board.CreateBoardUseCase
	UpdateBoardUseCase   *board.UpdateBoardUseCase
	DeleteBoardUseCase   *board.DeleteBoardUseCase
	SelectBoardUseCase   *board.SelectBoardUseCase

	// Use Cases - Task
	ListTasksUseCase  *task.ListTasksUseCase
	CreateTaskUseCase *task.CreateTaskUseCase
	UpdateTaskUseCase *task.UpdateTaskUseCase
	MoveTaskUseCase   *task.MoveTaskUseCase
	DeleteTaskUseCase *task.DeleteTaskUseCase

	// Use Cases - Auth
	LoginUseCase  *auth.LoginUseCase
	SignupUseCase *auth.SignupUseCase

	// Use Cases - Session
	GetActiveSessionBoardUseCase *session.GetActiveSessionBoardUseCase
	SyncSessionBoardUseCase      *session.SyncSessionBoardUseCase
}
