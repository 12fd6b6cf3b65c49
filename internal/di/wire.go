//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"taskboard/internal/application/usecase/auth"
	"taskboard/internal/application/usecase/board"
	"taskboard/internal/application/usecase/session"
	"taskboard/internal/application/usecase/task"
)

// InitializeContainer sets up all dependencies
func InitializeContainer(overrides Overrides) (*Container, func(), error) {
	wire.Build(
		// Config and logging
		ProvideConfig,
		ProvideLogger,

		// Remote API
		ProvideAPIClient,

		// State
		ProvideStore,
		ProvideClock,

		// Repositories
		ProvideBoardRepository,
		ProvideTaskRepository,
		ProvideAuthRepository,
		ProvideSessionRepository,

		// Use Cases - Board
		board.NewRefreshBoardsUseCase,
		board.NewCreateBoardUseCase,
		board.NewUpdateBoardUseCase,
		board.NewDeleteBoardUseCase,
		board.NewSelectBoardUseCase,

		// Use Cases - Task
		task.NewListTasksUseCase,
		task.NewCreateTaskUseCase,
		task.NewUpdateTaskUseCase,
		task.NewMoveTaskUseCase,
		task.NewDeleteTaskUseCase,

		// Use Cases - Auth
		auth.NewLoginUseCase,
		auth.NewSignupUseCase,

		// Use Cases - Session
		session.NewGetActiveSessionBoardUseCase,
		session.NewSyncSessionBoardUseCase,

		// Wire the container
		wire.Struct(new(Container), "*"),
	)
	return nil, nil, nil
}
