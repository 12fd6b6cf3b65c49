package di

import (
	"time"

	"go.uber.org/zap"

	"taskboard/internal/application/state"
	"taskboard/internal/application/usecase/task"
	"taskboard/internal/domain/repository"
	"taskboard/internal/infrastructure/api"
	"taskboard/internal/infrastructure/config"
	"taskboard/internal/infrastructure/logging"
	"taskboard/internal/infrastructure/persistence/filesystem"
)

// Overrides carries command-line settings that win over the config file
type Overrides struct {
	APIURL string
}

// Provider functions

func ProvideConfig(overrides Overrides) (*config.Config, error) {
	loader, err := config.NewLoader()
	if err != nil {
		return nil, err
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if overrides.APIURL != "" {
		cfg.API.BaseURL = overrides.APIURL
	}
	return cfg, nil
}

func ProvideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = logger.Sync()
	}
	return logger, cleanup, nil
}

func ProvideAPIClient(cfg *config.Config, logger *zap.Logger) (*api.Client, error) {
	return api.New(cfg.API.BaseURL,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
	)
}

func ProvideStore() *state.Store {
	return state.NewStore(state.State{})
}

func ProvideClock() task.Clock {
	return time.Now
}

func ProvideBoardRepository(client *api.Client) repository.BoardRepository {
	return api.NewBoardRepository(client)
}

func ProvideTaskRepository(client *api.Client) repository.TaskRepository {
	return api.NewTaskRepository(client)
}

func ProvideAuthRepository(client *api.Client) repository.AuthRepository {
	return api.NewAuthRepository(client)
}

func ProvideSessionRepository(cfg *config.Config) repository.SessionRepository {
	return filesystem.NewSessionRepository(cfg.Session.Path)
}
