package filesystem

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"taskboard/internal/domain/entity"
	"taskboard/internal/infrastructure/persistence/mapper"
	"taskboard/pkg/filesystem"
)

// SessionRepositoryImpl stores the session as a YAML file
type SessionRepositoryImpl struct {
	path string
}

// NewSessionRepository creates a session repository backed by path
func NewSessionRepository(path string) *SessionRepositoryImpl {
	return &SessionRepositoryImpl{path: path}
}

// Load reads the session file. A missing file yields an empty session.
func (r *SessionRepositoryImpl) Load() (entity.Session, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return entity.Session{}, nil
	}
	if err != nil {
		return entity.Session{}, fmt.Errorf("failed to read session file: %w", err)
	}

	var storage mapper.SessionStorage
	if err := yaml.Unmarshal(data, &storage); err != nil {
		return entity.Session{}, fmt.Errorf("failed to parse session file: %w", err)
	}

	return mapper.SessionFromStorage(storage), nil
}

// Save atomically writes the session file
func (r *SessionRepositoryImpl) Save(session entity.Session) error {
	data, err := yaml.Marshal(mapper.SessionToStorage(session))
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := filesystem.SafeWrite(r.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Path returns the session file location
func (r *SessionRepositoryImpl) Path() string {
	return r.path
}
