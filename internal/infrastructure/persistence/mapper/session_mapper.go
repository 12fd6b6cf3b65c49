package mapper

import (
	"time"

	"taskboard/internal/domain/entity"
)

// SessionStorage represents the on-disk session format
type SessionStorage struct {
	ActiveBoardID string    `yaml:"active_board_id,omitempty"`
	UserEmail     string    `yaml:"user_email,omitempty"`
	UpdatedAt     time.Time `yaml:"updated_at"`
}

// SessionToStorage converts a Session entity to storage format
func SessionToStorage(s entity.Session) SessionStorage {
	return SessionStorage{
		ActiveBoardID: s.ActiveBoardID,
		UserEmail:     s.UserEmail,
		UpdatedAt:     s.UpdatedAt.UTC(),
	}
}

// SessionFromStorage converts storage format to a Session entity
func SessionFromStorage(s SessionStorage) entity.Session {
	return entity.Session{
		ActiveBoardID: s.ActiveBoardID,
		UserEmail:     s.UserEmail,
		UpdatedAt:     s.UpdatedAt,
	}
}
