package repository

import "taskboard/internal/domain/entity"

// SessionRepository persists the local session
type SessionRepository interface {
	// Load returns the stored session, or a zero session if none exists
	Load() (entity.Session, error)

	// Save stores the session
	Save(session entity.Session) error

	// Path returns where the session lives, for watchers
	Path() string
}
