package filesystem

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"
	"taskboard/pkg/filesystem"
)

// SessionWatcher reports session changes made by other processes, such as
// `taskboard board switch` run from another shell.
type SessionWatcher struct {
	repo    repository.SessionRepository
	watcher *fsnotify.Watcher
	logger  *zap.Logger
}

// NewSessionWatcher creates a watcher for the repository's session file
func NewSessionWatcher(repo repository.SessionRepository, logger *zap.Logger) (*SessionWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	return &SessionWatcher{repo: repo, watcher: w, logger: logger}, nil
}

// Start watches until ctx is cancelled. The session file is replaced atomically on
// save, so the parent directory is watched and events are filtered by name.
func (w *SessionWatcher) Start(ctx context.Context) (<-chan entity.Session, error) {
	path := filepath.Clean(w.repo.Path())
	dir := filepath.Dir(path)
	if err := filesystem.EnsureDir(dir, 0755); err != nil {
		return nil, err
	}
	if err := w.watcher.Add(dir); err != nil {
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	out := make(chan entity.Session, 1)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}

				session, err := w.repo.Load()
				if err != nil {
					w.logger.Warn("failed to reload session", zap.String("path", path), zap.Error(err))
					continue
				}

				// only the latest session matters to a slow reader
				select {
				case <-out:
				default:
				}
				out <- session

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.logger.Warn("session watcher error", zap.Error(err))
			}
		}
	}()

	return out, nil
}

// Close stops the underlying watcher
func (w *SessionWatcher) Close() error {
	return w.watcher.Close()
}
