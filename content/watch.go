package content

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/xy-planning-network/basecamp/logger"
	"github.com/xy-planning-network/basecamp/metrics"
)

// Watch drops cached documents as their files in dir change.
//
// Watch returns once the watcher is running.
// The returned channel closes after ctx is done and the watcher has shut down.
func (s *Store) Watch(ctx context.Context, dir string) (<-chan struct{}, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	s.logger.Info("watching content for changes", &logger.LogContext{Data: map[string]any{"dir": dir}})

	done := make(chan struct{})
	go s.watchLoop(ctx, w, done)

	return done, nil
}

func (s *Store) watchLoop(ctx context.Context, w *fsnotify.Watcher, done chan<- struct{}) {
	defer close(done)
	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.Events:
			if !ok {
				return
			}

			name, ok := slugOf(event.Name)
			if !ok {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				s.Invalidate(name)
				metrics.ContentReloads.Inc()
				s.logger.Debug("content changed", &logger.LogContext{
					Data: map[string]any{"slug": name, "op": event.Op.String()},
				})
			}

		case err, ok := <-w.Errors:
			if !ok {
				return
			}

			s.logger.Error("content watcher error", &logger.LogContext{Error: err})
		}
	}
}
