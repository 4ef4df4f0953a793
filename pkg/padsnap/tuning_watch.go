package padsnap

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/padsnap/padsnap/pkg/padsnap/internal"
)

// WatchTuning watches the tuning file and delivers a freshly loaded Tuning
// every time it is written. The parent directory is watched rather than the
// file itself so editors that replace the file atomically still trigger a
// reload. The channel closes when ctx is done; hosts apply received tunings
// between frames with Engine.SetTuning.
func WatchTuning(ctx context.Context, path string) (<-chan Tuning, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch tuning: %w", err)
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch tuning: %w", err)
	}

	base := filepath.Base(path)
	updates := make(chan Tuning, 1)

	go func() {
		defer watcher.Close()
		defer close(updates)

		log := internal.GetEngineLogger()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}

				tuning, err := LoadTuning(path)
				if err != nil {
					log.Warn("tuning reload failed", "path", path, "error", err)
					continue
				}

				// Drop the stale pending value so the latest always wins.
				select {
				case <-updates:
				default:
				}
				updates <- tuning

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("tuning watcher error", "error", err)
			}
		}
	}()

	return updates, nil
}
