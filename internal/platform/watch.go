package platform

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce coalesces the burst of events an editor produces on save
const DefaultWatchDebounce = 100 * time.Millisecond

// WatchFile calls onChange after path is written or recreated, until ctx is
// cancelled. The parent directory is watched so that editors replacing the
// file on save are noticed. onChange runs on the watcher goroutine; UI code
// must hand the work over with fyne.Do.
func WatchFile(ctx context.Context, path string, debounce time.Duration, onChange func()) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	go func() {
		defer watcher.Close()

		var timer *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != absPath {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					timer.Reset(debounce)
				}
				fire = timer.C

			case <-fire:
				fire = nil
				if onChange != nil {
					onChange()
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Form watcher error for %s: %v", absPath, err)
			}
		}
	}()

	return nil
}
