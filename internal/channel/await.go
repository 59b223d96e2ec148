package channel

import (
	"context"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"followup/internal/domain"
	"followup/internal/logging"
)

// pollInterval is the backstop cadence for re-checking the response file.
// The fsnotify watch usually wakes the loop first; polling keeps Await
// correct on filesystems where watches silently fail.
const pollInterval = 250 * time.Millisecond

// Await blocks until the prompt session resolves. It returns the published
// Result, domain.ErrTimeout once a positive timeout elapses, or ctx.Err().
// A timeout of zero or less waits indefinitely.
//
// promptDone, when non-nil, must be closed once the prompt process has
// exited. The session publishes its file before exiting, so an exit with no
// file means the window was closed from outside and the session counts as
// cancelled. Pass nil when the launcher cannot observe the session's exit.
func Await(ctx context.Context, h Handle, timeout time.Duration, promptDone <-chan struct{}) (domain.Result, error) {
	if result, ok := h.tryRead(); ok {
		return result, nil
	}

	var timeoutC <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		timeoutC = timer.C
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	events, closeWatch := watchDir(h.dir())
	defer closeWatch()

	for {
		select {
		case <-ctx.Done():
			return domain.Result{}, ctx.Err()

		case <-timeoutC:
			// The file may have landed right at the deadline.
			if result, ok := h.tryRead(); ok {
				return result, nil
			}
			return domain.Result{}, domain.ErrTimeout

		case <-promptDone:
			if result, ok := h.tryRead(); ok {
				return result, nil
			}
			logging.Logger.Info("Prompt process exited without a response", "path", h.Path())
			return domain.NewCancelled(), nil

		case <-events:
			if result, ok := h.tryRead(); ok {
				return result, nil
			}

		case <-ticker.C:
			if result, ok := h.tryRead(); ok {
				return result, nil
			}
		}
	}
}

func (h Handle) tryRead() (domain.Result, bool) {
	result, err := h.Read()
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Logger.Warn("Failed to read response file", "path", h.path, "error", err)
		}
		return domain.Result{}, false
	}
	return result, true
}

// watchDir watches the channel directory and signals on any change. Returns
// a nil channel when watching is unavailable; the caller's poll ticker is
// the correctness backstop either way.
func watchDir(dir string) (<-chan struct{}, func()) {
	// The directory must exist before it can be watched.
	if err := os.MkdirAll(dir, 0755); err != nil {
		logging.Logger.Debug("Cannot create channel directory, polling only", "dir", dir, "error", err)
		return nil, func() {}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logging.Logger.Debug("Filesystem watcher unavailable, polling only", "error", err)
		return nil, func() {}
	}
	if err := watcher.Add(dir); err != nil {
		logging.Logger.Debug("Cannot watch channel directory, polling only", "dir", dir, "error", err)
		watcher.Close()
		return nil, func() {}
	}

	events := make(chan struct{}, 1)
	go func() {
		for {
			select {
			case _, ok := <-watcher.Events:
				if !ok {
					return
				}
				// Coalesce bursts; a pending signal is enough.
				select {
				case events <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Logger.Debug("Filesystem watcher error", "error", err)
			}
		}
	}()

	return events, func() { watcher.Close() }
}
