package channel

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"followup/internal/logging"
)

const (
	sweepInterval = time.Hour
	staleAfter    = 24 * time.Hour
)

// Sweep removes response files older than maxAge from dir and returns how
// many were deleted. Stale files belong to crashed or killed sessions; live
// ones are always younger than a day because of the timeout cap.
func Sweep(dir string, maxAge time.Duration) int {
	entries, err := os.ReadDir(resolveDir(dir))
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Logger.Warn("Failed to read channel directory", "dir", dir, "error", err)
		}
		return 0
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), artifactPrefix) {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(resolveDir(dir), entry.Name())
		if err := os.Remove(path); err != nil {
			logging.Logger.Warn("Failed to remove stale response file", "path", path, "error", err)
			continue
		}
		logging.Logger.Debug("Removed stale response file", "path", path)
		removed++
	}

	return removed
}

// RunSweeper sweeps dir on an hourly cadence until ctx is cancelled.
func RunSweeper(ctx context.Context, dir string) error {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := Sweep(dir, staleAfter); n > 0 {
				logging.Logger.Info("Swept stale response files", "count", n, "dir", dir)
			}
		}
	}
}
