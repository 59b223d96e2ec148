// Package channel implements the single-use response file shared between the
// asking process and the prompt session it spawns. The asking side creates a
// handle and waits on it; the prompt session publishes exactly one result to
// it; the asking side deletes it.
package channel

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"followup/internal/domain"
	"followup/internal/logging"
)

const artifactPrefix = "followup-"

// Handle addresses one response file. The file does not exist until the
// prompt session publishes its result.
type Handle struct {
	path string
}

// NewHandle creates a handle with a fresh unique path in dir. An empty dir
// falls back to the system temp directory.
func NewHandle(dir string) Handle {
	name := fmt.Sprintf("%s%s.json", artifactPrefix, uuid.New().String())
	return Handle{path: filepath.Join(resolveDir(dir), name)}
}

// HandleForPath rebuilds a handle from a path produced by Path. The prompt
// process receives the path on its command line.
func HandleForPath(path string) Handle {
	return Handle{path: path}
}

// Path returns the response file location.
func (h Handle) Path() string {
	return h.path
}

func (h Handle) dir() string {
	return filepath.Dir(h.path)
}

// Write publishes result atomically: marshal, write a temp file in the same
// directory, rename into place. Readers only ever observe a complete file.
func (h Handle) Write(result domain.Result) error {
	if err := result.Validate(); err != nil {
		return fmt.Errorf("invalid result: %w", err)
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := os.MkdirAll(h.dir(), 0755); err != nil {
		return fmt.Errorf("failed to create channel directory: %w", err)
	}

	tmp := h.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write response file: %w", err)
	}
	if err := os.Rename(tmp, h.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to publish response file: %w", err)
	}

	return nil
}

// Read loads the published result. The error is os.IsNotExist when the
// session has not resolved yet. A file that exists but does not parse counts
// as a cancelled session so the caller is never left hanging on garbage.
func (h Handle) Read() (domain.Result, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		return domain.Result{}, err
	}

	var result domain.Result
	if err := json.Unmarshal(data, &result); err != nil {
		logging.Logger.Warn("Malformed response file, treating as cancelled", "path", h.path, "error", err)
		return domain.NewCancelled(), nil
	}
	if err := result.Validate(); err != nil {
		logging.Logger.Warn("Invalid response file, treating as cancelled", "path", h.path, "error", err)
		return domain.NewCancelled(), nil
	}

	return result, nil
}

// Cleanup removes the response file and any temp leftover. Missing files are
// not an error; every terminal outcome calls this.
func (h Handle) Cleanup() {
	for _, path := range []string{h.path, h.path + ".tmp"} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logging.Logger.Warn("Failed to remove response file", "path", path, "error", err)
		}
	}
}

func resolveDir(dir string) string {
	if dir == "" {
		return os.TempDir()
	}
	return dir
}
