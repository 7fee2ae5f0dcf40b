// Package storage persists the flappy highscore between processes.
// FileStore keeps the single-integer text format; SQLiteStore uses the
// pure-Go modernc.org/sqlite driver and also records run history.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is where stores live unless --data-dir says otherwise.
const DefaultDir = "~/.flappyboi"

// GameID keys the flappy rows in shared tables.
const GameID = "flappy"

// ExpandPath resolves a leading ~ and creates the parent directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}
