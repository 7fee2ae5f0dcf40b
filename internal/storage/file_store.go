package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// HighscoreFile is the file name used inside the data directory.
const HighscoreFile = "highscore.txt"

// FileStore keeps the highscore as a single decimal integer in a text file.
type FileStore struct {
	path string
}

// OpenFileStore prepares <dir>/highscore.txt, writing 0 if it does not exist.
func OpenFileStore(dir string) (*FileStore, error) {
	path, err := ExpandPath(filepath.Join(dir, HighscoreFile))
	if err != nil {
		return nil, err
	}

	s := &FileStore{path: path}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.SaveHighscore(0); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("storage: cannot stat %s: %w", path, err)
	}
	return s, nil
}

// Path returns the resolved file path.
func (s *FileStore) Path() string {
	return s.path
}

// LoadHighscore reads the stored value.
func (s *FileStore) LoadHighscore() (int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read highscore: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt highscore file %s: %w", s.path, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("storage: negative highscore %d in %s", n, s.path)
	}
	return n, nil
}

// SaveHighscore replaces the stored value through a temporary file.
// A failed write leaves the previous value in place.
func (s *FileStore) SaveHighscore(score int) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strconv.Itoa(score)+"\n"), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write highscore: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("storage: cannot replace highscore: %w", err)
	}
	return nil
}
