package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreCreatesZero(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	s, err := OpenFileStore(dir)
	if err != nil {
		t.Fatalf("OpenFileStore() failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, HighscoreFile))
	if err != nil {
		t.Fatalf("highscore file not created: %v", err)
	}
	if string(data) != "0\n" {
		t.Errorf("new file content = %q, expected %q", data, "0\n")
	}

	hs, err := s.LoadHighscore()
	if err != nil || hs != 0 {
		t.Errorf("LoadHighscore() = %d, %v; expected 0, nil", hs, err)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.SaveHighscore(37); err != nil {
		t.Fatalf("SaveHighscore() failed: %v", err)
	}

	// A second store sees the value and does not reset it.
	s2, err := OpenFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	hs, err := s2.LoadHighscore()
	if err != nil {
		t.Fatalf("LoadHighscore() failed: %v", err)
	}
	if hs != 37 {
		t.Errorf("LoadHighscore() = %d, expected 37", hs)
	}

	if _, err := os.Stat(s.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should not remain after save")
	}
}

func TestFileStoreContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		wantErr bool
	}{
		{"plain", "12", 12, false},
		{"trailing newline", "99\n", 99, false},
		{"surrounding space", "  7 \r\n", 7, false},
		{"empty", "", 0, false},
		{"garbage", "twelve", 0, true},
		{"negative", "-3", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, HighscoreFile), []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			s, err := OpenFileStore(dir)
			if err != nil {
				t.Fatal(err)
			}

			hs, err := s.LoadHighscore()
			if (err != nil) != tc.wantErr {
				t.Fatalf("LoadHighscore() error = %v, wantErr %v", err, tc.wantErr)
			}
			if hs != tc.want {
				t.Errorf("LoadHighscore() = %d, expected %d", hs, tc.want)
			}
		})
	}
}

func TestFileStoreMissingAfterOpen(t *testing.T) {
	s, err := OpenFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(s.Path()); err != nil {
		t.Fatal(err)
	}
	if _, err := s.LoadHighscore(); err == nil {
		t.Error("LoadHighscore() on a removed file should fail")
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/.flappyboi/logs/x.log")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".flappyboi", "logs", "x.log"); got != want {
		t.Errorf("ExpandPath() = %q, expected %q", got, want)
	}
	if info, err := os.Stat(filepath.Dir(got)); err != nil || !info.IsDir() {
		t.Error("parent directory should be created")
	}

	abs := filepath.Join(t.TempDir(), "a.txt")
	if got, _ := ExpandPath(abs); got != abs {
		t.Errorf("absolute path changed to %q", got)
	}
}
