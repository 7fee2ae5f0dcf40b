package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFlappyConfig()) {
		t.Errorf("embedded YAML and DefaultFlappyConfig() disagree:\n yaml: %+v\n code: %+v", cfg, DefaultFlappyConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("pipes:\n  speed: 200\n  pairs: 3\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Pipes.Speed != 200 || cfg.Pipes.Pairs != 3 {
		t.Errorf("override not applied: speed=%v pairs=%d", cfg.Pipes.Speed, cfg.Pipes.Pairs)
	}
	if cfg.Pipes.Gap != 250 || cfg.Physics.Gravity != -600 {
		t.Errorf("untouched keys should keep defaults: gap=%v gravity=%v", cfg.Pipes.Gap, cfg.Physics.Gravity)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"positive gravity", "physics:\n  gravity: 10\n", "gravity"},
		{"no pairs", "pipes:\n  pairs: 0\n", "pairs"},
		{"inverted gap range", "pipes:\n  gap_min: 300\n  gap_max: 70\n", "gap_min"},
		{"inverted rotation", "rotation:\n  min: 40\n  max: 30\n", "rotation"},
		{"bad yaml", "pipes: [", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if tc.want != "" && !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Physics.Gravity = 1
	cfg.Pipes.Gap = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	if !strings.Contains(err.Error(), "gravity") || !strings.Contains(err.Error(), "gap") {
		t.Errorf("error should list every problem, got %q", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("world:\n  height: 500\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.World.Height != 500 {
		t.Errorf("World.Height = %v, expected 500", cfg.World.Height)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFlappyConfig()) {
		t.Errorf("Load(\"\") without files should return defaults, got %+v", cfg)
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", FileName), []byte("pipes:\n  gap: 300\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Pipes.Gap != 300 {
		t.Errorf("Pipes.Gap = %v, expected 300 from ./configs", cfg.Pipes.Gap)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(\"insane\") should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultFlappyConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 || cfg.Difficulty.Progression.Type != "score" {
		t.Errorf("hard preset not applied: %+v", cfg.Difficulty)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	before := cfg
	ApplyPreset(&cfg, "")
	if !reflect.DeepEqual(before, cfg) {
		t.Error("empty preset should leave the config untouched")
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
