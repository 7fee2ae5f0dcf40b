package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappyboi/internal/audio"
	"github.com/vovakirdan/flappyboi/internal/config"
	"github.com/vovakirdan/flappyboi/internal/core"
	"github.com/vovakirdan/flappyboi/internal/games/flappy"
	"github.com/vovakirdan/flappyboi/internal/platform/tui"
	"github.com/vovakirdan/flappyboi/internal/storage"
)

const (
	storeFile   = "file"
	storeSQLite = "sqlite"
	sqliteFile  = "flappy.db"
)

func runGame(cmd *cobra.Command, args []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if flagStore != storeFile && flagStore != storeSQLite {
		return fmt.Errorf("unknown store %q (expected %s or %s)", flagStore, storeFile, storeSQLite)
	}

	logger, closeLog, err := openLogger(flagLog, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	rc.Debug = flagDebug
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}

	opts := []flappy.Option{
		flappy.WithSeed(rc.Seed),
		flappy.WithLogger(logger),
		flappy.WithDebug(rc.Debug),
	}
	store, release := openStore(flagStore, flagDataDir, logger)
	defer release()
	if store != nil {
		opts = append(opts, flappy.WithStore(store))
	}

	player := audio.Open(flagMute, logger)
	defer player.Close()

	logger.Info("starting", "seed", rc.Seed, "fps", rc.TickRate, "store", flagStore, "difficulty", preset)
	game := flappy.New(cfg, opts...)
	err = tui.Run(game, tui.Options{Runtime: rc, Player: player, Logger: logger})
	logger.Info("exiting", "highscore", game.State().Highscore, "steps", game.Steps())
	return err
}

// openLogger writes to path, or discards everything when path is empty.
func openLogger(path string, debug bool) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if path != "" {
		resolved, err := storage.ExpandPath(path)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(resolved, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappyboi",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// storeCloser is the subset of stores holding an open resource.
type storeCloser interface {
	Close() error
}

// openStore opens the selected highscore store. Failures are logged and
// the game runs with an in-memory highscore.
func openStore(kind, dir string, logger *log.Logger) (flappy.HighscoreStore, func()) {
	noop := func() {}

	switch kind {
	case storeSQLite:
		s, err := storage.OpenSQLite(filepath.Join(dir, sqliteFile))
		if err != nil {
			logger.Error("could not open scores database", "dir", dir, "error", err)
			return nil, noop
		}
		return s, func() {
			if stats, err := s.Stats(); err == nil {
				logger.Info("run history", "runs", stats.Runs, "best", stats.Best, "avg", stats.AvgScore)
			}
			closeStore(s, logger)
		}
	default:
		s, err := storage.OpenFileStore(dir)
		if err != nil {
			logger.Error("could not open highscore file", "dir", dir, "error", err)
			return nil, noop
		}
		logger.Debug("highscore file", "path", s.Path())
		return s, noop
	}
}

func closeStore(c storeCloser, logger *log.Logger) {
	if err := c.Close(); err != nil {
		logger.Warn("could not close store", "error", err)
	}
}
