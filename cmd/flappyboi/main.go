// flappyboi is a Flappy Bird clone that runs in the terminal.
//
// Usage:
//
//	flappyboi [flags]
//
// Flags:
//
//	--fps <rate>           - Simulation steps per second (default: 60)
//	--seed <value>         - RNG seed, 0 picks one from the clock
//	--config <path>        - Custom flappy.yaml
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--store <kind>         - Highscore store: file or sqlite (default: file)
//	--data-dir <dir>       - Where stores live (default: ~/.flappyboi)
//	--mute                 - Disable sound
//	--debug                - Check simulation invariants every step
//	--log <path>           - Log file, empty disables logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappyboi/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagStore      string
	flagDataDir    string
	flagMute       bool
	flagDebug      bool
	flagLog        string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappyboi",
	Short: "Flappy Bird in your terminal",
	Long: `Keep the bird in the air and steer it through the gaps between pipes.
Every pair you pass scores a point; touching a pipe or the ground ends the run.

Controls:
  Space/Up/W  - Flap (also starts a run)
  Enter       - Start a run
  Q/Esc       - Quit

Difficulty options:
  easy   - Start slow, speed up with score
  normal - Start at 30% extra speed, progresses to max
  hard   - Start at 70% extra speed, progresses to max
  fixed  - Constant speed

Examples:
  flappyboi
  flappyboi --difficulty hard
  flappyboi --store sqlite --data-dir ./data
  flappyboi --seed 42 --config ./my-flappy.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	f := rootCmd.Flags()
	f.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	f.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	f.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	f.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	f.StringVar(&flagStore, "store", storeFile, "Highscore store: file or sqlite")
	f.StringVar(&flagDataDir, "data-dir", storage.DefaultDir, "Directory for highscore data")
	f.BoolVar(&flagMute, "mute", false, "Disable sound")
	f.BoolVar(&flagDebug, "debug", false, "Check simulation invariants and log at debug level")
	f.StringVar(&flagLog, "log", storage.DefaultDir+"/flappyboi.log", "Log file path (empty disables logging)")
}
