package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-aimlab/internal/config"
	"github.com/vovakirdan/tui-aimlab/internal/core"
	"github.com/vovakirdan/tui-aimlab/internal/games/aim"
	"github.com/vovakirdan/tui-aimlab/internal/platform/tui"
	"github.com/vovakirdan/tui-aimlab/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a local session",
	Long: `Open the trainer menu in this terminal.

Controls:
  Mouse      - Aim and click targets
  Arrows     - Move the crosshair (hjkl also work)
  Space      - Fire at the crosshair
  Enter      - Play from the menu, back to the menu from the results
  Esc        - Finish the session early (asks first)
  M          - Abort to the menu without a result
  Q/Ctrl+C   - Quit

Difficulty options:
  easy    - 80px targets, +10 per hit, -5 per miss
  medium  - 60px targets, +15 per hit, -8 per miss
  hard    - 46px targets, +20 per hit, -10 per miss (default)

Examples:
  aimlab play
  aimlab play --difficulty easy
  aimlab play --config ./my-aim.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	var difficulty aim.DifficultyID
	if flagDifficulty != "" {
		preset, err := config.ParseDifficultyPreset(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty = aim.DifficultyID(preset)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closer := newFileLogger()
	defer closer.Close()

	store := openStore()

	runErr := tui.Run(tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Aim:        cfg,
		Difficulty: difficulty,
		Store:      storage.NewBestScore(store, cfg.Storage.BestScoreKey, logger),
		Logger:     logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running trainer: %v\n", runErr)
		os.Exit(1)
	}
}
