package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-aimlab/internal/storage"
)

var flagReset bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the best score",
	Long: `Print the all-time best score stored in the database.

Examples:
  aimlab best
  aimlab best --reset
  aimlab best --db ./aimlab.db`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the stored best score")
}

func runBest(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	key := cfg.Storage.BestScoreKey

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening best-score database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := storage.NewBestScore(store, key, nil).Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting best score: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Best score cleared.")
		return
	}

	entry, err := store.Get(key)
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Println("No best score recorded yet.")
		fmt.Println()
		fmt.Println("Play 'aimlab play' to set the first one!")
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving best score: %v\n", err)
		os.Exit(1)
	}

	best := storage.NewBestScore(store, key, nil).Read()
	fmt.Printf("Best: %d\n", best)
	fmt.Printf("Set:  %s\n", entry.UpdatedAt.Local().Format("2006-01-02 15:04"))
}
