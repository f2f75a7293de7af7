// aimlab is a terminal aim trainer: click targets for points before the
// minute runs out.
//
// Usage:
//
//	aimlab play              - Start a local session
//	aimlab serve             - Host sessions over SSH
//	aimlab best              - Show (or reset) the best score
//	aimlab profiles          - Show the difficulty table
//
// Global flags:
//
//	--fps <rate>       - Frame rate (default: 30)
//	--seed <value>     - RNG seed for reproducible target placement
//	--db <path>        - Database path (default: ~/.aimlab/aimlab.db)
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-aimlab/internal/config"
	"github.com/vovakirdan/tui-aimlab/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagConfig  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "aimlab",
	Short: "Aim Lab - a reflex trainer for your terminal",
	Long: `Aim Lab is a terminal aim trainer. Each session lasts 60 seconds;
click the targets to score and avoid clicking empty space.

Available commands:
  play      - Start a local session
  serve     - Host sessions over SSH
  best      - Show or reset the best score
  profiles  - Show the difficulty table

Examples:
  aimlab play
  aimlab play --difficulty easy
  aimlab serve --ssh :2222
  aimlab best --reset`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.aimlab/aimlab.db", "Path to best-score database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom aim config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(profilesCmd)
}

// loadConfig loads the aim config or exits.
func loadConfig() config.AimConfig {
	cfg, err := config.LoadAim(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newFileLogger returns a logger writing to --log-file, or one that
// discards everything when the flag is unset. The returned closer is never nil.
func newFileLogger() (*log.Logger, io.Closer) {
	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil)
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), io.NopCloser(nil)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "aimlab",
		Level:           log.DebugLevel,
	})
	return logger, f
}

// openStore opens the best-score database, warning and returning nil on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open best-score database: %v\n", err)
		return nil
	}
	return store
}
