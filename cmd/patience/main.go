// patience is Klondike solitaire for the terminal, played with the mouse.
//
// Usage:
//
//	patience                 - Deal a game of Klondike
//	patience play [game]     - Play a game
//	patience menu            - Start menu with stats and results
//	patience scores [game]   - Show best times and recent games
//	patience list            - List available games
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for a reproducible first deal
//	--db <path>      - Set database path (default: ~/.patience/results.db)
//	--config <path>  - Use a custom klondike.yaml
//	--log <path>     - Write a debug log to this file
//
// Every global flag also has a PATIENCE_* environment variable.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-patience/internal/config"
	"github.com/vovakirdan/tui-patience/internal/core"
	"github.com/vovakirdan/tui-patience/internal/games/klondike"
	"github.com/vovakirdan/tui-patience/internal/storage"
)

const defaultDBPath = "~/.patience/results.db"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
)

func main() {
	envCfg, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyEnv(envCfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "patience",
	Short: "Klondike solitaire in your terminal",
	Long: `Patience deals Klondike solitaire in the terminal. Drag cards with
the mouse, right-click a card to send it home, click the stock to draw.

Available commands:
  play     - Play a game directly (default)
  menu     - Start menu with stats
  scores   - View best times and recent games
  list     - Show all available games

Examples:
  patience
  patience play --seed 42
  patience menu
  patience scores`,
	Run: func(cmd *cobra.Command, _ []string) {
		runPlay(cmd, []string{klondike.ID})
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed of the first deal (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom klondike.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log", "", "Write a debug log to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}

// applyEnv replaces flag defaults with values from the environment.
// Flags given on the command line still win because they are parsed later.
func applyEnv(e config.Env) {
	if e.FPS > 0 {
		flagFPS = e.FPS
	}
	if e.Seed != 0 {
		flagSeed = e.Seed
	}
	if e.DBPath != "" {
		flagDBPath = e.DBPath
	}
	if e.Config != "" {
		flagConfig = e.Config
	}
	if e.LogFile != "" {
		flagLogFile = e.LogFile
	}
}

// newLogger returns a logger writing to flagLogFile, or a silent one.
// The returned function closes the log file.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	path := expandHome(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "patience",
		Level:           log.DebugLevel,
	})
	return logger, func() { _ = f.Close() }, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// loadGameConfig reads klondike.yaml and hands it to the game package.
func loadGameConfig(logger *log.Logger) error {
	cfg, err := config.LoadKlondike(flagConfig)
	if err != nil {
		return err
	}
	klondike.SetConfig(cfg)
	logger.Debug("config loaded", "layout", fmt.Sprintf("%+v", cfg.Layout), "input", fmt.Sprintf("%+v", cfg.Input))
	return nil
}

// runtimeConfig builds the platform config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the results database. A failure is reported and play
// continues without saving.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("results database unavailable", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
