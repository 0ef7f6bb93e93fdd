package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-patience/internal/platform/tui"
	"github.com/vovakirdan/tui-patience/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a menu showing stats and results",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Leaving a game with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Results
  Q            - Quit

Examples:
  patience menu
  patience menu --db ./results.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := menuLoop(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func menuLoop() error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	if err := loadGameConfig(logger); err != nil {
		return err
	}

	store := openStore(logger)
	var (
		stats   tui.StatsSource
		results tui.ResultSource
	)
	if store != nil {
		stats, results = store, store
		defer store.Close()
	}

	cfg := runtimeConfig()
	games := registry.List()
	played := false

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(stats, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			if len(games) == 0 {
				continue
			}
			goBack, sbErr := tui.RunScoreboard(results, games[0].ID, games[0].Title, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// The --seed flag applies to the first game only
		if played {
			cfg.Seed = time.Now().UnixNano()
		}
		played = true

		back, err := tui.Run(game, resultStore(store), logger, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		if !back {
			return nil
		}
	}
}
