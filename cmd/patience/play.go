package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-patience/internal/games/klondike"
	"github.com/vovakirdan/tui-patience/internal/platform/tui"
	"github.com/vovakirdan/tui-patience/internal/registry"
	"github.com/vovakirdan/tui-patience/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Deal a game and start playing. The game defaults to klondike.

Controls:
  Left drag        - Move a card and the cards on it
  Right click      - Send a card to a foundation, or else to a pile
  Click stock/D    - Draw a card (recycles the waste when the stock is empty)
  P                - Pause
  R                - New deal
  Esc              - Back (from the menu)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Examples:
  patience play
  patience play --seed 42
  patience play --config ./wide-cards.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := klondike.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'patience list' to see available games.")
		os.Exit(1)
	}

	if err := playGame(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func playGame(gameID string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	if err := loadGameConfig(logger); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, resultStore(store), logger, runtimeConfig()); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// resultStore keeps a nil *storage.Store from becoming a non-nil interface.
func resultStore(store *storage.Store) tui.ResultStore {
	if store == nil {
		return nil
	}
	return store
}
