package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-patience/internal/games/klondike"
	"github.com/vovakirdan/tui-patience/internal/registry"
	"github.com/vovakirdan/tui-patience/internal/storage"
)

var (
	flagLimit int
	flagRunID string
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show best times and recent games",
	Long: `Display the fastest wins, the most recent games and totals for a game.
The game defaults to klondike.

Examples:
  patience scores
  patience scores --limit 20
  patience scores --run 3f1c...
  patience scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results per list")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single result by run id")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all results for the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := klondike.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'patience list' to see available games.")
		os.Exit(1)
	}

	if err := showScores(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showScores(gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open results database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearResults(gameID); err != nil {
			return err
		}
		fmt.Printf("Results for %s cleared.\n", title)
		return nil
	case flagRunID != "":
		return showRun(store, flagRunID)
	}

	best, err := store.BestTimes(gameID, flagLimit)
	if err != nil {
		return err
	}
	recent, err := store.RecentResults(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best Times - %s\n", title)
	fmt.Println()

	if len(recent) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'patience play %s' to record the first one!\n", gameID)
		return nil
	}

	if len(best) == 0 {
		fmt.Println("  No wins yet.")
	} else {
		fmt.Printf("  %-4s  %-6s  %-19s  %s\n", "Rank", "Time", "Seed", "Date")
		fmt.Printf("  %-4s  %-6s  %-19s  %s\n", "----", "----", "----", "----")
		for i, r := range best {
			fmt.Printf("  %-4d  %-6s  %-19d  %s\n", i+1, clock(r.Elapsed), r.Seed, r.CreatedAt.Local().Format("2006-01-02 15:04"))
		}
	}

	fmt.Println()
	fmt.Println("Recent Games")
	fmt.Println()
	fmt.Printf("  %-6s  %-4s  %-6s  %s\n", "Result", "Done", "Time", "Date")
	fmt.Printf("  %-6s  %-4s  %-6s  %s\n", "------", "----", "----", "----")
	for _, r := range recent {
		fmt.Printf("  %-6s  %3d%%  %-6s  %s\n", outcome(r), r.Percent, clock(r.Elapsed), r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Played: %d  Won: %d  Win rate: %.0f%%  Average: %.0f%%\n",
		stats.Played, stats.Won, stats.WinRate()*100, stats.AvgPercent)
	if stats.Won > 0 {
		fmt.Printf("Best: %s\n", clock(stats.BestTime))
	}
	return nil
}

func showRun(store *storage.Store, runID string) error {
	r, err := store.ResultByRunID(runID)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no result with run id %q", runID)
	}

	fmt.Printf("Run:     %s\n", r.RunID)
	fmt.Printf("Game:    %s\n", r.GameID)
	fmt.Printf("Seed:    %d\n", r.Seed)
	fmt.Printf("Result:  %s (%d%%)\n", outcome(*r), r.Percent)
	fmt.Printf("Time:    %s\n", clock(r.Elapsed))
	fmt.Printf("Date:    %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}

func outcome(r storage.Result) string {
	if r.Won {
		return "won"
	}
	return "quit"
}

// clock formats a duration as MM:SS.
func clock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
