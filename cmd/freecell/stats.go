package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/morroware/freecell-tui/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show win statistics",
	Long: `Display aggregate statistics and the ten best wins.

Examples:
  freecell stats
  freecell stats --db ./freecell.db`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("FreeCell Statistics")
	fmt.Println()

	if stats.GamesPlayed == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'freecell' to record your first game!")
		return
	}

	fmt.Printf("  Games played:  %d\n", stats.GamesPlayed)
	fmt.Printf("  Games won:     %d (%.0f%%)\n", stats.GamesWon, stats.WinRate()*100)
	if stats.GamesWon > 0 {
		fmt.Printf("  Best win:      %d moves\n", stats.BestMoves)
		fmt.Printf("  Fastest win:   %02d:%02d\n", stats.BestTimeSecs/60, stats.BestTimeSecs%60)
	}
	fmt.Printf("  Average moves: %.1f\n", stats.AvgMoves)

	best, err := store.BestWins(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving wins: %v\n", err)
		os.Exit(1)
	}
	if len(best) == 0 {
		return
	}

	// Print best wins table
	fmt.Println()
	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "Rank", "Moves", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "----", "-----", "----", "----")
	for i, entry := range best {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		timeStr := fmt.Sprintf("%02d:%02d", entry.DurationSecs/60, entry.DurationSecs%60)
		fmt.Printf("  %-4d  %-6d  %-6s  %s\n", i+1, entry.Moves, timeStr, dateStr)
	}
}
