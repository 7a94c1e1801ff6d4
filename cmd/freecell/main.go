// freecell is a terminal FreeCell solitaire game.
//
// Usage:
//
//	freecell                 - Play a game directly
//	freecell play            - Same as above
//	freecell menu            - Start with the main menu
//	freecell serve           - Start SSH server for remote play
//	freecell stats           - Show win statistics
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set deal seed for a reproducible game
//	--db <path>     - Set database path (default: ~/.freecell/freecell.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/morroware/freecell-tui/internal/games/freecell"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "freecell",
	Short: "FreeCell solitaire in your terminal",
	Long: `FreeCell is a terminal rendition of the classic solitaire game:
move all 52 cards to the foundations, using four free cells as
temporary storage. Every deal is numbered and replayable.

Available commands:
  play     - Start a game directly (also the default)
  menu     - Main menu with statistics
  serve    - Start SSH server for remote play
  stats    - View win statistics

Examples:
  freecell
  freecell play --seed 11982
  freecell menu
  freecell serve --ssh :2222
  freecell stats`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Deal seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.freecell/freecell.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}
