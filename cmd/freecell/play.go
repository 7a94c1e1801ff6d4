package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/morroware/freecell-tui/internal/core"
	"github.com/morroware/freecell-tui/internal/games/freecell"
	"github.com/morroware/freecell-tui/internal/platform/tui"
	"github.com/morroware/freecell-tui/internal/registry"
	"github.com/morroware/freecell-tui/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a FreeCell game.

Controls:
  Arrows/hjkl  - Move the cursor
  1-8          - Jump to a column
  Space/Enter  - Select a card, or move the selection here
  Esc/X        - Cancel the selection
  U            - Undo
  F            - Auto-finish to the foundations
  N            - New deal
  P            - Pause
  Q/Ctrl+C     - Quit

Examples:
  freecell play
  freecell play --seed 11982
  freecell play --config ./my-freecell.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path before creation
	freecell.SetConfigPath(flagConfig)

	// Create game instance
	game, err := registry.Create("freecell")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
