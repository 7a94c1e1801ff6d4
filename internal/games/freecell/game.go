// Package freecell adapts the FreeCell engine to the platform: it maps
// semantic input actions onto engine operations through a board cursor and
// draws the layout into the shared screen buffer.
package freecell

import (
	"math/rand"

	"github.com/morroware/freecell-tui/internal/config"
	"github.com/morroware/freecell-tui/internal/core"
	"github.com/morroware/freecell-tui/internal/games/freecell/engine"
	"github.com/morroware/freecell-tui/internal/registry"
)

// area is the board region the cursor is in: the cell/foundation row on
// top, or the tableau columns below it.
type area int

const (
	areaTop area = iota
	areaColumns
)

// Game implements FreeCell over the pure rules engine.
type Game struct {
	cfg  config.FreecellConfig
	eng  *engine.Game
	rng  *rand.Rand
	tick uint64

	// Frame accounting: tickRate frames make one clock second.
	tickRate     int
	frameCounter int

	// Cursor state
	cursorArea area
	cursorX    int // slot 0-7 in both areas
	cursorY    int // card position within the column

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// Package-level variable for config, set by the CLI before creation.
var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new FreeCell game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("freecell", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "freecell"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "FreeCell"
}

// Reset initializes/restarts the game with a fresh deal.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadFreecell(configPath)
	if err != nil {
		loaded = config.DefaultFreecellConfig()
	}
	g.cfg = loaded

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.frameCounter = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false

	if g.eng == nil {
		g.eng = engine.New(cfg.Seed)
	} else {
		g.eng.Deal(cfg.Seed)
	}

	g.cursorArea = areaColumns
	g.cursorX = 0
	g.clampCursor()
	g.checkScreenSize()
}

// redeal starts a new game mid-session with a derived seed. The engine
// deal atomically discards history, selection, and counters, so no state
// from the replaced game survives.
func (g *Game) redeal() {
	g.eng.Deal(g.rng.Int63())
	g.frameCounter = 0
	g.paused = false
	g.cursorArea = areaColumns
	g.cursorX = 0
	g.clampCursor()
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	// Board is 8 slots of 6 characters plus margins; height covers the
	// HUD, the top row, and a played-out tableau column.
	minW := 52
	minH := 20
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if in.Has(core.ActionRestart) {
		g.redeal()
		return core.StepResult{State: g.State()}
	}

	if !g.paused && !g.eng.IsWon() {
		g.handleBoardInput(in)
	}

	// The play clock advances once per second of frames.
	g.frameCounter++
	if g.frameCounter >= g.tickRate {
		g.frameCounter = 0
		if !g.paused && g.cfg.Gameplay.Timer {
			g.eng.Tick()
		}
	}

	return core.StepResult{State: g.State()}
}

// handleBoardInput applies cursor movement and card actions.
func (g *Game) handleBoardInput(in core.InputFrame) {
	switch {
	case in.Digit >= 1 && in.Digit <= engine.ColumnCount:
		g.cursorArea = areaColumns
		g.cursorX = in.Digit - 1
		g.cursorToBottom()

	case in.Has(core.ActionLeft):
		g.cursorX = core.Max(0, g.cursorX-1)
		g.clampCursor()

	case in.Has(core.ActionRight):
		g.cursorX = core.Min(engine.ColumnCount-1, g.cursorX+1)
		g.clampCursor()

	case in.Has(core.ActionUp):
		if g.cursorArea == areaColumns {
			if g.cursorY > 0 {
				g.cursorY--
			} else {
				g.cursorArea = areaTop
			}
		}

	case in.Has(core.ActionDown):
		if g.cursorArea == areaTop {
			g.cursorArea = areaColumns
			g.cursorToBottom()
		} else {
			g.cursorY++
			g.clampCursor()
		}
	}

	if in.Has(core.ActionSelect) {
		g.clickAtCursor()
		g.clampCursor()
	}
	if in.Has(core.ActionCancel) {
		g.eng.ClearSelection()
	}
	if in.Has(core.ActionUndo) {
		g.eng.Undo()
		g.clampCursor()
	}
	if in.Has(core.ActionAuto) && g.cfg.Gameplay.AutoFinish {
		g.eng.AutoFinish()
		g.clampCursor()
	}
}

// clickAtCursor translates the cursor position into an engine click.
// The engine routes it: a fresh click selects, a second click moves.
func (g *Game) clickAtCursor() {
	if g.cursorArea == areaTop {
		if g.cursorX < engine.CellCount {
			g.eng.SelectCard(engine.ZoneCell, g.cursorX, 0)
		} else {
			g.eng.SelectCard(engine.ZoneFoundation, g.cursorX-engine.CellCount, 0)
		}
		return
	}
	g.eng.SelectCard(engine.ZoneColumn, g.cursorX, g.cursorY)
}

// cursorToBottom puts the column cursor on the bottom-most card.
func (g *Game) cursorToBottom() {
	st := g.eng.State()
	g.cursorY = core.Max(0, len(st.Columns[g.cursorX])-1)
}

// clampCursor keeps the cursor on an existing card after the board shrank.
func (g *Game) clampCursor() {
	if g.cursorArea != areaColumns {
		return
	}
	st := g.eng.State()
	g.cursorY = core.Clamp(g.cursorY, 0, core.Max(0, len(st.Columns[g.cursorX])-1))
}

// State returns the current game status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:    g.eng.Moves(),
		Seconds:  g.eng.Seconds(),
		Seed:     g.eng.Seed(),
		Won:      g.eng.IsWon(),
		GameOver: g.eng.IsWon(),
		Paused:   g.paused || g.tooSmall,
	}
}
