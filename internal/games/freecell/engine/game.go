// Package engine implements the FreeCell rules: the board layout, move
// legality including super-move capacity, selection handling, bounded undo,
// and the win condition. It owns no rendering, timers, or persistence; the
// presentation layer calls in and re-reads State after every mutation.
//
// Illegal moves are a normal outcome, not an error: every validating
// operation returns a bool, leaves the board untouched on rejection, and
// clears any active selection so the player must re-select. Out-of-range
// indices are rejected the same way, never panicked on.
package engine

// Game is a single FreeCell game. Not safe for concurrent use; the caller
// owns it exclusively and drives it from one goroutine.
type Game struct {
	board     Board
	selection *Selection
	history   *history
	moves     int
	seconds   int
	seed      int64
	won       bool
}

// New deals a fresh game from the given seed.
func New(seed int64) *Game {
	g := &Game{history: newHistory(HistoryLimit)}
	g.Deal(seed)
	return g
}

// Deal discards the current game unconditionally and starts a new one:
// fresh shuffle, empty cells and foundations, zeroed counters, empty undo
// history, no selection.
func (g *Game) Deal(seed int64) {
	g.board = deal(seed)
	g.selection = nil
	g.history.clear()
	g.moves = 0
	g.seconds = 0
	g.seed = seed
	g.won = false
}

// Tick advances the play clock by one second. The caller schedules it once
// per second; accumulation stops once the game is won.
func (g *Game) Tick() {
	if !g.won {
		g.seconds++
	}
}

// IsWon reports whether all 52 cards have reached the foundations.
func (g *Game) IsWon() bool {
	return g.won
}

// Moves returns the number of successful moves so far.
func (g *Game) Moves() int {
	return g.moves
}

// Seconds returns the elapsed play time in seconds.
func (g *Game) Seconds() int {
	return g.seconds
}

// Seed returns the seed this game was dealt from.
func (g *Game) Seed() int64 {
	return g.seed
}

// Selection returns the active selection, or nil.
func (g *Game) Selection() *Selection {
	if g.selection == nil {
		return nil
	}
	sel := *g.selection
	return &sel
}

// HistoryLen returns the number of undoable moves.
func (g *Game) HistoryLen() int {
	return g.history.len()
}

// State is a read-only deep copy of the game for rendering.
type State struct {
	Cells       [CellCount]*Card
	Foundations [FoundationCount][]Card
	Columns     [ColumnCount][]Card
	Moves       int
	Seconds     int
	Seed        int64
	Selection   *Selection
	Won         bool
}

// State returns a snapshot of the current game. Mutating the returned value
// has no effect on the game.
func (g *Game) State() State {
	b := g.board.Clone()
	return State{
		Cells:       b.Cells,
		Foundations: b.Foundations,
		Columns:     b.Columns,
		Moves:       g.moves,
		Seconds:     g.seconds,
		Seed:        g.seed,
		Selection:   g.Selection(),
		Won:         g.won,
	}
}

// Undo restores the board and move counter to their values before the most
// recent move. Elapsed time is not rolled back. Returns false when there is
// nothing to undo.
func (g *Game) Undo() bool {
	f, ok := g.history.pop()
	if !ok {
		return false
	}
	g.board = f.board
	g.moves = f.moves
	g.selection = nil
	return true
}

// checkWin sets the won flag once every card sits on a foundation. Only
// legal sequential pushes reach the foundations, so a full count implies
// four complete suits.
func (g *Game) checkWin() {
	if g.board.FoundationCardCount() == DeckSize {
		g.won = true
	}
}
