package freecell

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick            uint64
	Seed            int64
	Moves           int
	Seconds         int
	FoundationCards int
	CellCards       int
	ColumnLens      [8]int
	Board           string // compact column-by-column card listing
	HasSelection    bool
	CursorArea      area
	CursorX         int
	CursorY         int
	HistoryLen      int
	State           GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	st := g.eng.State()

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case st.Won:
		state = StateWon
	case g.paused:
		state = StatePaused
	}

	cellCards := 0
	for _, c := range st.Cells {
		if c != nil {
			cellCards++
		}
	}

	foundationCards := 0
	for _, pile := range st.Foundations {
		foundationCards += len(pile)
	}

	var columnLens [8]int
	board := ""
	for i, col := range st.Columns {
		columnLens[i] = len(col)
		if i > 0 {
			board += "|"
		}
		for j, c := range col {
			if j > 0 {
				board += " "
			}
			board += c.String()
		}
	}

	return Snapshot{
		Tick:            g.tick,
		Seed:            st.Seed,
		Moves:           st.Moves,
		Seconds:         st.Seconds,
		FoundationCards: foundationCards,
		CellCards:       cellCards,
		ColumnLens:      columnLens,
		Board:           board,
		HasSelection:    st.Selection != nil,
		CursorArea:      g.cursorArea,
		CursorX:         g.cursorX,
		CursorY:         g.cursorY,
		HistoryLen:      g.eng.HistoryLen(),
		State:           state,
	}
}
