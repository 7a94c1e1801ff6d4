package engine

import "testing"

// nearWonGame builds a position one push away from victory: every card on
// the foundations except the king of clubs, which waits in a cell.
func nearWonGame() *Game {
	g := emptyGame()
	for s := Spades; s <= Clubs; s++ {
		pile := make([]Card, 0, 13)
		for r := Ace; r <= King; r++ {
			pile = append(pile, Card{Suit: s, Rank: r})
		}
		g.board.Foundations[s] = pile
	}
	last := g.board.Foundations[Clubs]
	king := last[len(last)-1]
	g.board.Foundations[Clubs] = last[:len(last)-1]
	g.board.Cells[0] = &king
	return g
}

func TestWinDetection(t *testing.T) {
	g := nearWonGame()

	if g.IsWon() {
		t.Fatal("game must not be won with a card still outside the foundations")
	}

	if !g.SelectCard(ZoneCell, 0, 0) {
		t.Fatal("king should be selectable")
	}
	if !g.MoveToFoundation(int(Clubs)) {
		t.Fatal("final king should complete its pile")
	}

	if !g.IsWon() {
		t.Error("completing all foundations should win the game")
	}
	if g.board.FoundationCardCount() != DeckSize {
		t.Errorf("foundations hold %d cards, expected %d", g.board.FoundationCardCount(), DeckSize)
	}
}

func TestTickStopsOnWin(t *testing.T) {
	g := nearWonGame()
	g.Tick()
	g.Tick()
	if g.Seconds() != 2 {
		t.Fatalf("seconds = %d, expected 2", g.Seconds())
	}

	g.SelectCard(ZoneCell, 0, 0)
	g.MoveToFoundation(int(Clubs))

	g.Tick()
	g.Tick()
	if g.Seconds() != 2 {
		t.Errorf("clock should freeze after the win, got %d", g.Seconds())
	}
}

func TestAutoMoveIsNotBlockedPostWin(t *testing.T) {
	// The engine does not hard-block operations after the win; the
	// presentation layer treats the state as terminal.
	g := nearWonGame()
	g.SelectCard(ZoneCell, 0, 0)
	g.MoveToFoundation(int(Clubs))

	if !g.Undo() {
		t.Error("undo should still work after the win")
	}
	// The won flag is latched for the finished game until a redeal.
	g.Deal(3)
	if g.IsWon() {
		t.Error("redeal should reset the won flag")
	}
}

func TestStateIsDeepCopy(t *testing.T) {
	g := New(77)
	orig := g.board.Columns[0][0]

	// Mutating the snapshot must not leak into the live game.
	st := g.State()
	st.Columns[0][0] = Card{Suit: orig.Suit, Rank: orig.Rank%13 + 1}
	if g.board.Columns[0][0] != orig {
		t.Error("State() leaked a live column slice")
	}

	c := card(Hearts, 3)
	g.board.Cells[2] = &c
	st = g.State()
	*st.Cells[2] = card(Spades, 9)
	if *g.board.Cells[2] != c {
		t.Error("State() leaked a live cell pointer")
	}
}

func TestStateReflectsGame(t *testing.T) {
	g := New(11)
	n := len(g.board.Columns[2])
	g.SelectCard(ZoneColumn, 2, n-1)
	g.MoveToCell(1)
	g.Tick()

	st := g.State()
	if st.Moves != 1 || st.Seconds != 1 || st.Seed != 11 || st.Won {
		t.Errorf("unexpected state %+v", st)
	}
	if st.Cells[1] == nil {
		t.Error("state should show the occupied cell")
	}
	if len(st.Columns[2]) != n-1 {
		t.Error("state should show the shortened column")
	}
}
