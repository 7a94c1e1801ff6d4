package engine

import "testing"

// collectCards gathers every card on the board keyed by card value.
func collectCards(t *testing.T, b *Board) map[Card]int {
	t.Helper()
	seen := make(map[Card]int, DeckSize)
	for _, c := range b.Cells {
		if c != nil {
			seen[*c]++
		}
	}
	for _, f := range b.Foundations {
		for _, c := range f {
			seen[c]++
		}
	}
	for _, col := range b.Columns {
		for _, c := range col {
			seen[c]++
		}
	}
	return seen
}

// assertDeckInvariant checks that the union of all zones is exactly the
// 52-card deck, no duplicates, no omissions.
func assertDeckInvariant(t *testing.T, g *Game) {
	t.Helper()
	seen := collectCards(t, &g.board)
	if len(seen) != DeckSize {
		t.Fatalf("expected %d distinct cards, found %d", DeckSize, len(seen))
	}
	for _, want := range NewDeck() {
		if seen[want] != 1 {
			t.Fatalf("card %v appears %d times, expected exactly once", want, seen[want])
		}
	}
}

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	if len(deck) != DeckSize {
		t.Fatalf("deck size = %d, expected %d", len(deck), DeckSize)
	}

	unique := make(map[Card]bool)
	for _, c := range deck {
		if unique[c] {
			t.Errorf("duplicate card %v in fresh deck", c)
		}
		unique[c] = true
	}
}

func TestDealShape(t *testing.T) {
	g := New(42)

	// Columns 0-3 hold 7 cards, 4-7 hold 6.
	for i := 0; i < ColumnCount; i++ {
		want := 6
		if i < 4 {
			want = 7
		}
		if got := len(g.board.Columns[i]); got != want {
			t.Errorf("column %d has %d cards, expected %d", i, got, want)
		}
	}

	for i, c := range g.board.Cells {
		if c != nil {
			t.Errorf("cell %d not empty after deal", i)
		}
	}
	for i, f := range g.board.Foundations {
		if len(f) != 0 {
			t.Errorf("foundation %d not empty after deal", i)
		}
	}
	if g.Moves() != 0 || g.Seconds() != 0 {
		t.Errorf("counters not zeroed: moves=%d seconds=%d", g.Moves(), g.Seconds())
	}
	if g.Selection() != nil {
		t.Error("fresh deal should have no selection")
	}
	if g.HistoryLen() != 0 {
		t.Errorf("fresh deal should have empty history, got %d entries", g.HistoryLen())
	}

	assertDeckInvariant(t, g)
}

func TestDealDeterminism(t *testing.T) {
	g1 := New(12345)
	g2 := New(12345)

	for i := 0; i < ColumnCount; i++ {
		if len(g1.board.Columns[i]) != len(g2.board.Columns[i]) {
			t.Fatalf("column %d length differs between same-seed deals", i)
		}
		for j := range g1.board.Columns[i] {
			if g1.board.Columns[i][j] != g2.board.Columns[i][j] {
				t.Fatalf("column %d card %d differs between same-seed deals", i, j)
			}
		}
	}
}

func TestDealVariesWithSeed(t *testing.T) {
	g1 := New(1)
	g2 := New(2)

	same := true
	for i := 0; i < ColumnCount && same; i++ {
		for j := range g1.board.Columns[i] {
			if g1.board.Columns[i][j] != g2.board.Columns[i][j] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical deals")
	}
}

func TestRedealResets(t *testing.T) {
	g := New(7)

	// Make some progress, then redeal.
	for col := 0; col < ColumnCount; col++ {
		n := len(g.board.Columns[col])
		if g.SelectCard(ZoneColumn, col, n-1) && g.MoveToCell(0) {
			break
		}
		g.ClearSelection()
	}
	g.Tick()
	g.Tick()

	g.Deal(99)
	if g.Moves() != 0 || g.Seconds() != 0 || g.HistoryLen() != 0 {
		t.Errorf("redeal did not reset: moves=%d seconds=%d history=%d",
			g.Moves(), g.Seconds(), g.HistoryLen())
	}
	assertDeckInvariant(t, g)
}
