package engine

import (
	"reflect"
	"testing"
)

func TestUndoRoundTrip(t *testing.T) {
	g := New(2024)
	before := g.board.Clone()
	beforeMoves := g.Moves()

	// Any legal move: bottom card of column 0 to a free cell.
	n := len(g.board.Columns[0])
	if !g.SelectCard(ZoneColumn, 0, n-1) {
		t.Fatal("bottom card should be selectable")
	}
	if !g.MoveToCell(0) {
		t.Fatal("move to empty cell should succeed")
	}
	g.Tick()

	if !g.Undo() {
		t.Fatal("undo should succeed after a move")
	}
	if g.Moves() != beforeMoves {
		t.Errorf("move counter not restored: %d != %d", g.Moves(), beforeMoves)
	}
	if !reflect.DeepEqual(g.board, before) {
		t.Error("board not restored to the pre-move layout")
	}
	// The clock is never rolled back.
	if g.Seconds() != 1 {
		t.Errorf("elapsed time should survive undo, got %d", g.Seconds())
	}
}

func TestUndoEmptyHistory(t *testing.T) {
	g := New(5)
	if g.Undo() {
		t.Error("undo with empty history should fail")
	}
	if g.Moves() != 0 {
		t.Error("failed undo must not touch the move counter")
	}
}

func TestUndoClearsSelection(t *testing.T) {
	g := New(5)
	n := len(g.board.Columns[0])
	g.SelectCard(ZoneColumn, 0, n-1)
	g.MoveToCell(0)

	g.SelectCard(ZoneCell, 0, 0)
	if !g.Undo() {
		t.Fatal("undo should succeed")
	}
	if g.Selection() != nil {
		t.Error("undo should clear the active selection")
	}
}

func TestHistoryBound(t *testing.T) {
	g := emptyGame()

	// Shuttle one card between two cells: every hop is a legal move.
	c := card(Hearts, 7)
	g.board.Cells[0] = &c

	from, to := 0, 1
	for i := 0; i < 60; i++ {
		if !g.SelectCard(ZoneCell, from, 0) {
			t.Fatalf("selection failed on move %d", i)
		}
		if !g.MoveToCell(to) {
			t.Fatalf("cell-to-cell move failed on move %d", i)
		}
		from, to = to, from
	}

	if g.Moves() != 60 {
		t.Errorf("moveCount = %d, expected 60", g.Moves())
	}
	if g.HistoryLen() != HistoryLimit {
		t.Errorf("history holds %d entries, expected cap of %d", g.HistoryLen(), HistoryLimit)
	}

	// Only the most recent 50 moves can be unwound.
	undone := 0
	for g.Undo() {
		undone++
	}
	if undone != HistoryLimit {
		t.Errorf("undid %d moves, expected %d", undone, HistoryLimit)
	}
	if g.Moves() != 10 {
		t.Errorf("after draining history moveCount = %d, expected 10", g.Moves())
	}
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := newHistory(3)
	for moves := 1; moves <= 5; moves++ {
		var b Board
		h.push(&b, moves)
	}
	if h.len() != 3 {
		t.Fatalf("history len = %d, expected 3", h.len())
	}
	// Most recent last: popping yields 5, 4, 3.
	for _, want := range []int{5, 4, 3} {
		f, ok := h.pop()
		if !ok || f.moves != want {
			t.Errorf("pop = %d (ok=%v), expected %d", f.moves, ok, want)
		}
	}
}
