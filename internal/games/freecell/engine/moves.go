package engine

// SelectCard selects a card, or resolves an existing selection.
//
// With no active selection it validates and records one: the occupying card
// of a cell, the top card of a foundation, or a column suffix that forms a
// movable run. With a selection active, clicking the selected card again
// attempts an auto-move to the foundations, and clicking anywhere else is a
// move attempt to that zone. In every case an illegal request leaves the
// board unchanged and returns false.
func (g *Game) SelectCard(zone Zone, index, pos int) bool {
	if g.selection != nil {
		if g.isSelected(zone, index, pos) {
			sel := *g.selection
			g.selection = nil
			return g.AutoMoveToFoundation(sel.Zone, sel.Index, sel.Pos)
		}
		switch zone {
		case ZoneCell:
			return g.MoveToCell(index)
		case ZoneFoundation:
			return g.MoveToFoundation(index)
		case ZoneColumn:
			return g.MoveToColumn(index)
		default:
			g.selection = nil
			return false
		}
	}

	switch zone {
	case ZoneCell:
		if index < 0 || index >= CellCount || g.board.Cells[index] == nil {
			return false
		}
		g.selection = &Selection{Zone: ZoneCell, Index: index}
		return true

	case ZoneFoundation:
		if index < 0 || index >= FoundationCount || len(g.board.Foundations[index]) == 0 {
			return false
		}
		g.selection = &Selection{Zone: ZoneFoundation, Index: index, Pos: len(g.board.Foundations[index]) - 1}
		return true

	case ZoneColumn:
		if index < 0 || index >= ColumnCount {
			return false
		}
		col := g.board.Columns[index]
		if pos < 0 || pos >= len(col) {
			return false
		}
		// Only a valid run may be picked up as a group.
		if !IsSequence(col[pos:]) {
			return false
		}
		g.selection = &Selection{Zone: ZoneColumn, Index: index, Pos: pos}
		return true

	default:
		return false
	}
}

// ClearSelection drops any active selection. Always succeeds, no other
// side effects.
func (g *Game) ClearSelection() {
	g.selection = nil
}

// isSelected reports whether the given location is the active selection.
// Pos only disambiguates within columns.
func (g *Game) isSelected(zone Zone, index, pos int) bool {
	sel := g.selection
	if sel == nil || sel.Zone != zone || sel.Index != index {
		return false
	}
	return zone != ZoneColumn || sel.Pos == pos
}

// selectedRun returns the cards covered by the selection, in order.
// Returns nil when nothing is selected.
func (g *Game) selectedRun() []Card {
	sel := g.selection
	if sel == nil {
		return nil
	}
	switch sel.Zone {
	case ZoneCell:
		if c := g.board.Cells[sel.Index]; c != nil {
			return []Card{*c}
		}
	case ZoneFoundation:
		if f := g.board.Foundations[sel.Index]; len(f) > 0 {
			return []Card{f[len(f)-1]}
		}
	case ZoneColumn:
		col := g.board.Columns[sel.Index]
		if sel.Pos >= 0 && sel.Pos < len(col) {
			return col[sel.Pos:]
		}
	}
	return nil
}

// selectionIsSingle reports whether the selection covers exactly one
// movable card. A column selection qualifies only at the bottom-most card;
// runs cannot enter a cell or foundation.
func (g *Game) selectionIsSingle() bool {
	sel := g.selection
	if sel == nil {
		return false
	}
	if sel.Zone == ZoneColumn {
		return sel.Pos == len(g.board.Columns[sel.Index])-1
	}
	return true
}

// removeSelection takes the selected cards off their source zone.
// Callers must have validated the move first.
func (g *Game) removeSelection() {
	sel := g.selection
	switch sel.Zone {
	case ZoneCell:
		g.board.Cells[sel.Index] = nil
	case ZoneFoundation:
		f := g.board.Foundations[sel.Index]
		g.board.Foundations[sel.Index] = f[:len(f)-1]
	case ZoneColumn:
		g.board.Columns[sel.Index] = g.board.Columns[sel.Index][:sel.Pos]
	}
}

// MoveToCell moves the selected card onto an empty free cell. The selection
// is consumed either way.
func (g *Game) MoveToCell(cellIndex int) bool {
	defer g.ClearSelection()

	if cellIndex < 0 || cellIndex >= CellCount || g.board.Cells[cellIndex] != nil {
		return false
	}
	if !g.selectionIsSingle() {
		return false
	}
	run := g.selectedRun()
	if len(run) != 1 {
		return false
	}

	g.history.push(&g.board, g.moves)
	card := run[0]
	g.removeSelection()
	g.board.Cells[cellIndex] = &card
	g.moves++
	return true
}

// MoveToFoundation moves the selected card onto a foundation pile and
// checks the win condition. The selection is consumed either way.
func (g *Game) MoveToFoundation(foundationIndex int) bool {
	defer g.ClearSelection()

	if foundationIndex < 0 || foundationIndex >= FoundationCount {
		return false
	}
	if g.selection != nil && g.selection.Zone == ZoneFoundation {
		// Foundation-to-foundation shuffling is never useful and the
		// rank rule can never hold against the card's own pile.
		if g.selection.Index == foundationIndex {
			return false
		}
	}
	if !g.selectionIsSingle() {
		return false
	}
	run := g.selectedRun()
	if len(run) != 1 || !canDropOnFoundation(run[0], g.board.Foundations[foundationIndex]) {
		return false
	}

	g.history.push(&g.board, g.moves)
	g.removeSelection()
	g.board.Foundations[foundationIndex] = append(g.board.Foundations[foundationIndex], run[0])
	g.moves++
	g.checkWin()
	return true
}

// MoveToColumn moves the selected run onto a tableau column. An empty
// destination accepts any run; otherwise the run's top card must be one
// rank below the destination top with the opposite color. Either way the
// run must fit the super-move capacity, which counts empty columns
// excluding the destination. The selection is consumed either way.
func (g *Game) MoveToColumn(columnIndex int) bool {
	defer g.ClearSelection()

	if columnIndex < 0 || columnIndex >= ColumnCount {
		return false
	}
	sel := g.selection
	if sel == nil {
		return false
	}
	if sel.Zone == ZoneColumn && sel.Index == columnIndex {
		return false
	}

	run := g.selectedRun()
	if len(run) == 0 {
		return false
	}
	dest := g.board.Columns[columnIndex]
	if len(dest) > 0 && !canDropOnColumn(run[0], dest) {
		return false
	}
	if len(run) > g.board.MaxMovable(columnIndex) {
		return false
	}

	g.history.push(&g.board, g.moves)
	moved := append([]Card(nil), run...)
	g.removeSelection()
	g.board.Columns[columnIndex] = append(g.board.Columns[columnIndex], moved...)
	g.moves++
	return true
}

// AutoMoveToFoundation sends the single card at the given location to the
// first foundation pile that accepts it, scanning piles in fixed order.
// Only a top-of-zone card qualifies; when no pile accepts the card this is
// a no-op returning false.
func (g *Game) AutoMoveToFoundation(zone Zone, index, pos int) bool {
	g.ClearSelection()

	var card Card
	switch zone {
	case ZoneCell:
		if index < 0 || index >= CellCount || g.board.Cells[index] == nil {
			return false
		}
		card = *g.board.Cells[index]
	case ZoneFoundation:
		// Already home.
		return false
	case ZoneColumn:
		if index < 0 || index >= ColumnCount {
			return false
		}
		col := g.board.Columns[index]
		if len(col) == 0 || pos != len(col)-1 {
			return false
		}
		card = col[len(col)-1]
	default:
		return false
	}

	for fi := 0; fi < FoundationCount; fi++ {
		if !canDropOnFoundation(card, g.board.Foundations[fi]) {
			continue
		}
		g.history.push(&g.board, g.moves)
		switch zone {
		case ZoneCell:
			g.board.Cells[index] = nil
		case ZoneColumn:
			col := g.board.Columns[index]
			g.board.Columns[index] = col[:len(col)-1]
		}
		g.board.Foundations[fi] = append(g.board.Foundations[fi], card)
		g.moves++
		g.checkWin()
		return true
	}
	return false
}

// AutoFinish repeatedly auto-moves cards to the foundations until no cell
// or column card may go up. Each step is an ordinary foundation move and
// undoable on its own. Returns the number of cards moved.
func (g *Game) AutoFinish() int {
	moved := 0
	for {
		progressed := false
		for i := 0; i < CellCount; i++ {
			if g.AutoMoveToFoundation(ZoneCell, i, 0) {
				moved++
				progressed = true
			}
		}
		for i := 0; i < ColumnCount; i++ {
			if g.AutoMoveToFoundation(ZoneColumn, i, len(g.board.Columns[i])-1) {
				moved++
				progressed = true
			}
		}
		if !progressed {
			return moved
		}
	}
}
