package freecell

import (
	"fmt"

	"github.com/morroware/freecell-tui/internal/core"
	"github.com/morroware/freecell-tui/internal/games/freecell/engine"
)

// Board geometry in screen cells.
const (
	boardLeft = 2 // left margin
	slotWidth = 6 // one card slot plus separator
	topRowY   = 2 // cells and foundations
	headerY   = 4 // column numbers
	tableauY  = 5 // first card row
	topRowGap = 2 // extra space between cells and foundations
)

// Render draws the current frame onto the screen.
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()

	if g.tooSmall {
		g.renderTooSmall(screen)
		return
	}

	st := g.eng.State()

	g.renderHUD(screen, st)
	g.renderTopRow(screen, st)
	g.renderTableau(screen, st)

	if g.cfg.Display.ShowHints {
		g.renderHints(screen)
	}

	if st.Won {
		g.renderWin(screen, st)
	} else if g.paused {
		g.renderPaused(screen)
	}
}

// renderHUD draws the title and counters on the top line.
func (g *Game) renderHUD(screen *core.Screen, st engine.State) {
	screen.DrawTextColored(boardLeft, 0, "FreeCell", core.ColorBrightGreen)
	screen.DrawTextColored(boardLeft+10, 0, fmt.Sprintf("deal %d", st.Seed), core.ColorGray)

	status := fmt.Sprintf("moves %d  %s", st.Moves, formatTime(st.Seconds))
	screen.DrawTextColored(screen.Width()-len(status)-2, 0, status, core.ColorWhite)
}

// renderTopRow draws the four free cells and the four foundations.
func (g *Game) renderTopRow(screen *core.Screen, st engine.State) {
	sel := st.Selection

	for i := 0; i < engine.CellCount; i++ {
		label := "   "
		color := core.ColorGray
		if c := st.Cells[i]; c != nil {
			label = padLabel(g.cardLabel(*c))
			color = g.cardColor(*c)
		}
		if sel != nil && sel.Zone == engine.ZoneCell && sel.Index == i {
			color = core.ColorBrightCyan
		}
		if g.cursorArea == areaTop && g.cursorX == i {
			color = core.ColorBrightYellow
		}
		g.drawSlot(screen, g.topSlotX(i), topRowY, label, color)
	}

	for i := 0; i < engine.FoundationCount; i++ {
		label := " · "
		color := core.ColorGray
		if pile := st.Foundations[i]; len(pile) > 0 {
			top := pile[len(pile)-1]
			label = padLabel(g.cardLabel(top))
			color = g.cardColor(top)
		}
		if sel != nil && sel.Zone == engine.ZoneFoundation && sel.Index == i {
			color = core.ColorBrightCyan
		}
		if g.cursorArea == areaTop && g.cursorX == engine.CellCount+i {
			color = core.ColorBrightYellow
		}
		g.drawSlot(screen, g.topSlotX(engine.CellCount+i), topRowY, label, color)
	}
}

// renderTableau draws column numbers and the eight card columns.
func (g *Game) renderTableau(screen *core.Screen, st engine.State) {
	sel := st.Selection

	for i := 0; i < engine.ColumnCount; i++ {
		x := boardLeft + i*slotWidth
		screen.DrawTextColored(x+2, headerY, fmt.Sprintf("%d", i+1), core.ColorGray)

		col := st.Columns[i]
		if len(col) == 0 {
			color := core.ColorGray
			if g.cursorArea == areaColumns && g.cursorX == i {
				color = core.ColorBrightYellow
			}
			screen.DrawTextColored(x+1, tableauY, "···", color)
			continue
		}

		for j, c := range col {
			color := g.cardColor(c)
			if sel != nil && sel.Zone == engine.ZoneColumn && sel.Index == i && j >= sel.Pos {
				color = core.ColorBrightCyan
			}
			if g.cursorArea == areaColumns && g.cursorX == i && g.cursorY == j {
				color = core.ColorBrightYellow
				screen.SetCell(x, tableauY+j, '▸', core.ColorBrightYellow)
			}
			screen.DrawTextColored(x+1, tableauY+j, padLabel(g.cardLabel(c)), color)
		}
	}
}

// renderHints draws the key help on the bottom line.
func (g *Game) renderHints(screen *core.Screen) {
	hints := "arrows move  spc pick  u undo  f finish  n new deal"
	screen.DrawTextColored(boardLeft, screen.Height()-1, hints, core.ColorGray)
}

// renderWin draws the victory overlay.
func (g *Game) renderWin(screen *core.Screen, st engine.State) {
	w, h := 34, 5
	box := core.NewRect((screen.Width()-w)/2, (screen.Height()-h)/2, w, h)
	g.clearRect(screen, box)
	screen.DrawBox(box, core.ColorBrightGreen)

	screen.DrawTextCentered(box.Y+1, "You won!")
	msg := fmt.Sprintf("%d moves in %s", st.Moves, formatTime(st.Seconds))
	screen.DrawTextCentered(box.Y+2, msg)
	screen.DrawTextCentered(box.Y+3, "n - new deal  q - quit")
}

// renderPaused draws the pause overlay.
func (g *Game) renderPaused(screen *core.Screen) {
	w, h := 16, 3
	box := core.NewRect((screen.Width()-w)/2, (screen.Height()-h)/2, w, h)
	g.clearRect(screen, box)
	screen.DrawBox(box, core.ColorYellow)
	screen.DrawTextCentered(box.Y+1, "PAUSED")
}

// renderTooSmall draws the message when the terminal is too small.
func (g *Game) renderTooSmall(screen *core.Screen) {
	screen.DrawTextCentered(screen.Height()/2, "Terminal too small for FreeCell")
	screen.DrawTextCentered(screen.Height()/2+1, "Resize to at least 52x20")
}

// drawSlot draws a bracketed card slot such as "[10♥ ]".
func (g *Game) drawSlot(screen *core.Screen, x, y int, label string, c core.Color) {
	screen.SetCell(x, y, '[', core.ColorGray)
	screen.DrawTextColored(x+1, y, label, c)
	screen.SetCell(x+4, y, ']', core.ColorGray)
}

// topSlotX returns the x position of top-row slot i, with a gap between
// the cells and the foundations.
func (g *Game) topSlotX(i int) int {
	x := boardLeft + i*slotWidth
	if i >= engine.CellCount {
		x += topRowGap
	}
	return x
}

// clearRect blanks the area behind an overlay box.
func (g *Game) clearRect(screen *core.Screen, r core.Rect) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			screen.Set(x, y, ' ')
		}
	}
}

// cardLabel formats a card per the display config: "10♥" or "10H".
func (g *Game) cardLabel(c engine.Card) string {
	if g.cfg.Display.UnicodeSuits {
		return c.Rank.String() + string(c.Suit.Glyph())
	}
	return c.String()
}

// cardColor maps the card's color class to a terminal color.
func (g *Game) cardColor(c engine.Card) core.Color {
	if c.Color() == engine.Red {
		return core.ColorBrightRed
	}
	return core.ColorWhite
}

// padLabel pads a 2-3 rune card label to exactly 3 runes.
func padLabel(label string) string {
	for len([]rune(label)) < 3 {
		label += " "
	}
	return label
}

// formatTime formats seconds as mm:ss.
func formatTime(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
