package engine

// Board dimensions. The union of all zones always holds the full deck:
// every card appears in exactly one of cells, foundations, or columns.
const (
	DeckSize        = 52
	CellCount       = 4
	FoundationCount = 4
	ColumnCount     = 8
)

// Zone identifies one of the three board areas a card can occupy.
type Zone uint8

const (
	ZoneCell Zone = iota
	ZoneFoundation
	ZoneColumn
)

// String returns a human-readable zone name.
func (z Zone) String() string {
	switch z {
	case ZoneCell:
		return "cell"
	case ZoneFoundation:
		return "foundation"
	case ZoneColumn:
		return "column"
	default:
		return "unknown"
	}
}

// Selection identifies a selected card, or for columns the start of a
// selected run. Pos is the card position within a column and is always 0
// for cells and the top card for foundations.
type Selection struct {
	Zone  Zone
	Index int
	Pos   int
}

// Board holds the card layout: four free cells, four foundation piles, and
// eight tableau columns. Foundations are not pre-assigned to suits; a pile's
// suit is fixed by its bottom (ace) card.
type Board struct {
	Cells       [CellCount]*Card
	Foundations [FoundationCount][]Card
	Columns     [ColumnCount][]Card
}

// Clone returns a deep copy of the board. Cards themselves are immutable
// values, so cell pointers are copied by value into fresh cards.
func (b *Board) Clone() Board {
	var out Board
	for i, c := range b.Cells {
		if c != nil {
			card := *c
			out.Cells[i] = &card
		}
	}
	for i, f := range b.Foundations {
		if len(f) > 0 {
			out.Foundations[i] = append([]Card(nil), f...)
		}
	}
	for i, col := range b.Columns {
		if len(col) > 0 {
			out.Columns[i] = append([]Card(nil), col...)
		}
	}
	return out
}

// CardCount returns the total number of cards across all zones.
func (b *Board) CardCount() int {
	n := 0
	for _, c := range b.Cells {
		if c != nil {
			n++
		}
	}
	for _, f := range b.Foundations {
		n += len(f)
	}
	for _, col := range b.Columns {
		n += len(col)
	}
	return n
}

// FoundationCardCount returns the number of cards on the foundations.
// The game is won when this reaches DeckSize.
func (b *Board) FoundationCardCount() int {
	n := 0
	for _, f := range b.Foundations {
		n += len(f)
	}
	return n
}

// emptyCells counts unoccupied free cells.
func (b *Board) emptyCells() int {
	n := 0
	for _, c := range b.Cells {
		if c == nil {
			n++
		}
	}
	return n
}

// emptyColumnsExcluding counts empty tableau columns other than dest.
// The destination itself never contributes to super-move capacity.
func (b *Board) emptyColumnsExcluding(dest int) int {
	n := 0
	for i, col := range b.Columns {
		if i != dest && len(col) == 0 {
			n++
		}
	}
	return n
}

// MaxMovable returns the largest run that may be moved to the given
// destination column: each empty free cell holds one card temporarily and
// each other empty column doubles the capacity.
func (b *Board) MaxMovable(dest int) int {
	return (1 + b.emptyCells()) << b.emptyColumnsExcluding(dest)
}

// IsSequence reports whether the cards form a movable run: strictly
// descending by one in rank with alternating colors, top to bottom.
func IsSequence(cards []Card) bool {
	for i := 0; i+1 < len(cards); i++ {
		cur, next := cards[i], cards[i+1]
		if cur.Color() == next.Color() || cur.Rank != next.Rank+1 {
			return false
		}
	}
	return true
}

// canDropOnFoundation reports whether the card may be pushed onto the
// foundation pile: an ace starts an empty pile, otherwise the card must
// follow suit one rank above the current top.
func canDropOnFoundation(c Card, pile []Card) bool {
	if len(pile) == 0 {
		return c.Rank == Ace
	}
	top := pile[len(pile)-1]
	return c.Suit == top.Suit && c.Rank == top.Rank+1
}

// canDropOnColumn reports whether the card may land on the column's top
// card. Empty columns accept anything; that check belongs to the caller.
func canDropOnColumn(c Card, col []Card) bool {
	if len(col) == 0 {
		return true
	}
	top := col[len(col)-1]
	return c.Color() != top.Color() && top.Rank == c.Rank+1
}
