package engine

import "math/rand"

// deal shuffles a fresh deck with the seeded generator and lays it out
// round-robin across the eight columns: one card per column per round, so
// columns 0-3 end with 7 cards and columns 4-7 with 6.
func deal(seed int64) Board {
	deck := NewDeck()

	// Fisher-Yates: uniform over all 52! orderings for a uniform source.
	rng := rand.New(rand.NewSource(seed))
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}

	var b Board
	for i, c := range deck {
		col := i % ColumnCount
		b.Columns[col] = append(b.Columns[col], c)
	}
	return b
}
