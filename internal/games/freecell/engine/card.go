package engine

import "fmt"

// Suit identifies one of the four card suits.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns a single-letter suit code.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	default:
		return "?"
	}
}

// Glyph returns the suit symbol for display.
func (s Suit) Glyph() rune {
	switch s {
	case Spades:
		return '♠'
	case Hearts:
		return '♥'
	case Diamonds:
		return '♦'
	case Clubs:
		return '♣'
	default:
		return '?'
	}
}

// CardColor is the red/black color class of a suit.
type CardColor uint8

const (
	Black CardColor = iota
	Red
)

// Color returns the color class of the suit.
func (s Suit) Color() CardColor {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Rank is a card rank from Ace (1) to King (13).
type Rank uint8

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// String returns the display label for the rank.
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", uint8(r))
	}
}

// Card is an immutable playing card value. Two cards are equal iff suit and
// rank match; a standard deck contains each combination exactly once.
type Card struct {
	Suit Suit
	Rank Rank
}

// Color returns the card's color class, derived from its suit.
func (c Card) Color() CardColor {
	return c.Suit.Color()
}

// String returns a compact label such as "AS" or "10H".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// NewDeck builds the 52-card deck in deterministic suit/rank order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Ace; rank <= King; rank++ {
			deck = append(deck, Card{Suit: suit, Rank: rank})
		}
	}
	return deck
}
