package game

import "strings"

// Suit is one of the four card suits, carried on the wire as the bare
// unicode glyph.
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

// IsRed reports whether the suit is rendered in red.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Card is an immutable card value. Display is a precomputed label like
// "10♠"; card identity is rank and suit only, never the label.
type Card struct {
	Rank    string `json:"rank"`
	Suit    Suit   `json:"suit"`
	Display string `json:"display,omitempty"`
}

// NewCard builds a card with its display label filled in.
func NewCard(rank string, suit Suit) Card {
	return Card{Rank: rank, Suit: suit, Display: rank + string(suit)}
}

// Same reports structural equality on rank and suit. Two cards with
// differently formatted display strings are still the same card.
func (c Card) Same(o Card) bool {
	return c.Rank == o.Rank && c.Suit == o.Suit
}

// RankLabel returns the rank part of the display string ("10" from
// "10♠"), falling back to the raw rank when no label was sent.
func (c Card) RankLabel() string {
	if c.Display == "" {
		return c.Rank
	}
	return strings.ReplaceAll(c.Display, string(c.Suit), "")
}

// ContainsCard reports whether cards holds a card structurally equal
// to c.
func ContainsCard(cards []Card, c Card) bool {
	for _, x := range cards {
		if x.Same(c) {
			return true
		}
	}
	return false
}
