// Package core contains the pure Klondike rules: cards, decks, the tableau,
// move legality, the drag state machine, and the clock/progress bookkeeping.
// It has no knowledge of screen geometry, terminals, or wall time; callers
// pass in resolved deck facts and timestamps.
package core

import "strconv"

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// Rank is a card rank, 0 (ace) through 12 (king).
type Rank uint8

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the short rank label ("A", "2".."10", "J", "Q", "K").
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
	}
	if r < King {
		return strconv.Itoa(int(r) + 1)
	}
	return "?"
}

// Suit is a card suit, 0 through 3.
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// String returns the suit symbol.
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// ColorFamily groups suits for alternating-color legality on piles.
type ColorFamily uint8

const (
	Red ColorFamily = iota
	Black
)

// Color returns the suit's color family. Suits 0/1 are red, 2/3 black.
func (s Suit) Color() ColorFamily {
	return ColorFamily(s / 2)
}

// Card is a playing card. Ordinal encodes rank and suit and never changes
// once dealt; FaceDown is the only mutable part.
type Card struct {
	Ordinal  uint8
	FaceDown bool
}

// NewCard builds a face-down card from rank and suit.
func NewCard(r Rank, s Suit) Card {
	return Card{Ordinal: uint8(s)*13 + uint8(r), FaceDown: true}
}

// Rank returns the card's rank.
func (c Card) Rank() Rank {
	return Rank(c.Ordinal % 13)
}

// Suit returns the card's suit.
func (c Card) Suit() Suit {
	return Suit(c.Ordinal / 13)
}

// Color returns the card's color family.
func (c Card) Color() ColorFamily {
	return c.Suit().Color()
}

// Same reports whether two cards have the same identity, ignoring orientation.
func (c Card) Same(other Card) bool {
	return c.Ordinal == other.Ordinal
}

// Valid reports whether the ordinal is within the deck.
func (c Card) Valid() bool {
	return c.Ordinal < DeckSize
}

// Label returns the face label, e.g. "A♥" or "10♠".
func (c Card) Label() string {
	return c.Rank().String() + c.Suit().String()
}

// String returns the label, with a marker for face-down cards.
func (c Card) String() string {
	if c.FaceDown {
		return "[" + c.Label() + "]"
	}
	return c.Label()
}

// NewDeck returns the 52 cards in ordinal order, all face-down.
func NewDeck() []Card {
	cards := make([]Card, DeckSize)
	for i := range cards {
		cards[i] = Card{Ordinal: uint8(i), FaceDown: true}
	}
	return cards
}
