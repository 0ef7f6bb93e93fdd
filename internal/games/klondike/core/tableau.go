package core

import (
	"errors"
	"fmt"
	"math/rand"
)

const (
	// FoundationCount is the number of foundations.
	FoundationCount = 4
	// PileCount is the number of tableau piles.
	PileCount = 7
	// DealtCount is the number of cards dealt to the piles (1+2+...+7).
	DealtCount = PileCount * (PileCount + 1) / 2
)

// ErrConservation is returned by Verify when cards were lost or duplicated.
var ErrConservation = errors.New("core: card conservation violated")

// Tableau owns the 14 decks of a game.
type Tableau struct {
	Stock       Deck
	Waste       Deck
	Foundations [FoundationCount]Deck
	Piles       [PileCount]Deck
	Drag        Deck
}

// NewTableau creates a tableau with every deck empty.
func NewTableau() *Tableau {
	t := &Tableau{
		Stock: newDeck(StockID, Stack),
		Waste: newDeck(WasteID, Stack),
		Drag:  newDeck(DragID, Fan),
	}
	for i := range t.Foundations {
		t.Foundations[i] = newDeck(FoundationID(i), Stack)
	}
	for i := range t.Piles {
		t.Piles[i] = newDeck(PileID(i), Fan)
	}
	return t
}

// Deck returns the deck with the given id, or nil if the id is out of range.
func (t *Tableau) Deck(id DeckID) *Deck {
	switch id.Role {
	case RoleStock:
		return &t.Stock
	case RoleWaste:
		return &t.Waste
	case RoleDrag:
		return &t.Drag
	case RoleFoundation:
		if id.Index >= 0 && id.Index < FoundationCount {
			return &t.Foundations[id.Index]
		}
	case RolePile:
		if id.Index >= 0 && id.Index < PileCount {
			return &t.Piles[id.Index]
		}
	}
	return nil
}

// Decks returns all 14 decks in draw order: stock, waste, foundations,
// piles, drag.
func (t *Tableau) Decks() []*Deck {
	decks := make([]*Deck, 0, 2+FoundationCount+PileCount+1)
	decks = append(decks, &t.Stock, &t.Waste)
	for i := range t.Foundations {
		decks = append(decks, &t.Foundations[i])
	}
	for i := range t.Piles {
		decks = append(decks, &t.Piles[i])
	}
	return append(decks, &t.Drag)
}

// Deal empties every deck, shuffles a fresh deck with rng and deals the
// triangular layout: pile p gets p+1 cards with only the last face-up.
// The remaining 24 cards stay in the stock face-down.
func (t *Tableau) Deal(rng *rand.Rand) {
	for _, d := range t.Decks() {
		d.TakeAll()
	}

	cards := NewDeck()
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	t.Stock.PushRun(cards)

	for p := range t.Piles {
		for c := 0; c <= p; c++ {
			run := t.Stock.PopRun(1)
			run[0].FaceDown = c != p
			t.Piles[p].PushRun(run)
		}
	}
}

// DrawResult describes what a Draw did.
type DrawResult int

const (
	DrawNothing DrawResult = iota
	DrawDrew
	DrawRecycled
)

// String returns a human-readable name for the result.
func (r DrawResult) String() string {
	switch r {
	case DrawDrew:
		return "drew"
	case DrawRecycled:
		return "recycled"
	default:
		return "nothing"
	}
}

// Draw moves the top stock card to the waste face-up. When the stock is
// empty the whole waste is turned back into the stock face-down, reversed,
// so the next pass draws the cards in the same order again.
func (t *Tableau) Draw() DrawResult {
	if !t.Stock.Empty() {
		run := t.Stock.PopRun(1)
		run[0].FaceDown = false
		t.Waste.PushRun(run)
		return DrawDrew
	}

	if t.Waste.Empty() {
		return DrawNothing
	}

	run := t.Waste.TakeAll()
	for i, j := 0, len(run)-1; i < j; i, j = i+1, j-1 {
		run[i], run[j] = run[j], run[i]
	}
	for i := range run {
		run[i].FaceDown = true
	}
	t.Stock.PushRun(run)
	return DrawRecycled
}

// FoundationCards returns the number of cards on all foundations.
func (t *Tableau) FoundationCards() int {
	n := 0
	for i := range t.Foundations {
		n += t.Foundations[i].Len()
	}
	return n
}

// Verify checks that the decks together hold each of the 52 cards exactly
// once.
func (t *Tableau) Verify() error {
	var seen [DeckSize]bool
	total := 0
	for _, d := range t.Decks() {
		for i := 0; i < d.Len(); i++ {
			c := d.At(i)
			if !c.Valid() {
				return fmt.Errorf("%w: %s holds invalid ordinal %d", ErrConservation, d.ID(), c.Ordinal)
			}
			if seen[c.Ordinal] {
				return fmt.Errorf("%w: %s duplicated in %s", ErrConservation, c.Label(), d.ID())
			}
			seen[c.Ordinal] = true
			total++
		}
	}
	if total != DeckSize {
		return fmt.Errorf("%w: %d cards on the table", ErrConservation, total)
	}
	return nil
}
