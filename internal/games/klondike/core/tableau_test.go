package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealShape(t *testing.T) {
	tab := NewTableau()
	tab.Deal(rand.New(rand.NewSource(42)))

	requireConserved(t, tab)

	total := 0
	for p := range tab.Piles {
		pile := &tab.Piles[p]
		require.Equal(t, p+1, pile.Len(), "pile %d size", p)
		for i := 0; i < pile.Len(); i++ {
			isTop := i == pile.Len()-1
			assert.Equal(t, !isTop, pile.At(i).FaceDown, "pile %d card %d orientation", p, i)
		}
		total += pile.Len()
	}
	assert.Equal(t, DealtCount, total)

	assert.Equal(t, DeckSize-DealtCount, tab.Stock.Len())
	for i := 0; i < tab.Stock.Len(); i++ {
		assert.True(t, tab.Stock.At(i).FaceDown, "stock card %d must be face-down", i)
	}

	assert.True(t, tab.Waste.Empty())
	assert.True(t, tab.Drag.Empty())
	for f := range tab.Foundations {
		assert.True(t, tab.Foundations[f].Empty(), "foundation %d", f)
	}
}

func TestDealIsDeterministicForSeed(t *testing.T) {
	a := NewTableau()
	b := NewTableau()
	a.Deal(rand.New(rand.NewSource(7)))
	b.Deal(rand.New(rand.NewSource(7)))

	for i, d := range a.Decks() {
		assert.Equal(t, d.Cards(), b.Decks()[i].Cards(), "deck %s", d.ID())
	}

	c := NewTableau()
	c.Deal(rand.New(rand.NewSource(8)))
	assert.NotEqual(t, a.Stock.Cards(), c.Stock.Cards(), "different seeds should give different deals")
}

func TestDealResetsPreviousGame(t *testing.T) {
	tab := NewTableau()
	rng := rand.New(rand.NewSource(1))
	tab.Deal(rng)
	tab.Draw()
	tab.Draw()

	tab.Deal(rng)

	requireConserved(t, tab)
	assert.True(t, tab.Waste.Empty())
	assert.Equal(t, DeckSize-DealtCount, tab.Stock.Len())
}

func TestStockCycle(t *testing.T) {
	tab := NewTableau()
	tab.Deal(rand.New(rand.NewSource(99)))

	stockSize := tab.Stock.Len()
	drawn := make([]Card, 0, stockSize)
	for i := 0; i < stockSize; i++ {
		require.Equal(t, DrawDrew, tab.Draw())
		top, ok := tab.Waste.Top()
		require.True(t, ok)
		assert.False(t, top.FaceDown, "drawn cards are face-up")
		drawn = append(drawn, top)
		requireConserved(t, tab)
	}

	assert.True(t, tab.Stock.Empty())
	require.Equal(t, stockSize, tab.Waste.Len())
	// Bottom of the waste is the first card drawn, top is the last.
	for i, c := range drawn {
		assert.True(t, tab.Waste.At(i).Same(c))
	}

	require.Equal(t, DrawRecycled, tab.Draw())
	requireConserved(t, tab)
	assert.True(t, tab.Waste.Empty())
	require.Equal(t, stockSize, tab.Stock.Len())
	for i := 0; i < tab.Stock.Len(); i++ {
		assert.True(t, tab.Stock.At(i).FaceDown, "recycled cards are face-down")
	}

	for i := 0; i < stockSize; i++ {
		require.Equal(t, DrawDrew, tab.Draw())
		top, _ := tab.Waste.Top()
		assert.True(t, top.Same(drawn[i]), "redraw %d: got %s want %s", i, top.Label(), drawn[i].Label())
	}
}

func TestDrawWithEverythingEmpty(t *testing.T) {
	tab := NewTableau()

	assert.Equal(t, DrawNothing, tab.Draw())
	assert.True(t, tab.Stock.Empty())
	assert.True(t, tab.Waste.Empty())
}

func TestTopOfEmptyDeck(t *testing.T) {
	tab := NewTableau()

	_, ok := tab.Foundations[0].Top()
	assert.False(t, ok)
	assert.Nil(t, tab.Foundations[0].PopRun(1))
	tab.Foundations[0].RevealTop() // must not panic
}

func TestDeckLookup(t *testing.T) {
	tab := NewTableau()

	assert.Same(t, &tab.Stock, tab.Deck(StockID))
	assert.Same(t, &tab.Waste, tab.Deck(WasteID))
	assert.Same(t, &tab.Drag, tab.Deck(DragID))
	assert.Same(t, &tab.Foundations[3], tab.Deck(FoundationID(3)))
	assert.Same(t, &tab.Piles[6], tab.Deck(PileID(6)))
	assert.Nil(t, tab.Deck(PileID(7)))
	assert.Nil(t, tab.Deck(FoundationID(-1)))

	assert.Len(t, tab.Decks(), 14)
	for _, d := range tab.Decks() {
		switch d.Role() {
		case RoleFoundation, RolePile:
			assert.True(t, d.DropAllowed(), d.ID().String())
		default:
			assert.False(t, d.DropAllowed(), d.ID().String())
		}
	}
}

func TestVerifyDetectsLossAndDuplication(t *testing.T) {
	tab := NewTableau()
	tab.Deal(rand.New(rand.NewSource(3)))

	lost := tab.Stock.PopRun(1)
	assert.ErrorIs(t, tab.Verify(), ErrConservation)

	tab.Stock.PushRun(lost)
	require.NoError(t, tab.Verify())

	top, _ := tab.Piles[0].Top()
	tab.Waste.PushRun([]Card{top})
	assert.ErrorIs(t, tab.Verify(), ErrConservation)
}

func TestPopRunPreservesOrder(t *testing.T) {
	tab := NewTableau()
	tab.Piles[0].PushRun([]Card{down(King, Spades), up(Nine, Hearts), up(Eight, Clubs), up(Seven, Diamonds)})

	run := tab.Piles[0].PopRun(2)

	assert.Equal(t, []Card{up(Eight, Clubs), up(Seven, Diamonds)}, run)
	assert.Equal(t, 2, tab.Piles[0].Len())
	assert.Equal(t, 1, tab.Piles[0].FaceUpTail())
}
