package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// up returns a face-up card.
func up(r Rank, s Suit) Card {
	c := NewCard(r, s)
	c.FaceDown = false
	return c
}

// down returns a face-down card.
func down(r Rank, s Suit) Card {
	return NewCard(r, s)
}

// fillStock puts every card not yet on the table into the stock face-down,
// so hand-built layouts still satisfy conservation.
func fillStock(t *Tableau) {
	var used [DeckSize]bool
	for _, d := range t.Decks() {
		for i := 0; i < d.Len(); i++ {
			used[d.At(i).Ordinal] = true
		}
	}
	for i := range used {
		if !used[i] {
			t.Stock.PushRun([]Card{{Ordinal: uint8(i), FaceDown: true}})
		}
	}
}

// requireConserved fails the test if any card was lost or duplicated.
func requireConserved(t *testing.T, tab *Tableau) {
	t.Helper()
	require.NoError(t, tab.Verify())
}
