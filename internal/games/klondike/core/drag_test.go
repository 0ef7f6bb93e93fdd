package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dragTable builds a small layout used by most drag tests:
//
//	pile 0: [5♠] [9♠] 8♥ 7♣ 6♦
//	pile 1: 9♣
//	pile 2: (empty)
//	foundation 0: A♦
//	waste: 2♦
func dragTable() *Tableau {
	tab := NewTableau()
	tab.Piles[0].PushRun([]Card{down(Five, Spades), down(Nine, Spades), up(Eight, Hearts), up(Seven, Clubs), up(Six, Diamonds)})
	tab.Piles[1].PushRun([]Card{up(Nine, Clubs)})
	tab.Foundations[0].PushRun([]Card{up(Ace, Diamonds)})
	tab.Waste.PushRun([]Card{up(Two, Diamonds)})
	fillStock(tab)
	return tab
}

func TestPressMovesContiguousRun(t *testing.T) {
	tab := dragTable()
	var s DragSession
	before := tab.Piles[0].Cards()

	ok := s.Press(tab, Grab{Deck: PileID(0), Index: 3, Offset: Point{X: -2, Y: -1}})

	require.True(t, ok)
	assert.Equal(t, DragDragging, s.State())
	assert.Equal(t, before[:3], tab.Piles[0].Cards())
	assert.Equal(t, before[3:], tab.Drag.Cards())
	assert.Equal(t, Point{X: -2, Y: -1}, s.Offset())
	origin, dragging := s.Origin()
	assert.True(t, dragging)
	assert.Equal(t, PileID(0), origin)
	requireConserved(t, tab)
}

func TestCancelRestoresRunExactly(t *testing.T) {
	tab := dragTable()
	var s DragSession
	before := tab.Piles[0].Cards()

	require.True(t, s.Press(tab, Grab{Deck: PileID(0), Index: 2}))
	s.Hover(tab, nil)
	drop := s.Release(tab)

	assert.Equal(t, DragCancelled, drop.Outcome)
	assert.Equal(t, DragIdle, s.State())
	assert.Equal(t, before, tab.Piles[0].Cards(), "order and orientation preserved")
	assert.True(t, tab.Drag.Empty())
	_, hasTarget := s.Target()
	assert.False(t, hasTarget)
	requireConserved(t, tab)
}

func TestPressRejectsIllegalGrabs(t *testing.T) {
	tests := []struct {
		name string
		grab Grab
	}{
		{"face-down card", Grab{Deck: PileID(0), Index: 1}},
		{"bottom face-down card", Grab{Deck: PileID(0), Index: 0}},
		{"index past top", Grab{Deck: PileID(0), Index: 5}},
		{"negative index", Grab{Deck: PileID(0), Index: -1}},
		{"empty pile", Grab{Deck: PileID(2), Index: 0}},
		{"stock", Grab{Deck: StockID, Index: 0}},
		{"drag deck", Grab{Deck: DragID, Index: 0}},
		{"unknown pile", Grab{Deck: PileID(9), Index: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab := dragTable()
			var s DragSession
			before := tab.Piles[0].Cards()

			assert.False(t, s.Press(tab, tt.grab))
			assert.Equal(t, DragIdle, s.State())
			assert.Equal(t, before, tab.Piles[0].Cards())
			assert.True(t, tab.Drag.Empty())
		})
	}
}

func TestPressOnStackedDeckTakesOnlyTop(t *testing.T) {
	tab := dragTable()
	tab.Waste.PushRun(tab.Stock.PopRun(1))
	tab.Waste.RevealTop()
	var s DragSession

	assert.False(t, s.Press(tab, Grab{Deck: WasteID, Index: 0}), "only the top of a stacked deck")
	require.True(t, s.Press(tab, Grab{Deck: WasteID, Index: 1}))
	assert.Equal(t, 1, tab.Drag.Len())
}

func TestPressWhileDraggingIsIgnored(t *testing.T) {
	tab := dragTable()
	var s DragSession

	require.True(t, s.Press(tab, Grab{Deck: PileID(0), Index: 4}))
	assert.False(t, s.Press(tab, Grab{Deck: PileID(1), Index: 0}))
	assert.Equal(t, 1, tab.Drag.Len())
	requireConserved(t, tab)
}

func TestCommitOntoPileRevealsOrigin(t *testing.T) {
	tab := dragTable()
	var s DragSession

	// 8♥ 7♣ 6♦ onto 9♣
	require.True(t, s.Press(tab, Grab{Deck: PileID(0), Index: 2}))
	s.Hover(tab, []DeckID{PileID(1)})
	target, ok := s.Target()
	require.True(t, ok)
	assert.Equal(t, PileID(1), target)

	drop := s.Release(tab)

	assert.Equal(t, DragCommitted, drop.Outcome)
	assert.Equal(t, PileID(0), drop.Origin)
	assert.Equal(t, PileID(1), drop.Target)
	assert.Equal(t, 3, drop.Cards)
	assert.Equal(t, 4, tab.Piles[1].Len())
	top, _ := tab.Piles[0].Top()
	assert.False(t, top.FaceDown, "new top of origin is revealed")
	assert.True(t, top.Same(up(Nine, Spades)))
	assert.True(t, tab.Drag.Empty())
	requireConserved(t, tab)
}

func TestHoverIgnoresIllegalAndNonOverlappingDecks(t *testing.T) {
	tab := dragTable()
	var s DragSession

	// 7♣ 6♦ cannot go on 9♣, and pile 2 needs a king.
	require.True(t, s.Press(tab, Grab{Deck: PileID(0), Index: 3}))
	s.Hover(tab, []DeckID{PileID(1), PileID(2), WasteID, StockID})
	_, ok := s.Target()
	assert.False(t, ok)

	// Nothing reported as overlapping.
	s.Hover(tab, nil)
	_, ok = s.Target()
	assert.False(t, ok)

	drop := s.Release(tab)
	assert.Equal(t, DragCancelled, drop.Outcome)
	requireConserved(t, tab)
}

func TestHoverPrefersFoundationsOverPiles(t *testing.T) {
	tab := NewTableau()
	tab.Waste.PushRun([]Card{up(Two, Diamonds)})
	tab.Foundations[2].PushRun([]Card{up(Ace, Diamonds)})
	tab.Piles[0].PushRun([]Card{up(Three, Spades)})
	fillStock(tab)
	var s DragSession

	require.True(t, s.Press(tab, Grab{Deck: WasteID, Index: 0}))
	s.Hover(tab, []DeckID{PileID(0), FoundationID(2)})

	target, ok := s.Target()
	require.True(t, ok)
	assert.Equal(t, FoundationID(2), target)
}

func TestHoverExcludesOrigin(t *testing.T) {
	tab := NewTableau()
	tab.Piles[3].PushRun([]Card{up(Nine, Spades), up(Eight, Hearts)})
	fillStock(tab)
	var s DragSession

	require.True(t, s.Press(tab, Grab{Deck: PileID(3), Index: 1}))
	s.Hover(tab, []DeckID{PileID(3)})

	_, ok := s.Target()
	assert.False(t, ok, "dropping back where it came from is not a move")
	drop := s.Release(tab)
	assert.Equal(t, DragCancelled, drop.Outcome)
	assert.Equal(t, 2, tab.Piles[3].Len())
}

func TestHoverTargetIsReplacedEachTick(t *testing.T) {
	tab := dragTable()
	var s DragSession

	require.True(t, s.Press(tab, Grab{Deck: PileID(0), Index: 2}))
	s.Hover(tab, []DeckID{PileID(1)})
	_, ok := s.Target()
	require.True(t, ok)

	s.Hover(tab, []DeckID{PileID(2)})
	_, ok = s.Target()
	assert.False(t, ok, "moving away clears the candidate")
}

func TestFoundationTakesSingleCardOnly(t *testing.T) {
	tab := NewTableau()
	tab.Foundations[0].PushRun([]Card{up(Ace, Hearts)})
	tab.Piles[0].PushRun([]Card{up(Three, Spades), up(Two, Hearts)})
	tab.Piles[1].PushRun([]Card{up(Four, Hearts), up(Three, Clubs), up(Two, Hearts)})
	fillStock(tab)
	var s DragSession

	require.True(t, s.Press(tab, Grab{Deck: PileID(1), Index: 1}))
	s.Hover(tab, []DeckID{FoundationID(0)})
	_, ok := s.Target()
	assert.False(t, ok)
	s.Release(tab)

	require.True(t, s.Press(tab, Grab{Deck: PileID(0), Index: 1}))
	s.Hover(tab, []DeckID{FoundationID(0)})
	target, ok := s.Target()
	require.True(t, ok)
	assert.Equal(t, FoundationID(0), target)
}

func TestReleaseWithoutDragIsNoop(t *testing.T) {
	tab := dragTable()
	var s DragSession

	drop := s.Release(tab)

	assert.Equal(t, DragIdle, drop.Outcome)
	requireConserved(t, tab)
}

func TestShortcutAceGoesToFirstEmptyFoundation(t *testing.T) {
	tab := NewTableau()
	tab.Waste.PushRun([]Card{up(Ace, Clubs)})
	fillStock(tab)
	var s DragSession

	drop := s.Shortcut(tab, Grab{Deck: WasteID, Index: 0})

	assert.Equal(t, DragCommitted, drop.Outcome)
	assert.Equal(t, FoundationID(0), drop.Target)
	assert.Equal(t, 1, tab.Foundations[0].Len())
	assert.Equal(t, DragIdle, s.State())
	requireConserved(t, tab)
}

func TestShortcutAceSkipsOccupiedFoundations(t *testing.T) {
	tab := NewTableau()
	tab.Foundations[0].PushRun([]Card{up(Ace, Hearts)})
	tab.Waste.PushRun([]Card{up(Ace, Spades)})
	fillStock(tab)
	var s DragSession

	drop := s.Shortcut(tab, Grab{Deck: WasteID, Index: 0})

	assert.Equal(t, FoundationID(1), drop.Target)
}

func TestShortcutPrefersMatchingFoundationOverPile(t *testing.T) {
	tab := NewTableau()
	tab.Foundations[0].PushRun([]Card{up(Ace, Hearts)})
	tab.Foundations[2].PushRun([]Card{up(Ace, Clubs), up(Two, Clubs), up(Three, Clubs), up(Four, Clubs)})
	tab.Piles[0].PushRun([]Card{up(Six, Hearts)})
	tab.Waste.PushRun([]Card{up(Five, Clubs)})
	fillStock(tab)
	var s DragSession

	drop := s.Shortcut(tab, Grab{Deck: WasteID, Index: 0})

	assert.Equal(t, DragCommitted, drop.Outcome)
	assert.Equal(t, FoundationID(2), drop.Target)
	assert.Equal(t, 1, tab.Piles[0].Len())
	requireConserved(t, tab)
}

func TestShortcutFallsBackToFirstLegalPile(t *testing.T) {
	tab := NewTableau()
	tab.Piles[0].PushRun([]Card{up(Seven, Diamonds)})
	tab.Piles[2].PushRun([]Card{up(Six, Hearts)})
	tab.Piles[4].PushRun([]Card{up(Six, Diamonds)})
	tab.Piles[5].PushRun([]Card{up(Six, Spades)})
	tab.Piles[6].PushRun([]Card{down(Queen, Hearts), up(Five, Clubs), up(Four, Hearts)})
	fillStock(tab)
	var s DragSession

	drop := s.Shortcut(tab, Grab{Deck: PileID(6), Index: 1})

	assert.Equal(t, DragCommitted, drop.Outcome)
	assert.Equal(t, PileID(2), drop.Target, "first red six")
	assert.Equal(t, 3, tab.Piles[2].Len())
	top, _ := tab.Piles[6].Top()
	assert.False(t, top.FaceDown)
	requireConserved(t, tab)
}

func TestShortcutWithNoDestinationCancels(t *testing.T) {
	tab := NewTableau()
	tab.Piles[0].PushRun([]Card{down(Two, Spades), up(Nine, Hearts)})
	tab.Piles[1].PushRun([]Card{up(Three, Clubs)})
	fillStock(tab)
	before := tab.Piles[0].Cards()
	var s DragSession

	drop := s.Shortcut(tab, Grab{Deck: PileID(0), Index: 1})

	assert.Equal(t, DragCancelled, drop.Outcome)
	assert.Equal(t, before, tab.Piles[0].Cards())
	assert.Equal(t, DragIdle, s.State())
	requireConserved(t, tab)
}

func TestShortcutFromFoundationReturnsToPile(t *testing.T) {
	tab := NewTableau()
	tab.Foundations[0].PushRun([]Card{up(Ace, Spades)})
	tab.Piles[0].PushRun([]Card{up(Two, Hearts)})
	fillStock(tab)
	var s DragSession

	drop := s.Shortcut(tab, Grab{Deck: FoundationID(0), Index: 0})

	assert.Equal(t, DragCommitted, drop.Outcome)
	assert.Equal(t, PileID(0), drop.Target)
	assert.True(t, tab.Foundations[0].Empty())
}

func TestShortcutIllegalGrabDoesNothing(t *testing.T) {
	tab := dragTable()
	var s DragSession

	drop := s.Shortcut(tab, Grab{Deck: PileID(0), Index: 0})

	assert.Equal(t, DragIdle, drop.Outcome)
	requireConserved(t, tab)
}
