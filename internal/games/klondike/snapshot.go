package klondike

import "github.com/vovakirdan/tui-patience/internal/games/klondike/core"

// Snapshot contains the table state for determinism tests and logging.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick      uint64
	Seed      int64
	Percent   int
	Won       bool
	DragState string

	// Deck sizes in Tableau.Decks order: stock, waste, foundations, piles, drag.
	DeckSizes []int

	// Cards in the same order, each encoded as ordinal*2 + faceDown.
	CardData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick: g.tick,
		Seed: g.seed,
	}
	if g.state == nil {
		return snap
	}

	snap.Percent = g.state.Progress.Percent()
	snap.Won = g.state.Won()
	snap.DragState = g.state.Drag.State().String()

	for _, d := range g.state.Tableau.Decks() {
		snap.DeckSizes = append(snap.DeckSizes, d.Len())
		for _, c := range d.Cards() {
			snap.CardData = append(snap.CardData, encodeCard(c))
		}
	}
	return snap
}

func encodeCard(c core.Card) int {
	v := int(c.Ordinal) * 2
	if c.FaceDown {
		v++
	}
	return v
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Seed)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Percent) //#nosec G115 -- hash computation
	if snap.Won {
		h = h*31 + 1
	}
	for _, r := range snap.DragState {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	for _, v := range snap.DeckSizes {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.CardData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
