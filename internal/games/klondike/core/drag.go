package core

// DragState is the phase of a pick-up-and-place gesture.
type DragState int

const (
	DragIdle DragState = iota
	DragArmed
	DragDragging
	DragCommitted
	DragCancelled
)

// String returns a human-readable name for the state.
func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragArmed:
		return "armed"
	case DragDragging:
		return "dragging"
	case DragCommitted:
		return "committed"
	case DragCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Grab is a resolved press: which deck, which card in it, and the vector
// from the card's anchor to the pointer.
type Grab struct {
	Deck   DeckID
	Index  int
	Offset Point
}

// Drop reports how a gesture ended.
type Drop struct {
	// Outcome is DragCommitted, DragCancelled, or DragIdle if nothing was held.
	Outcome DragState
	Origin  DeckID
	Target  DeckID
	Cards   int
}

// DragSession is the state machine for an in-progress gesture. The held
// cards live in the tableau's Drag deck; the session records where they came
// from and where they would land.
type DragSession struct {
	state     DragState
	origin    DeckID
	target    DeckID
	hasTarget bool
	offset    Point
}

// State returns the current phase.
func (s *DragSession) State() DragState {
	return s.state
}

// Dragging reports whether cards are currently held.
func (s *DragSession) Dragging() bool {
	return s.state == DragDragging
}

// Origin returns the deck the held run came from.
func (s *DragSession) Origin() (DeckID, bool) {
	return s.origin, s.state == DragDragging
}

// Target returns the current drop candidate, if any.
func (s *DragSession) Target() (DeckID, bool) {
	return s.target, s.hasTarget
}

// Offset returns the pointer offset fixed at pick-up.
func (s *DragSession) Offset() Point {
	return s.offset
}

// CanGrab reports whether g names a card that may be picked up: a face-up
// card on the waste, a foundation or a pile, which is the top card of a
// stacked deck or lies within the face-up tail of a fanned one.
func CanGrab(t *Tableau, g Grab) bool {
	d := t.Deck(g.Deck)
	if d == nil {
		return false
	}
	switch d.Role() {
	case RoleWaste, RoleFoundation, RolePile:
	default:
		return false
	}
	if g.Index < 0 || g.Index >= d.Len() {
		return false
	}
	if d.At(g.Index).FaceDown {
		return false
	}
	if d.Mode() == Stack {
		return g.Index == d.Len()-1
	}
	return g.Index >= d.FaceUpTail()
}

// Press starts a gesture. The run from the grabbed card to the top moves
// into the Drag deck. It returns false and changes nothing when the grab is
// not legal or a gesture is already in progress.
func (s *DragSession) Press(t *Tableau, g Grab) bool {
	if s.state != DragIdle || !CanGrab(t, g) {
		return false
	}
	s.state = DragArmed
	s.origin = g.Deck
	s.offset = g.Offset
	s.hasTarget = false

	from := t.Deck(g.Deck)
	t.Drag.PushRun(from.PopRun(from.Len() - g.Index))
	s.state = DragDragging
	return true
}

// Hover recomputes the drop candidate from the decks the host reports as
// overlapping the held run. Foundations are tried before piles, each in
// index order; the first legal deck wins. The origin is never a candidate.
func (s *DragSession) Hover(t *Tableau, over []DeckID) {
	if s.state != DragDragging {
		return
	}
	s.hasTarget = false

	overlapping := make(map[DeckID]bool, len(over))
	for _, id := range over {
		overlapping[id] = true
	}

	held := t.Drag.Cards()
	for _, d := range dropOrder(t) {
		if !overlapping[d.ID()] || d.ID() == s.origin {
			continue
		}
		if Accepts(d, held) {
			s.target = d.ID()
			s.hasTarget = true
			return
		}
	}
}

// Release ends the gesture: the run lands on the candidate if there is one
// and it still accepts the run, otherwise it goes back to the origin
// unchanged.
func (s *DragSession) Release(t *Tableau) Drop {
	if s.state != DragDragging {
		return Drop{Outcome: DragIdle}
	}

	from := t.Deck(s.origin)
	drop := Drop{Origin: s.origin, Cards: t.Drag.Len()}

	var to *Deck
	if s.hasTarget {
		to = t.Deck(s.target)
	}
	if to != nil && Accepts(to, t.Drag.Cards()) {
		s.state = DragCommitted
		to.PushRun(t.Drag.TakeAll())
		from.RevealTop()
		drop.Target = s.target
	} else {
		s.state = DragCancelled
		from.PushRun(t.Drag.TakeAll())
	}
	drop.Outcome = s.state

	s.reset()
	return drop
}

// Shortcut picks up g and sends it straight to the first legal destination:
// a single card goes to a foundation if one accepts it, otherwise the run
// goes to the first accepting pile. Cards taken from a foundation only go
// back to the piles. With no legal destination the gesture is cancelled.
func (s *DragSession) Shortcut(t *Tableau, g Grab) Drop {
	if !s.Press(t, g) {
		return Drop{Outcome: DragIdle}
	}

	held := t.Drag.Cards()
	if len(held) == 1 && s.origin.Role != RoleFoundation {
		for i := range t.Foundations {
			if Accepts(&t.Foundations[i], held) {
				s.target, s.hasTarget = t.Foundations[i].ID(), true
				break
			}
		}
	}
	if !s.hasTarget {
		for i := range t.Piles {
			p := &t.Piles[i]
			if p.ID() != s.origin && Accepts(p, held) {
				s.target, s.hasTarget = p.ID(), true
				break
			}
		}
	}

	return s.Release(t)
}

// reset returns the session to Idle.
func (s *DragSession) reset() {
	s.state = DragIdle
	s.origin = DeckID{}
	s.target = DeckID{}
	s.hasTarget = false
	s.offset = Point{}
}

// dropOrder lists the drop-allowed decks in candidate priority order.
func dropOrder(t *Tableau) []*Deck {
	decks := make([]*Deck, 0, FoundationCount+PileCount)
	for i := range t.Foundations {
		decks = append(decks, &t.Foundations[i])
	}
	for i := range t.Piles {
		decks = append(decks, &t.Piles[i])
	}
	return decks
}
