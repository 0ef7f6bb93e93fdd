package core

import (
	"fmt"
	"math/rand"
	"time"
)

// State is one game of patience: the table, the gesture in progress, the
// clock and the foundation progress. The host owns a single State and
// threads it through every operation.
type State struct {
	Tableau  *Tableau
	Drag     DragSession
	Clock    GameClock
	Progress ProgressTracker
}

// NewState deals a new game with rng and starts the clock at now.
func NewState(rng *rand.Rand, now time.Time) *State {
	t := NewTableau()
	t.Deal(rng)
	return &State{
		Tableau: t,
		Clock:   NewGameClock(now),
	}
}

// Won reports whether every card is on a foundation.
func (s *State) Won() bool {
	return s.Progress.Won()
}

// Draw turns a stock card or recycles the waste. It does nothing while a
// gesture is in progress or after the game is won.
func (s *State) Draw() DrawResult {
	if s.Drag.State() != DragIdle || s.Won() {
		return DrawNothing
	}
	return s.Tableau.Draw()
}

// Press starts dragging the run at g. See DragSession.Press.
func (s *State) Press(g Grab) bool {
	if s.Won() {
		return false
	}
	return s.Drag.Press(s.Tableau, g)
}

// Hover updates the drop candidate. See DragSession.Hover.
func (s *State) Hover(over []DeckID) {
	s.Drag.Hover(s.Tableau, over)
}

// Release ends the current gesture at now and applies foundation progress.
// Drop.Outcome is DragIdle if nothing was held.
func (s *State) Release(now time.Time) (Drop, bool) {
	drop := s.Drag.Release(s.Tableau)
	return drop, s.settle(drop, now)
}

// Shortcut sends the run at g to its first legal destination at now.
// The boolean is true only on the move that wins the game.
func (s *State) Shortcut(g Grab, now time.Time) (Drop, bool) {
	if s.Won() {
		return Drop{Outcome: DragIdle}, false
	}
	drop := s.Drag.Shortcut(s.Tableau, g)
	return drop, s.settle(drop, now)
}

// settle applies a committed drop to the progress tracker and stops the
// clock on the winning deposit.
func (s *State) settle(drop Drop, now time.Time) bool {
	if drop.Outcome != DragCommitted {
		return false
	}
	if drop.Origin.Role == RoleFoundation {
		s.Progress.Withdraw(drop.Cards)
	}
	if drop.Target.Role != RoleFoundation {
		return false
	}
	if s.Progress.Deposit(drop.Cards) {
		s.Clock.Stop(now)
		return true
	}
	return false
}

// Pause freezes the clock (focus lost).
func (s *State) Pause(now time.Time) {
	s.Clock.Pause(now)
}

// Resume restarts the clock (focus regained).
func (s *State) Resume(now time.Time) {
	s.Clock.Resume(now)
}

// Elapsed returns the playtime at now.
func (s *State) Elapsed(now time.Time) time.Duration {
	return s.Clock.Elapsed(now)
}

// Status returns the "MM:SS  P%" status line at now. The time stops
// advancing once the game is won.
func (s *State) Status(now time.Time) string {
	return FormatStatus(s.Clock.Elapsed(now), s.Progress.Percent())
}

// Verify checks card conservation and that the progress count matches the
// cards actually on the foundations.
func (s *State) Verify() error {
	if err := s.Tableau.Verify(); err != nil {
		return err
	}
	if on := s.Tableau.FoundationCards(); on != s.Progress.Count() {
		return fmt.Errorf("%w: progress counts %d foundation cards, table has %d", ErrConservation, s.Progress.Count(), on)
	}
	return nil
}

// DeckView is the outbound view of one deck.
type DeckView struct {
	ID     DeckID
	Origin Point
	Mode   StackMode
	Cards  []Card
}

// View is everything a renderer needs for one frame.
type View struct {
	Decks        []DeckView
	Held         []Card
	HeldOffset   Point
	Dragging     bool
	Highlight    DeckID
	HasHighlight bool
	Status       string
	Percent      int
	Won          bool
}

// View builds the outbound view at now. The Drag deck is reported through
// Held rather than Decks.
func (s *State) View(now time.Time) View {
	v := View{
		Status:   s.Status(now),
		Percent:  s.Progress.Percent(),
		Won:      s.Won(),
		Dragging: s.Drag.Dragging(),
	}
	for _, d := range s.Tableau.Decks() {
		if d.Role() == RoleDrag {
			continue
		}
		v.Decks = append(v.Decks, DeckView{
			ID:     d.ID(),
			Origin: d.Origin(),
			Mode:   d.Mode(),
			Cards:  d.Cards(),
		})
	}
	if v.Dragging {
		v.Held = s.Tableau.Drag.Cards()
		v.HeldOffset = s.Drag.Offset()
		v.Highlight, v.HasHighlight = s.Drag.Target()
	}
	return v
}
