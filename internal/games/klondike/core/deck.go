package core

import "fmt"

// Role identifies what a deck is for on the table.
type Role int

const (
	RoleStock Role = iota
	RoleWaste
	RoleFoundation
	RolePile
	RoleDrag
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleStock:
		return "stock"
	case RoleWaste:
		return "waste"
	case RoleFoundation:
		return "foundation"
	case RolePile:
		return "pile"
	case RoleDrag:
		return "drag"
	default:
		return "unknown"
	}
}

// StackMode controls how a deck's cards are laid out.
type StackMode int

const (
	// Stack shows only the top card; only the top card may be picked up.
	Stack StackMode = iota
	// Fan spreads cards so any face-up card in the tail may be picked up.
	Fan
)

// Point is a 2D anchor. The core stores it for the host and never reads it.
type Point struct {
	X, Y int
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// DeckID addresses one deck of a Tableau. Index is only meaningful for
// foundations (0-3) and piles (0-6).
type DeckID struct {
	Role  Role
	Index int
}

// Well-known deck identifiers.
var (
	StockID = DeckID{Role: RoleStock}
	WasteID = DeckID{Role: RoleWaste}
	DragID  = DeckID{Role: RoleDrag}
)

// FoundationID returns the id of foundation i.
func FoundationID(i int) DeckID {
	return DeckID{Role: RoleFoundation, Index: i}
}

// PileID returns the id of tableau pile i.
func PileID(i int) DeckID {
	return DeckID{Role: RolePile, Index: i}
}

// String returns e.g. "pile 3" or "waste".
func (id DeckID) String() string {
	switch id.Role {
	case RoleFoundation, RolePile:
		return fmt.Sprintf("%s %d", id.Role, id.Index)
	default:
		return id.Role.String()
	}
}

// Deck is an ordered, owned sequence of cards plus placement metadata.
// Cards are ordered bottom to top; the last element is the top card.
type Deck struct {
	id     DeckID
	mode   StackMode
	origin Point
	cards  []Card
}

// newDeck creates an empty deck for the given slot.
func newDeck(id DeckID, mode StackMode) Deck {
	return Deck{id: id, mode: mode}
}

// ID returns the deck's identifier.
func (d *Deck) ID() DeckID {
	return d.id
}

// Role returns the deck's role.
func (d *Deck) Role() Role {
	return d.id.Role
}

// Mode returns the deck's stacking mode.
func (d *Deck) Mode() StackMode {
	return d.mode
}

// DropAllowed reports whether cards may be dropped onto this deck.
func (d *Deck) DropAllowed() bool {
	switch d.id.Role {
	case RoleFoundation, RolePile:
		return true
	default:
		return false
	}
}

// Origin returns the layout anchor.
func (d *Deck) Origin() Point {
	return d.origin
}

// SetOrigin records the layout anchor chosen by the host.
func (d *Deck) SetOrigin(p Point) {
	d.origin = p
}

// Len returns the number of cards.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Empty reports whether the deck holds no cards.
func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// At returns the card at index i (0 is the bottom).
func (d *Deck) At(i int) Card {
	return d.cards[i]
}

// Cards returns a copy of the card sequence.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Top returns the top card, or false if the deck is empty.
func (d *Deck) Top() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[len(d.cards)-1], true
}

// PushRun appends cards on top, preserving their order.
func (d *Deck) PushRun(cards []Card) {
	d.cards = append(d.cards, cards...)
}

// PopRun removes and returns the top n cards in bottom-to-top order.
// n is clamped to the deck size; nothing to take yields nil.
func (d *Deck) PopRun(n int) []Card {
	n = min(n, len(d.cards))
	if n <= 0 {
		return nil
	}
	start := len(d.cards) - n
	run := make([]Card, n)
	copy(run, d.cards[start:])
	d.cards = d.cards[:start]
	return run
}

// TakeAll drains the deck and returns its full sequence.
func (d *Deck) TakeAll() []Card {
	run := d.cards
	d.cards = nil
	return run
}

// RevealTop turns the top card face-up. It is a no-op on an empty deck.
func (d *Deck) RevealTop() {
	if len(d.cards) == 0 {
		return
	}
	d.cards[len(d.cards)-1].FaceDown = false
}

// FaceUpTail returns the index where the contiguous face-up run at the top
// of the deck begins. It equals Len() when the top card is face-down or the
// deck is empty.
func (d *Deck) FaceUpTail() int {
	i := len(d.cards)
	for i > 0 && !d.cards[i-1].FaceDown {
		i--
	}
	return i
}
