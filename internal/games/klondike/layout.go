package klondike

import (
	"github.com/vovakirdan/tui-patience/internal/config"
	platformcore "github.com/vovakirdan/tui-patience/internal/core"
	"github.com/vovakirdan/tui-patience/internal/games/klondike/core"
)

// layout maps decks to screen cells for one screen size.
// Top row: stock, waste, gap, four foundations. Below it: seven piles.
type layout struct {
	cfg     config.LayoutConfig
	screenW int
	screenH int
}

func newLayout(cfg config.LayoutConfig, w, h int) layout {
	return layout{cfg: cfg, screenW: w, screenH: h}
}

// column returns the x of deck column i (0-6).
func (l layout) column(i int) int {
	return l.cfg.MarginX + i*(l.cfg.CardWidth+l.cfg.GapX)
}

func (l layout) topY() int {
	return l.cfg.MarginTop
}

func (l layout) pileY() int {
	return l.topY() + l.cfg.CardHeight + l.cfg.GapY
}

// minSize is the smallest screen that shows every deck and one card of each pile.
func (l layout) minSize() (int, int) {
	w := l.column(core.PileCount-1) + l.cfg.CardWidth + l.cfg.MarginX
	h := l.pileY() + l.cfg.CardHeight + 1
	return w, h
}

func (l layout) fits() bool {
	w, h := l.minSize()
	return l.screenW >= w && l.screenH >= h
}

// anchor returns the top-left cell of a deck.
func (l layout) anchor(id core.DeckID) core.Point {
	switch id.Role {
	case core.RoleStock:
		return core.Point{X: l.column(0), Y: l.topY()}
	case core.RoleWaste:
		return core.Point{X: l.column(1), Y: l.topY()}
	case core.RoleFoundation:
		return core.Point{X: l.column(3 + id.Index), Y: l.topY()}
	case core.RolePile:
		return core.Point{X: l.column(id.Index), Y: l.pileY()}
	default:
		return core.Point{}
	}
}

// apply stores the anchors on every deck of the tableau.
func (l layout) apply(t *core.Tableau) {
	for _, d := range t.Decks() {
		d.SetOrigin(l.anchor(d.ID()))
	}
}

func (l layout) cardRect(at core.Point) platformcore.Rect {
	return platformcore.NewRect(at.X, at.Y, l.cfg.CardWidth, l.cfg.CardHeight)
}

// fanStep returns the rows given to each face-up card of a fan at origin.
// Tall piles that would run off the screen are compressed to one row per card.
func (l layout) fanStep(origin core.Point, cards []core.Card) int {
	down, up := 0, 0
	for _, c := range cards {
		if c.FaceDown {
			down++
		} else {
			up++
		}
	}
	step := l.cfg.FanUp
	if up > 1 && origin.Y+down*l.cfg.FanDown+(up-1)*step+l.cfg.CardHeight > l.screenH {
		step = 1
	}
	return step
}

// cardRects returns the full rectangle of every card, bottom to top.
// Later cards are drawn over earlier ones.
func (l layout) cardRects(origin core.Point, mode core.StackMode, cards []core.Card) []platformcore.Rect {
	rects := make([]platformcore.Rect, len(cards))
	if mode == core.Stack {
		for i := range rects {
			rects[i] = l.cardRect(origin)
		}
		return rects
	}

	step := l.fanStep(origin, cards)
	y := origin.Y
	for i, c := range cards {
		rects[i] = l.cardRect(core.Point{X: origin.X, Y: y})
		if c.FaceDown {
			y += l.cfg.FanDown
		} else {
			y += step
		}
	}
	return rects
}

// topRect is the rectangle of the top card, or of the empty slot.
func (l layout) topRect(d *core.Deck) platformcore.Rect {
	if d.Empty() {
		return l.cardRect(d.Origin())
	}
	rects := l.cardRects(d.Origin(), d.Mode(), d.Cards())
	return rects[len(rects)-1]
}

// hit is what lies under a cell. Index is -1 for an empty slot.
type hit struct {
	deck   core.DeckID
	index  int
	anchor core.Point
}

// hitTest resolves a cell to the deck and card under it. Only the top card of
// a stacked deck can be hit; in a fan the topmost card covering the cell wins.
func (l layout) hitTest(t *core.Tableau, x, y int) (hit, bool) {
	for _, d := range t.Decks() {
		if d.Role() == core.RoleDrag {
			continue
		}
		if d.Empty() {
			if l.cardRect(d.Origin()).Contains(x, y) {
				return hit{deck: d.ID(), index: -1, anchor: d.Origin()}, true
			}
			continue
		}
		rects := l.cardRects(d.Origin(), d.Mode(), d.Cards())
		for i := len(rects) - 1; i >= 0; i-- {
			if !rects[i].Contains(x, y) {
				continue
			}
			if d.Mode() == core.Stack {
				i = len(rects) - 1
			}
			return hit{deck: d.ID(), index: i, anchor: core.Point{X: rects[i].X, Y: rects[i].Y}}, true
		}
	}
	return hit{}, false
}

// heldRect is the rectangle of the leading held card when the pointer is at
// (x, y) and the card was grabbed offset cells from its corner.
func (l layout) heldRect(x, y int, offset core.Point) platformcore.Rect {
	return l.cardRect(core.Point{X: x - offset.X, Y: y - offset.Y})
}

// overlapping returns the foundations and piles whose top card (or empty
// slot) intersects r.
func (l layout) overlapping(t *core.Tableau, r platformcore.Rect) []core.DeckID {
	var over []core.DeckID
	for _, d := range t.Decks() {
		if !d.DropAllowed() {
			continue
		}
		if l.topRect(d).Intersects(r) {
			over = append(over, d.ID())
		}
	}
	return over
}
