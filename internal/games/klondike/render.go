package klondike

import (
	"strconv"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/tui-patience/internal/core"
	"github.com/vovakirdan/tui-patience/internal/games/klondike/core"
)

// Card colors.
const (
	colorRedSuit   = platformcore.ColorBrightRed
	colorBlackSuit = platformcore.ColorBrightWhite
	colorFace      = platformcore.ColorWhite
	colorBack      = platformcore.ColorBlue
	colorSlot      = platformcore.ColorGray
	colorTarget    = platformcore.ColorBrightGreen
	colorHeld      = platformcore.ColorBrightYellow
	colorStatus    = platformcore.ColorCyan
)

// Render draws the table to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	if !g.layout.fits() {
		w, h := g.layout.minSize()
		g.renderOverlay(dst, "Window too small", "Need "+strconv.Itoa(w)+"x"+strconv.Itoa(h))
		return
	}

	v := g.state.View(g.now())
	g.renderHUD(dst, v)

	for _, d := range v.Decks {
		target := v.HasHighlight && v.Highlight == d.ID
		g.renderDeck(dst, d, target)
	}

	if v.Dragging && g.pointer.Known {
		r := g.layout.heldRect(g.pointer.X, g.pointer.Y, v.HeldOffset)
		rects := g.layout.cardRects(core.Point{X: r.X, Y: r.Y}, core.Fan, v.Held)
		for i, c := range v.Held {
			g.renderCard(dst, rects[i], c, colorHeld)
		}
	}

	switch {
	case v.Won:
		g.renderOverlay(dst, "You win! "+v.Status, "Press R to deal again")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case g.blurred:
		g.renderOverlay(dst, "Paused", "Focus the window to continue")
	}
}

// renderHUD draws the status line and key hints on row 0.
func (g *Game) renderHUD(dst *platformcore.Screen, v core.View) {
	dst.DrawTextColor(1, 0, "Klondike  "+v.Status, colorStatus)

	hints := "D: draw  R: new deal  P: pause  Q: quit"
	x := dst.Width() - utf8.RuneCountInString(hints) - 1
	if x > 24 {
		dst.DrawTextColor(x, 0, hints, colorSlot)
	}
}

func (g *Game) renderDeck(dst *platformcore.Screen, d core.DeckView, target bool) {
	if len(d.Cards) == 0 {
		g.renderSlot(dst, d, target)
		return
	}

	rects := g.layout.cardRects(d.Origin, d.Mode, d.Cards)
	first := 0
	if d.Mode == core.Stack {
		first = len(d.Cards) - 1
	}
	for i := first; i < len(d.Cards); i++ {
		border := colorFace
		if target && i == len(d.Cards)-1 {
			border = colorTarget
		}
		g.renderCard(dst, rects[i], d.Cards[i], border)
	}

	if d.ID == core.StockID {
		r := rects[len(rects)-1]
		count := strconv.Itoa(len(d.Cards))
		dst.DrawTextColor(r.X+(r.W-len(count))/2, r.Y+r.H/2, count, platformcore.ColorBrightWhite)
	}
}

// renderSlot draws an empty deck position.
func (g *Game) renderSlot(dst *platformcore.Screen, d core.DeckView, target bool) {
	r := g.layout.cardRect(d.Origin)
	border := colorSlot
	if target {
		border = colorTarget
	}
	dst.DrawRect(r, ' ', platformcore.ColorDefault)
	dst.DrawBox(r, border)

	var mark string
	switch d.ID.Role {
	case core.RoleStock:
		if g.state.Tableau.Waste.Len() > 0 {
			mark = "↺"
		}
	case core.RoleFoundation:
		mark = "A"
	case core.RolePile:
		mark = "K"
	}
	if mark != "" {
		dst.DrawTextColor(r.X+r.W/2, r.Y+r.H/2, mark, colorSlot)
	}
}

// renderCard draws one card. The label sits in the top border so it stays
// readable when the card is covered by the next one in a fan.
func (g *Game) renderCard(dst *platformcore.Screen, r platformcore.Rect, c core.Card, border platformcore.Color) {
	if c.FaceDown {
		dst.DrawRect(r, '░', colorBack)
		dst.DrawBox(r, colorBack)
		return
	}

	dst.DrawRect(r, ' ', platformcore.ColorDefault)
	dst.DrawBox(r, border)

	suit := colorBlackSuit
	if c.Color() == core.Red {
		suit = colorRedSuit
	}
	label := c.Label()
	dst.DrawTextColor(r.X+1, r.Y, label, suit)
	dst.DrawTextColor(r.Right()-1-utf8.RuneCountInString(label), r.Bottom()-1, label, suit)
	dst.DrawTextColor(r.X+r.W/2, r.Y+r.H/2, c.Suit().String(), suit)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, title, subtitle string) {
	w := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	h := 4
	r := platformcore.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(r, ' ', platformcore.ColorDefault)
	dst.DrawBox(r, platformcore.ColorYellow)
	dst.DrawTextCentered(r.Y+1, title, platformcore.ColorBrightYellow)
	dst.DrawTextCentered(r.Y+2, subtitle, platformcore.ColorWhite)
}
