// Package klondike hosts the Klondike patience game on the platform: it turns
// pointer and key input into rules-core operations, lays the table out on the
// screen, and draws it.
package klondike

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-patience/internal/config"
	platformcore "github.com/vovakirdan/tui-patience/internal/core"
	"github.com/vovakirdan/tui-patience/internal/games/klondike/core"
	"github.com/vovakirdan/tui-patience/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "klondike"

// Package-level configuration applied to games created by the registry.
var activeConfig = config.DefaultKlondikeConfig()

// SetConfig sets the configuration used by games created after the call.
func SetConfig(cfg config.KlondikeConfig) {
	activeConfig = cfg
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game implements Klondike patience.
type Game struct {
	cfg    config.KlondikeConfig
	now    func() time.Time
	rng    *rand.Rand
	state  *core.State
	layout layout

	seed    int64
	tick    uint64
	paused  bool // toggled by the player
	blurred bool // terminal focus lost
	pointer platformcore.Pointer
	events  []string
}

// New creates a Klondike game using the active configuration.
func New() *Game {
	return NewWithClock(activeConfig, time.Now)
}

// NewWithClock creates a game with an explicit configuration and time source.
func NewWithClock(cfg config.KlondikeConfig, now func() time.Time) *Game {
	return &Game{cfg: cfg, now: now}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Klondike"
}

// Reset deals a new game from cfg.Seed.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.layout = newLayout(g.cfg.Layout, cfg.ScreenW, cfg.ScreenH)
	g.tick = 0
	g.deal(cfg.Seed)
}

// deal starts a new game from seed, keeping screen and focus state.
func (g *Game) deal(seed int64) {
	g.seed = seed
	g.paused = false
	g.state = core.NewState(rand.New(rand.NewSource(seed)), g.now())
	if err := g.state.Verify(); err != nil {
		panic(fmt.Sprintf("klondike: bad deal for seed %d: %v", seed, err))
	}
	g.layout.apply(g.state.Tableau)
	g.syncClock(g.now())
}

// Resize adapts the layout to a new screen size without redealing.
// A drag in progress is cancelled when the table no longer fits, since
// pointer input is ignored until it does.
func (g *Game) Resize(w, h int) {
	g.layout = newLayout(g.cfg.Layout, w, h)
	if g.state == nil {
		return
	}
	g.layout.apply(g.state.Tableau)
	if !g.layout.fits() {
		g.cancelDrag(g.now())
	}
}

// Seed returns the seed of the current deal.
func (g *Game) Seed() int64 {
	return g.seed
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	g.events = g.events[:0]
	now := g.now()

	if in.Has(platformcore.ActionRestart) {
		g.deal(g.rng.Int63())
		g.emit("deal seed=%d", g.seed)
		return g.result()
	}

	if in.Has(platformcore.ActionFocusLost) {
		g.blurred = true
		g.cancelDrag(now)
	}
	if in.Has(platformcore.ActionFocusGained) {
		g.blurred = false
	}
	if in.Has(platformcore.ActionPause) && !g.state.Won() {
		g.paused = !g.paused
		if g.paused {
			g.cancelDrag(now)
		}
	}
	g.syncClock(now)

	if in.Pointer.Known {
		g.pointer.X, g.pointer.Y, g.pointer.Known = in.Pointer.X, in.Pointer.Y, true
	}

	if g.state.Won() || g.paused || g.blurred || !g.layout.fits() {
		return g.result()
	}

	if in.Has(platformcore.ActionDraw) {
		g.draw()
	}
	g.handlePointer(in.Pointer, now)

	return g.result()
}

// handlePointer applies press, motion and release, in that order.
func (g *Game) handlePointer(p platformcore.Pointer, now time.Time) {
	if !p.Known {
		return
	}

	if p.Pressed && !g.state.Drag.Dragging() {
		g.press(p, now)
	}

	if !g.state.Drag.Dragging() {
		return
	}
	if p.Moved || p.Released {
		g.state.Hover(g.layout.overlapping(g.state.Tableau, g.layout.heldRect(p.X, p.Y, g.state.Drag.Offset())))
	}
	if p.Released {
		drop, won := g.state.Release(now)
		g.settled(drop, won)
	}
}

func (g *Game) press(p platformcore.Pointer, now time.Time) {
	h, ok := g.layout.hitTest(g.state.Tableau, p.X, p.Y)
	if !ok {
		return
	}
	if h.deck == core.StockID {
		g.draw()
		return
	}
	if h.index < 0 {
		return
	}

	grab := core.Grab{
		Deck:   h.deck,
		Index:  h.index,
		Offset: core.Point{X: p.X, Y: p.Y}.Sub(h.anchor),
	}
	if p.Alt && g.cfg.Input.RightClickShortcut {
		drop, won := g.state.Shortcut(grab, now)
		g.settled(drop, won)
		return
	}
	g.state.Press(grab)
}

func (g *Game) draw() {
	switch g.state.Draw() {
	case core.DrawDrew:
		g.emit("draw")
	case core.DrawRecycled:
		g.emit("recycle")
	}
}

// cancelDrag returns any held run to where it came from.
func (g *Game) cancelDrag(now time.Time) {
	if !g.state.Drag.Dragging() {
		return
	}
	g.state.Hover(nil)
	g.state.Release(now)
}

func (g *Game) settled(drop core.Drop, won bool) {
	if drop.Outcome == core.DragCommitted {
		g.emit("move %d from %s to %s", drop.Cards, drop.Origin, drop.Target)
	}
	if won {
		g.emit("win in %s", g.state.Status(g.now()))
	}
}

// syncClock pauses the clock while the player paused or, when configured,
// while the terminal has lost focus.
func (g *Game) syncClock(now time.Time) {
	hold := g.paused || (g.blurred && g.cfg.Input.PauseOnBlur)
	switch {
	case hold && !g.state.Clock.Paused():
		g.state.Pause(now)
	case !hold && g.state.Clock.Paused():
		g.state.Resume(now)
	}
}

func (g *Game) emit(format string, args ...any) {
	g.events = append(g.events, fmt.Sprintf(format, args...))
}

func (g *Game) result() platformcore.StepResult {
	return platformcore.StepResult{
		State:  g.State(),
		Events: append([]string(nil), g.events...),
	}
}

// State returns the platform view of the game.
func (g *Game) State() platformcore.GameState {
	if g.state == nil {
		return platformcore.GameState{}
	}
	now := g.now()
	return platformcore.GameState{
		Score:    g.state.Progress.Percent(),
		GameOver: g.state.Won(),
		Won:      g.state.Won(),
		Paused:   g.paused || g.blurred,
		Elapsed:  g.state.Elapsed(now),
		Seed:     g.seed,
	}
}
