package core

import (
	"fmt"
	"time"
)

// GameClock tracks playtime, excluding spans where the game was paused.
type GameClock struct {
	start          time.Time
	pausedFor      time.Duration
	pausedAt       time.Time
	paused         bool
	stopped        bool
	stoppedElapsed time.Duration
}

// NewGameClock starts a clock at now.
func NewGameClock(now time.Time) GameClock {
	return GameClock{start: now}
}

// Paused reports whether the clock is paused.
func (c *GameClock) Paused() bool {
	return c.paused
}

// Pause freezes accumulation. Pausing twice is a no-op.
func (c *GameClock) Pause(now time.Time) {
	if c.paused || c.stopped {
		return
	}
	c.paused = true
	c.pausedAt = now
}

// Resume adds the paused span to the accumulated pause time.
func (c *GameClock) Resume(now time.Time) {
	if !c.paused {
		return
	}
	c.paused = false
	if span := now.Sub(c.pausedAt); span > 0 {
		c.pausedFor += span
	}
}

// Stop freezes the elapsed time permanently (used on win).
func (c *GameClock) Stop(now time.Time) {
	if c.stopped {
		return
	}
	c.stoppedElapsed = c.Elapsed(now)
	c.stopped = true
}

// Elapsed returns now - start - accumulated pause time.
func (c *GameClock) Elapsed(now time.Time) time.Duration {
	if c.stopped {
		return c.stoppedElapsed
	}
	if c.paused {
		now = c.pausedAt
	}
	d := now.Sub(c.start) - c.pausedFor
	if d < 0 {
		return 0
	}
	return d
}

// ProgressTracker counts cards that have reached the foundations.
type ProgressTracker struct {
	count int
}

// Count returns the number of foundationed cards.
func (p *ProgressTracker) Count() int {
	return p.count
}

// Deposit records n cards placed on a foundation. It returns true only on
// the deposit that completes the game.
func (p *ProgressTracker) Deposit(n int) bool {
	before := p.count
	p.count = min(p.count+n, DeckSize)
	return before < DeckSize && p.count == DeckSize
}

// Withdraw records n cards taken back off a foundation.
func (p *ProgressTracker) Withdraw(n int) {
	p.count = max(p.count-n, 0)
}

// Percent returns the completion percentage, floored.
func (p *ProgressTracker) Percent() int {
	return p.count * 100 / DeckSize
}

// Won reports whether all cards are on the foundations.
func (p *ProgressTracker) Won() bool {
	return p.count == DeckSize
}

// FormatStatus renders the status line "MM:SS  P%".
func FormatStatus(elapsed time.Duration, percent int) string {
	secs := int(elapsed / time.Second)
	return fmt.Sprintf("%02d:%02d  %d%%", secs/60, secs%60, percent)
}
