// Package controls holds the caller-owned input state consumed by the game
// and by human decision makers. The input source presses and releases
// logical keys; the game only ever asks whether a key is pressed.
package controls

import (
	"time"

	"github.com/coder/quartz"
	"github.com/lox/fourhanded/internal/timer"
)

// Key is a logical action, independent of the physical key bound to it.
type Key int

const (
	Confirm Key = iota
	Fold
	Call
	Raise
	Double
	Triple
	Pot
	DoublePot
	Quit
)

func (k Key) String() string {
	return [...]string{"confirm", "fold", "call", "raise", "double", "triple", "pot", "double-pot", "quit"}[k]
}

// Controls tracks which keys are down and which are temporarily locked
// against repeat triggering.
type Controls struct {
	clock quartz.Clock
	keys  map[Key]bool
	locks map[Key]*timer.Timer
}

// New creates an empty input state.
func New(clock quartz.Clock) *Controls {
	return &Controls{
		clock: clock,
		keys:  make(map[Key]bool),
		locks: make(map[Key]*timer.Timer),
	}
}

// Press marks k as down unless it is locked.
func (c *Controls) Press(k Key) {
	if c.IsLocked(k) {
		return
	}
	c.keys[k] = true
}

// Release marks k as up unless it is locked.
func (c *Controls) Release(k Key) {
	if c.IsLocked(k) {
		return
	}
	c.keys[k] = false
}

// ReleaseAll clears every pressed key. Terminals report presses but not
// releases, so the tick loop calls this after each update.
func (c *Controls) ReleaseAll() {
	clear(c.keys)
}

// Lock ignores presses and releases of k for d.
func (c *Controls) Lock(k Key, d time.Duration) {
	c.locks[k] = timer.NewStarted(c.clock, d)
}

// IsLocked reports whether k is inside a lock window.
func (c *Controls) IsLocked(k Key) bool {
	if t, ok := c.locks[k]; ok {
		return !t.Done()
	}
	return false
}

// IsPressed reports whether k is down.
func (c *Controls) IsPressed(k Key) bool {
	return c.keys[k]
}

// Trigger consumes a press of k: it reports true when k is down and not
// locked, and then locks k for d so a held key fires once.
func (c *Controls) Trigger(k Key, d time.Duration) bool {
	if !c.IsPressed(k) || c.IsLocked(k) {
		return false
	}
	c.Lock(k, d)
	return true
}
