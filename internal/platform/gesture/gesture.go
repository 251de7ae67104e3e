// Package gesture turns raw pointer press/release events into game actions.
// It is shared by the terminal mouse handler and the GUI touch handler.
//
// A release is classified by the drag between press and release: mostly
// horizontal moves left or right, mostly downward soft-drops, anything else
// (including a motionless tap) rotates. Single actions are held back for
// DoubleTapWindow so that a second quick release can turn the pair into a
// hard drop instead.
package gesture

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// DoubleTapWindow is both the double-tap threshold and the delay before a
// single gesture fires.
const DoubleTapWindow = 300 * time.Millisecond

// Recognizer tracks one pointer. The zero value is ready to use.
// It is not safe for concurrent use.
type Recognizer struct {
	Window time.Duration // 0 selects DoubleTapWindow

	startX, startY int
	pressed        bool

	taps        int
	lastRelease time.Time

	pending   core.Action
	pendingAt time.Time
}

// New returns a recognizer using DoubleTapWindow.
func New() *Recognizer {
	return &Recognizer{Window: DoubleTapWindow}
}

func (r *Recognizer) window() time.Duration {
	if r.Window <= 0 {
		return DoubleTapWindow
	}
	return r.Window
}

// Begin records a press at (x, y).
func (r *Recognizer) Begin(x, y int, at time.Time) {
	r.startX, r.startY = x, y
	r.pressed = true
}

// End records the release at (x, y). It returns ActionHardDrop immediately
// when this release completes a double tap; otherwise it queues the single
// gesture for Poll. A queued gesture whose delay had already passed but was
// never polled is returned instead of being replaced; otherwise End returns
// ActionNone. A release without a matching press is measured from the
// release point itself.
func (r *Recognizer) End(x, y int, at time.Time) core.Action {
	expired := r.Poll(at)
	if !r.pressed {
		r.startX, r.startY = x, y
	}
	r.pressed = false

	if !r.lastRelease.IsZero() && at.Sub(r.lastRelease) < r.window() {
		r.taps++
	} else {
		r.taps = 1
	}
	r.lastRelease = at

	if r.taps == 2 {
		r.pending = core.ActionNone
		return core.ActionHardDrop
	}

	r.pending = Classify(x-r.startX, y-r.startY)
	r.pendingAt = at.Add(r.window())
	return expired
}

// Poll returns the queued single gesture once its delay has passed, and
// ActionNone otherwise. Each queued gesture is returned at most once.
func (r *Recognizer) Poll(now time.Time) core.Action {
	if r.pending == core.ActionNone || now.Before(r.pendingAt) {
		return core.ActionNone
	}
	a := r.pending
	r.pending = core.ActionNone
	return a
}

// Pending reports whether a single gesture is waiting to fire.
func (r *Recognizer) Pending() bool {
	return r.pending != core.ActionNone
}

// Reset forgets all pointer state.
func (r *Recognizer) Reset() {
	w := r.Window
	*r = Recognizer{Window: w}
}

// Classify maps a drag vector to an action. Screen y grows downward.
func Classify(dx, dy int) core.Action {
	switch {
	case abs(dx) > abs(dy) && dx > 0:
		return core.ActionRight
	case abs(dx) > abs(dy):
		return core.ActionLeft
	case dy > 0:
		return core.ActionSoftDrop
	default:
		return core.ActionRotate
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
