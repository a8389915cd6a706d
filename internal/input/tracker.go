package input

import (
	"sync"
	"time"

	"github.com/vascocosta/glulands/internal/movement"
)

const (
	// DefaultHoldWindow is how long a single press keeps its direction held.
	DefaultHoldWindow = 300 * time.Millisecond
	// DefaultRepeatWindow is how long a repeating key stays held after its
	// last repeat.
	DefaultRepeatWindow = 120 * time.Millisecond
)

// Frame is the input snapshot for one simulation tick.
type Frame struct {
	Held   movement.Direction
	Toggle bool
	Mute   bool
	Cheat  bool
}

type press struct {
	first, last time.Time
}

// Tracker turns key presses into held directions. Terminals report presses and
// repeats but no releases, so a direction counts as held for a while after its
// most recent press. Pressing a direction releases its opposite.
//
// A Tracker is safe for concurrent use. The game loop presses and snapshots
// it from one goroutine; the lock lets a front-end feed presses from its own
// event reader instead.
type Tracker struct {
	mu      sync.Mutex
	hold    time.Duration
	repeat  time.Duration
	presses map[movement.Direction]press
	pending Frame
}

// NewTracker creates a tracker. Zero windows use the defaults.
func NewTracker(hold, repeat time.Duration) *Tracker {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	if repeat <= 0 {
		repeat = DefaultRepeatWindow
	}
	return &Tracker{
		hold:    hold,
		repeat:  repeat,
		presses: make(map[movement.Direction]press),
	}
}

var opposite = map[movement.Direction]movement.Direction{
	movement.Up:    movement.Down,
	movement.Down:  movement.Up,
	movement.Left:  movement.Right,
	movement.Right: movement.Left,
}

func direction(a Action) (movement.Direction, bool) {
	switch a {
	case ActionUp:
		return movement.Up, true
	case ActionDown:
		return movement.Down, true
	case ActionLeft:
		return movement.Left, true
	case ActionRight:
		return movement.Right, true
	}
	return 0, false
}

// Press records an action at time now.
func (t *Tracker) Press(a Action, now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if d, ok := direction(a); ok {
		p, held := t.presses[d]
		if !held || !t.active(p, now) {
			p.first = now
		}
		p.last = now
		t.presses[d] = p
		delete(t.presses, opposite[d])
		return
	}

	switch a {
	case ActionToggle:
		t.pending.Toggle = true
	case ActionMute:
		t.pending.Mute = true
	case ActionCheat:
		t.pending.Cheat = true
	}
}

// active reports whether a press still holds its direction at now. A single
// press holds through the repeat delay; once repeats arrive, each extends the
// hold by the repeat window.
func (t *Tracker) active(p press, now time.Time) bool {
	if p.last.Equal(p.first) {
		return now.Sub(p.first) < t.hold
	}
	return now.Sub(p.last) < t.repeat
}

// Release drops every held direction.
func (t *Tracker) Release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.presses)
}

// Frame returns the snapshot for the tick at now and consumes one-shot actions.
func (t *Tracker) Frame(now time.Time) Frame {
	t.mu.Lock()
	defer t.mu.Unlock()

	f := t.pending
	t.pending = Frame{}

	for d, p := range t.presses {
		if t.active(p, now) {
			f.Held |= d
		} else {
			delete(t.presses, d)
		}
	}
	return f
}
