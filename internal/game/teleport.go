package game

import "time"

// Teleport is the portal timer. While it is active the player is frozen; when
// it completes the player is moved to the portal exit.
type Teleport struct {
	delay   time.Duration
	elapsed time.Duration
	active  bool
}

// NewTeleport creates an idle teleport timer.
func NewTeleport(delay time.Duration) Teleport {
	return Teleport{delay: delay}
}

// Trigger starts the timer. Triggering an active timer keeps its progress.
func (t *Teleport) Trigger() {
	t.active = true
}

// Active reports whether a teleport is in progress.
func (t *Teleport) Active() bool {
	return t.active
}

// Advance adds dt to an active timer and reports whether it completed. A
// completed timer resets itself.
func (t *Teleport) Advance(dt time.Duration) bool {
	if !t.active {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.delay {
		return false
	}
	t.Reset()
	return true
}

// Elapsed returns the accumulated time of the current teleport.
func (t *Teleport) Elapsed() time.Duration {
	return t.elapsed
}

// Reset returns the timer to idle.
func (t *Teleport) Reset() {
	t.elapsed = 0
	t.active = false
}
