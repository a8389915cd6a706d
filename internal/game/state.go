// Package game provides the game state machine, the per-tick session driver
// and the terminal loop.
package game

// Mode is the top-level game mode. Exactly one is active at a time and it
// decides which systems run on a tick.
type Mode int

const (
	// ModeMenu is the title screen shown before the first level.
	ModeMenu Mode = iota
	// ModePauseMenu freezes a running level.
	ModePauseMenu
	// ModeRunning runs movement, interactions, patrols and decay.
	ModeRunning
	// ModeTeleporting freezes the player while the portal timer runs.
	ModeTeleporting
	// ModeGameOver is terminal for the run.
	ModeGameOver
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePauseMenu:
		return "pause_menu"
	case ModeRunning:
		return "running"
	case ModeTeleporting:
		return "teleporting"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m >= ModeMenu && m <= ModeGameOver
}

// Toggle returns the mode the start/pause input leads to, and whether the
// input applies in m at all.
func (m Mode) Toggle() (Mode, bool) {
	switch m {
	case ModeMenu, ModePauseMenu:
		return ModeRunning, true
	case ModeRunning:
		return ModePauseMenu, true
	default:
		return m, false
	}
}
