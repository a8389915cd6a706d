// Package input maps terminal key events to game actions and tracks which
// directions are held.
package input

import "github.com/gdamore/tcell/v2"

// Action is a key binding's meaning.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionToggle  // start, pause, resume
	ActionMute    // music on/off
	ActionCheat   // skip to the next level
	ActionRestart // new run after game over
	ActionQuit
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionToggle:
		return "toggle"
	case ActionMute:
		return "mute"
	case ActionCheat:
		return "cheat"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Map translates a key event. Every direction has two bindings: the arrow keys
// and WASD.
func Map(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyCtrlL:
		return ActionCheat
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			if r := ev.Rune(); r == 'l' || r == 'L' {
				return ActionCheat
			}
			return ActionNone
		}
		return mapRune(ev.Rune())
	}
	return ActionNone
}

func mapRune(r rune) Action {
	switch r {
	case 'w', 'W':
		return ActionUp
	case 's', 'S':
		return ActionDown
	case 'a', 'A':
		return ActionLeft
	case 'd', 'D':
		return ActionRight
	case 'p', 'P', ' ':
		return ActionToggle
	case 'm', 'M':
		return ActionMute
	case 'r', 'R':
		return ActionRestart
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}
