// Package entity provides the entity arena and the player's stats.
package entity

// Kind tags every entity in the arena.
type Kind int

const (
	KindPlayer Kind = iota
	KindCow
	KindKey
	KindCarrot
	KindBronze
	KindPortalEntry
	KindPortalExit
	KindGoal
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindCow:
		return "cow"
	case KindKey:
		return "key"
	case KindCarrot:
		return "carrot"
	case KindBronze:
		return "bronze"
	case KindPortalEntry:
		return "portal_entry"
	case KindPortalExit:
		return "portal_exit"
	case KindGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// Symbol returns the display symbol for a kind.
func (k Kind) Symbol() rune {
	switch k {
	case KindPlayer:
		return '@'
	case KindCow:
		return 'M'
	case KindKey:
		return 'k'
	case KindCarrot:
		return 'c'
	case KindBronze:
		return '$'
	case KindPortalEntry:
		return 'O'
	case KindPortalExit:
		return 'o'
	case KindGoal:
		return 'G'
	default:
		return '?'
	}
}

// IsItem reports whether the kind is collected on contact.
func (k Kind) IsItem() bool {
	return k == KindKey || k == KindCarrot || k == KindBronze
}
