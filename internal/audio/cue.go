// Package audio plays sound cues and background music.
package audio

// Cue is a fire-and-forget sound event.
type Cue int

const (
	CuePickup Cue = iota
	CueHit
	CueTeleport
	CueLevelComplete
	CueLost
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CuePickup:
		return "pickup"
	case CueHit:
		return "hit"
	case CueTeleport:
		return "teleport"
	case CueLevelComplete:
		return "level_complete"
	case CueLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Sink receives sound cues. Play must not block the caller.
type Sink interface {
	Play(Cue)
}

// Music is the background track.
type Music interface {
	Resume()
	Pause()
	Paused() bool
	ToggleMute()
	Muted() bool
}

// Discard is a Sink that drops every cue.
var Discard Sink = discard{}

type discard struct{}

func (discard) Play(Cue) {}

// Silence is a Music that only tracks its flags.
type Silence struct {
	paused bool
	muted  bool
}

// NewSilence returns a paused silent track.
func NewSilence(muted bool) *Silence {
	return &Silence{paused: true, muted: muted}
}

func (s *Silence) Resume()      { s.paused = false }
func (s *Silence) Pause()       { s.paused = true }
func (s *Silence) Paused() bool { return s.paused }
func (s *Silence) ToggleMute()  { s.muted = !s.muted }
func (s *Silence) Muted() bool  { return s.muted }
