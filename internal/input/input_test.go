package input

import (
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vascocosta/glulands/internal/movement"
)

func TestMap(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionUp},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionLeft},
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), ActionUp},
		{tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), ActionDown},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), ActionLeft},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), ActionRight},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionToggle},
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), ActionToggle},
		{tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), ActionMute},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), ActionRestart},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{tcell.NewEventKey(tcell.KeyCtrlL, 0, tcell.ModCtrl), ActionCheat},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionNone},
	}

	for _, tt := range tests {
		if got := Map(tt.ev); got != tt.want {
			t.Errorf("Map(%v) = %v, want %v", tt.ev.Name(), got, tt.want)
		}
	}
}

func TestTrackerTapExpires(t *testing.T) {
	tr := NewTracker(300*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	tr.Press(ActionRight, t0)

	if f := tr.Frame(t0.Add(200 * time.Millisecond)); f.Held != movement.Right {
		t.Errorf("Held at 200ms = %04b, want right", f.Held)
	}
	if f := tr.Frame(t0.Add(300 * time.Millisecond)); f.Held != 0 {
		t.Errorf("Held at 300ms = %04b, want none", f.Held)
	}
}

func TestTrackerRepeatsExtendHold(t *testing.T) {
	tr := NewTracker(300*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	tr.Press(ActionUp, t0)
	for ms := 250; ms <= 1000; ms += 50 {
		tr.Press(ActionUp, t0.Add(time.Duration(ms)*time.Millisecond))
	}

	if f := tr.Frame(t0.Add(1050 * time.Millisecond)); f.Held != movement.Up {
		t.Errorf("Held during repeats = %04b, want up", f.Held)
	}
	// Once repeats stop, the short window applies.
	if f := tr.Frame(t0.Add(1150 * time.Millisecond)); f.Held != 0 {
		t.Errorf("Held after repeats stopped = %04b, want none", f.Held)
	}
}

func TestTrackerOppositeReleases(t *testing.T) {
	tr := NewTracker(0, 0)
	t0 := time.Unix(0, 0)

	tr.Press(ActionLeft, t0)
	tr.Press(ActionUp, t0)
	tr.Press(ActionRight, t0.Add(10*time.Millisecond))

	f := tr.Frame(t0.Add(20 * time.Millisecond))
	if f.Held != movement.Up|movement.Right {
		t.Errorf("Held = %04b, want up|right", f.Held)
	}
}

func TestTrackerOneShots(t *testing.T) {
	tr := NewTracker(0, 0)
	t0 := time.Unix(0, 0)

	tr.Press(ActionToggle, t0)
	tr.Press(ActionMute, t0)
	tr.Press(ActionCheat, t0)
	tr.Press(ActionQuit, t0)

	f := tr.Frame(t0)
	if !f.Toggle || !f.Mute || !f.Cheat {
		t.Errorf("Frame() = %+v, want toggle, mute and cheat", f)
	}
	if f := tr.Frame(t0); f.Toggle || f.Mute || f.Cheat {
		t.Errorf("second Frame() = %+v, one-shots should be consumed", f)
	}
}

func TestTrackerRelease(t *testing.T) {
	tr := NewTracker(0, 0)
	t0 := time.Unix(0, 0)
	tr.Press(ActionDown, t0)
	tr.Release()

	if f := tr.Frame(t0); f.Held != 0 {
		t.Errorf("Held after Release = %04b, want none", f.Held)
	}
}

func TestTrackerConcurrentPressAndFrame(t *testing.T) {
	tr := NewTracker(0, 0)
	start := time.Now()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			tr.Press(ActionRight, start)
			tr.Press(ActionToggle, start)
		}
	}()

	toggles := 0
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			if tr.Frame(start).Toggle {
				toggles++
			}
		}
	}()
	wg.Wait()

	if f := tr.Frame(start); f.Toggle {
		toggles++
	}
	if toggles == 0 {
		t.Error("no Frame() observed a toggle pressed 500 times")
	}
	if f := tr.Frame(start); f.Held != movement.Right {
		t.Errorf("Frame().Held = %04b, want right", f.Held)
	}
}
