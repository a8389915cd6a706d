package patrol

import (
	"math"
	"testing"
	"time"

	"github.com/vascocosta/glulands/internal/world"
)

const (
	testSpeed = 64.0
	testDt    = 250 * time.Millisecond // 16px per frame
)

func horizontalRoute() Route {
	return NewRoute([]world.Vec2{{X: 0, Y: 0}, {X: 64, Y: 0}}, 0)
}

func TestStepSinglePointDoesNothing(t *testing.T) {
	r := NewRoute([]world.Vec2{{X: 5, Y: 5}}, 8)
	pos := world.Vec2{X: 5, Y: 5}

	for i := 0; i < 10; i++ {
		pos = r.Step(pos, testSpeed, testDt)
	}

	if pos != (world.Vec2{X: 5, Y: 5}) {
		t.Errorf("Step() on a one-point route moved to %+v", pos)
	}
	if !r.Forward {
		t.Error("Step() on a one-point route flipped direction")
	}
}

func TestStepEmptyRoute(t *testing.T) {
	var r Route
	pos := world.Vec2{X: 1, Y: 2}
	if got := r.Step(pos, testSpeed, testDt); got != pos {
		t.Errorf("Step() on an empty route = %+v, want %+v", got, pos)
	}
}

func TestStepPingPongSequence(t *testing.T) {
	r := horizontalRoute()
	pos := world.Vec2{}

	// Detection frame keeps moving in the old direction: 0..5 forward, back to -1, then 0.
	want := []float64{16, 32, 48, 64, 80, 64, 48, 32, 16, 0, -16, 0}
	for i, x := range want {
		pos = r.Step(pos, testSpeed, testDt)
		if pos.X != x || pos.Y != 0 {
			t.Fatalf("frame %d: pos = %+v, want {%v 0}", i+1, pos, x)
		}
	}
	if !r.Forward {
		t.Error("after one full cycle the route should be moving forward again")
	}
}

func TestStepFlipsOnlyAtEndpoints(t *testing.T) {
	r := horizontalRoute()
	pos := world.Vec2{}
	forward := r.Forward
	flips := 0

	for i := 0; i < 240; i++ {
		before := pos
		pos = r.Step(pos, testSpeed, testDt)
		if r.Forward != forward {
			flips++
			if before.X < 64 && before.X > 0 {
				t.Errorf("frame %d: direction flipped at x=%v, strictly between endpoints", i, before.X)
			}
			if forward && before.X < 64 {
				t.Errorf("frame %d: forward flip before reaching the far end (x=%v)", i, before.X)
			}
			if !forward && before.X > 0 {
				t.Errorf("frame %d: backward flip before reaching the start (x=%v)", i, before.X)
			}
			forward = r.Forward
		}
	}

	// 240 frames are 20 cycles of 12 frames, two flips each.
	if flips != 40 {
		t.Errorf("flips = %d, want 40", flips)
	}
}

func TestStepReturnsToStartAfterFullCycles(t *testing.T) {
	r := horizontalRoute()
	start := world.Vec2{}
	pos := start

	for cycle := 1; cycle <= 5; cycle++ {
		for i := 0; i < 12; i++ {
			pos = r.Step(pos, testSpeed, testDt)
		}
		if math.Abs(pos.X-start.X) > 1e-9 || math.Abs(pos.Y-start.Y) > 1e-9 {
			t.Errorf("after %d cycles pos = %+v, want %+v", cycle, pos, start)
		}
	}
}

func TestStepUsesOnlyEndpoints(t *testing.T) {
	withMiddle := NewRoute([]world.Vec2{{X: 0, Y: 0}, {X: 16, Y: 48}, {X: 64, Y: 0}}, 0)
	plain := horizontalRoute()

	a, b := world.Vec2{}, world.Vec2{}
	for i := 0; i < 30; i++ {
		a = withMiddle.Step(a, testSpeed, testDt)
		b = plain.Step(b, testSpeed, testDt)
		if a != b {
			t.Fatalf("frame %d: intermediate waypoint changed motion: %+v != %+v", i, a, b)
		}
	}
}

func TestStepLeftwardAndVerticalRoutes(t *testing.T) {
	tests := []struct {
		name   string
		finish world.Vec2
	}{
		{"leftward", world.Vec2{X: -64, Y: 0}},
		{"downward", world.Vec2{X: 0, Y: -64}},
		{"upward", world.Vec2{X: 0, Y: 64}},
	}

	for _, tt := range tests {
		r := NewRoute([]world.Vec2{{}, tt.finish}, 0)
		pos := world.Vec2{}
		flips := 0
		forward := r.Forward
		for i := 0; i < 24; i++ {
			pos = r.Step(pos, testSpeed, testDt)
			if r.Forward != forward {
				flips++
				forward = r.Forward
			}
		}
		if flips != 4 {
			t.Errorf("%s: flips in 24 frames = %d, want 4", tt.name, flips)
		}
		if pos != (world.Vec2{}) {
			t.Errorf("%s: pos after two cycles = %+v, want origin", tt.name, pos)
		}
	}
}

func TestPivotOffsetTiltsRoute(t *testing.T) {
	r := NewRoute([]world.Vec2{{X: 0, Y: 0}, {X: 64, Y: 0}}, 8)

	_, finish, ok := r.Bounds()
	if !ok {
		t.Fatal("Bounds() returned !ok")
	}
	if finish != (world.Vec2{X: 64, Y: 8}) {
		t.Errorf("Bounds() finish = %+v, want {64 8}", finish)
	}

	pos := r.Step(world.Vec2{}, testSpeed, testDt)
	if pos.Y <= 0 {
		t.Errorf("Step() with pivot offset moved to %+v, want positive Y", pos)
	}
	if math.Abs(pos.Len()-16) > 1e-9 {
		t.Errorf("Step() distance = %v, want 16", pos.Len())
	}
}
