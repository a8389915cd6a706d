package world

import (
	"math"
	"testing"
)

func TestToGrid(t *testing.T) {
	tests := []struct {
		pos  Vec2
		want GridCoords
	}{
		{Vec2{X: 0, Y: 0}, GridCoords{X: 0, Y: 0}},
		{Vec2{X: 8, Y: 8}, GridCoords{X: 0, Y: 0}},
		{Vec2{X: 15.99, Y: 16}, GridCoords{X: 0, Y: 1}},
		{Vec2{X: 88, Y: 88}, GridCoords{X: 5, Y: 5}},
		{Vec2{X: -0.5, Y: 3}, GridCoords{X: -1, Y: 0}},
		{Vec2{X: -16, Y: -16.1}, GridCoords{X: -1, Y: -2}},
	}

	for _, tt := range tests {
		if got := ToGrid(tt.pos, 16); got != tt.want {
			t.Errorf("ToGrid(%+v, 16) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestCellCenterRoundTrip(t *testing.T) {
	for x := -3; x < 5; x++ {
		for y := -3; y < 5; y++ {
			g := GridCoords{X: x, Y: y}
			if got := ToGrid(CellCenter(g, 16), 16); got != g {
				t.Errorf("ToGrid(CellCenter(%v)) = %v", g, got)
			}
			if got := ToGrid(CellFoot(g, 16), 16); got != g {
				t.Errorf("ToGrid(CellFoot(%v)) = %v", g, got)
			}
		}
	}
}

func TestVec2Normalize(t *testing.T) {
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("zero.Normalize() = %+v, want zero", got)
	}

	n := Vec2{X: 3, Y: 4}.Normalize()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Normalize().Len() = %v, want 1", n.Len())
	}
	if math.Abs(n.X-0.6) > 1e-12 || math.Abs(n.Y-0.8) > 1e-12 {
		t.Errorf("Normalize() = %+v, want {0.6 0.8}", n)
	}
}
