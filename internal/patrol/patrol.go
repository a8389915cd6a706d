// Package patrol moves enemies back and forth along a fixed route.
package patrol

import (
	"time"

	"github.com/vascocosta/glulands/internal/world"
)

// Route is an enemy's patrol path. Only the first and last waypoints bound the
// motion; intermediate waypoints are kept for reference and rendering.
type Route struct {
	Points      []world.Vec2
	Forward     bool
	PivotOffset float64 // added to the end point's Y to line it up with the sprite pivot
}

// NewRoute creates a route that starts moving toward its last waypoint.
func NewRoute(points []world.Vec2, pivotOffset float64) Route {
	return Route{
		Points:      points,
		Forward:     true,
		PivotOffset: pivotOffset,
	}
}

// Bounds returns the start and end points of the sweep.
func (r *Route) Bounds() (start, finish world.Vec2, ok bool) {
	if len(r.Points) < 2 {
		return world.Vec2{}, world.Vec2{}, false
	}
	start = r.Points[0]
	finish = r.Points[len(r.Points)-1]
	finish.Y += r.PivotOffset
	return start, finish, true
}

// Step advances pos by one frame and returns the new position.
//
// The direction flag flips once pos reaches or passes the bound it is moving
// toward, measured along the route axis. The frame that detects the bound still
// moves in the old direction, so the sweep overshoots each end by one step and
// stays symmetric over full cycles.
func (r *Route) Step(pos world.Vec2, speed float64, dt time.Duration) world.Vec2 {
	start, finish, ok := r.Bounds()
	if !ok {
		return pos
	}

	axis := finish.Sub(start)
	length := axis.Len()
	if length == 0 {
		return pos
	}
	direction := axis.Scale(1 / length)

	orientation := 1.0
	if !r.Forward {
		orientation = -1.0
	}

	progress := pos.Sub(start).Dot(direction)
	if (r.Forward && progress >= length) || (!r.Forward && progress <= 0) {
		r.Forward = !r.Forward
	}

	return pos.Add(direction.Scale(orientation * speed * dt.Seconds()))
}
