package world

// Room is a rectangular open area carved into a generated layout.
type Room struct {
	X, Y          int // Bottom-left tile
	Width, Height int
}

// Center returns the tile at the middle of the room.
func (r Room) Center() GridCoords {
	return GridCoords{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains returns true if the tile lies inside the room.
func (r Room) Contains(c GridCoords) bool {
	return c.X >= r.X && c.X < r.X+r.Width && c.Y >= r.Y && c.Y < r.Y+r.Height
}
