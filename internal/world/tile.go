// Package world provides tile geometry: grid coordinates, collision maps, and layout generation.
package world

// Tile is a single cell of an authored or generated level map.
type Tile rune

const (
	// TileWall blocks movement.
	TileWall Tile = '#'
	// TileFloor can be walked on.
	TileFloor Tile = '.'
	// TileWater blocks movement like a wall but renders differently.
	TileWater Tile = '~'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t != TileWall && t != TileWater
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
