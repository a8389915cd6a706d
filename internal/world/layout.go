package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/vascocosta/glulands/internal/telemetry"
)

const (
	// Generated level dimensions, sized to fit an 80x24 terminal with the status bar.
	DefaultWidth  = 60
	DefaultHeight = 22

	// BSP parameters
	minRoomSize = 5
	maxRoomSize = 12
	minLeafSize = 8
)

// Layout is a procedurally generated tile map made of rooms joined by corridors.
type Layout struct {
	Width  int
	Height int
	Tiles  [][]Tile // indexed [y][x]
	Rooms  []Room
	rng    *rand.Rand
}

// NewLayout creates a layout of the given size filled with walls.
// A nil rng falls back to a time-seeded source.
func NewLayout(width, height int, rng *rand.Rand) *Layout {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileWall
		}
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Layout{
		Width:  width,
		Height: height,
		Tiles:  tiles,
		Rooms:  make([]Room, 0),
		rng:    rng,
	}
}

// Generate carves rooms and corridors using binary space partitioning.
func (l *Layout) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "layout.generate")
	defer span.End()

	startTime := time.Now()

	root := &bspNode{
		x:      1,
		y:      1,
		width:  l.Width - 2,
		height: l.Height - 2,
	}

	l.splitNode(root)
	l.createRooms(root)
	l.connectRooms(root)

	span.SetAttributes(
		attribute.Int("layout.width", l.Width),
		attribute.Int("layout.height", l.Height),
		attribute.Int("layout.room_count", len(l.Rooms)),
		attribute.Int64("layout.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// IsPassable returns true if the given tile can be walked on.
func (l *Layout) IsPassable(c GridCoords) bool {
	if c.X < 0 || c.X >= l.Width || c.Y < 0 || c.Y >= l.Height {
		return false
	}
	return l.Tiles[c.Y][c.X].IsPassable()
}

// Blocked lists every impassable tile, the input of a CollisionMap.
func (l *Layout) Blocked() []GridCoords {
	cells := make([]GridCoords, 0, l.Width*l.Height/2)
	for y := range l.Tiles {
		for x, t := range l.Tiles[y] {
			if !t.IsPassable() {
				cells = append(cells, GridCoords{X: x, Y: y})
			}
		}
	}
	return cells
}

// RandomPointInRoom returns a random passable tile within the room at roomIndex.
// Tiles in avoid are skipped when possible.
func (l *Layout) RandomPointInRoom(roomIndex int, avoid func(GridCoords) bool) (GridCoords, bool) {
	if roomIndex < 0 || roomIndex >= len(l.Rooms) {
		return GridCoords{}, false
	}
	room := l.Rooms[roomIndex]

	for i := 0; i < 100; i++ {
		c := GridCoords{
			X: room.X + l.rng.Intn(room.Width),
			Y: room.Y + l.rng.Intn(room.Height),
		}
		if l.IsPassable(c) && (avoid == nil || !avoid(c)) {
			return c, true
		}
	}

	return room.Center(), true
}

// Intn exposes the layout's random source so spawn placement stays reproducible.
func (l *Layout) Intn(n int) int {
	return l.rng.Intn(n)
}

// bspNode is a node of the partition tree.
type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
	room          *Room
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// splitNode recursively splits a node until leaves are too small to divide.
func (l *Layout) splitNode(node *bspNode) {
	if node.width < minLeafSize*2 && node.height < minLeafSize*2 {
		return
	}

	var splitHorizontally bool
	if node.width > node.height && node.width >= minLeafSize*2 {
		splitHorizontally = false
	} else if node.height >= minLeafSize*2 {
		splitHorizontally = true
	} else if node.width >= minLeafSize*2 {
		splitHorizontally = false
	} else {
		return
	}

	span := node.width
	if splitHorizontally {
		span = node.height
	}
	lo, hi := minLeafSize, span-minLeafSize
	if hi <= lo {
		return
	}
	splitPos := lo + l.rng.Intn(hi-lo+1)

	if splitHorizontally {
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPos}
		node.right = &bspNode{x: node.x, y: node.y + splitPos, width: node.width, height: node.height - splitPos}
	} else {
		node.left = &bspNode{x: node.x, y: node.y, width: splitPos, height: node.height}
		node.right = &bspNode{x: node.x + splitPos, y: node.y, width: node.width - splitPos, height: node.height}
	}

	l.splitNode(node.left)
	l.splitNode(node.right)
}

// createRooms places one room inside every leaf.
func (l *Layout) createRooms(node *bspNode) {
	if node == nil {
		return
	}

	if !node.isLeaf() {
		l.createRooms(node.left)
		l.createRooms(node.right)
		return
	}

	roomWidth := minRoomSize + l.rng.Intn(min(maxRoomSize-minRoomSize+1, node.width-minRoomSize+1))
	roomHeight := minRoomSize + l.rng.Intn(min(maxRoomSize-minRoomSize+1, node.height-minRoomSize+1))

	if roomWidth > node.width-2 {
		roomWidth = node.width - 2
	}
	if roomHeight > node.height-2 {
		roomHeight = node.height - 2
	}
	if roomWidth < minRoomSize || roomHeight < minRoomSize {
		return
	}

	room := Room{
		X:      node.x + 1 + l.rng.Intn(node.width-roomWidth-1),
		Y:      node.y + 1 + l.rng.Intn(node.height-roomHeight-1),
		Width:  roomWidth,
		Height: roomHeight,
	}
	node.room = &room
	l.Rooms = append(l.Rooms, room)
	l.carveRoom(room)
}

func (l *Layout) carveRoom(room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			l.carve(x, y)
		}
	}
}

// connectRooms joins sibling subtrees with an L-shaped corridor.
func (l *Layout) connectRooms(node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}

	l.connectRooms(node.left)
	l.connectRooms(node.right)

	leftRoom := l.getRoom(node.left)
	rightRoom := l.getRoom(node.right)
	if leftRoom != nil && rightRoom != nil {
		l.carveCorridor(*leftRoom, *rightRoom)
	}
}

func (l *Layout) getRoom(node *bspNode) *Room {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	if room := l.getRoom(node.left); room != nil {
		return room
	}
	return l.getRoom(node.right)
}

func (l *Layout) carveCorridor(room1, room2 Room) {
	a, b := room1.Center(), room2.Center()

	if l.rng.Intn(2) == 0 {
		l.carveHorizontal(a.X, b.X, a.Y)
		l.carveVertical(a.Y, b.Y, b.X)
	} else {
		l.carveVertical(a.Y, b.Y, a.X)
		l.carveHorizontal(a.X, b.X, b.Y)
	}
}

func (l *Layout) carveHorizontal(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		l.carve(x, y)
	}
}

func (l *Layout) carveVertical(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		l.carve(x, y)
	}
}

// carve opens a tile, leaving the outer border intact.
func (l *Layout) carve(x, y int) {
	if x > 0 && x < l.Width-1 && y > 0 && y < l.Height-1 {
		l.Tiles[y][x] = TileFloor
	}
}
