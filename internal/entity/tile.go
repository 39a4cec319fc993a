package entity

import (
	"chosenoffset.com/gridshot/internal/render"
)

// TileKind identifies what a grid cell shows
type TileKind int

const (
	TileEmpty TileKind = iota
	TileWall
)

// String returns the kind name
func (k TileKind) String() string {
	switch k {
	case TileWall:
		return "wall"
	default:
		return "empty"
	}
}

// Tile is a static cell of the level. It never changes after creation.
type Tile struct {
	Kind     TileKind
	GridX    int
	GridY    int
	TileSize int
	Image    render.Image
}

// NewTile creates a tile at the given grid coordinates
func NewTile(kind TileKind, gridX, gridY, tileSize int, img render.Image) *Tile {
	return &Tile{
		Kind:     kind,
		GridX:    gridX,
		GridY:    gridY,
		TileSize: tileSize,
		Image:    img,
	}
}

// Update is a no-op; tiles are static.
func (t *Tile) Update() {}

// Draw renders the tile at its pixel position.
func (t *Tile) Draw(dst render.Image) {
	drawAt(dst, t.Image, float64(t.GridX*t.TileSize), float64(t.GridY*t.TileSize))
}

// Alive always reports true.
func (t *Tile) Alive() bool { return true }
