package entity

import (
	"chosenoffset.com/gridshot/internal/render"
)

// Player is the controllable sprite. Its position is in grid cells.
type Player struct {
	GridX    int
	GridY    int
	Facing   Direction
	CanShoot bool // Cleared on fire, restored once no movement key is held
	TileSize int
	Image    render.Image
}

// NewPlayer creates a player facing right and ready to shoot
func NewPlayer(gridX, gridY, tileSize int, img render.Image) *Player {
	return &Player{
		GridX:    gridX,
		GridY:    gridY,
		Facing:   Right,
		CanShoot: true,
		TileSize: tileSize,
		Image:    img,
	}
}

// Move places the player at the given grid cell. Walls do not block.
func (p *Player) Move(gridX, gridY int) {
	p.GridX = gridX
	p.GridY = gridY
}

// Position returns the top-left pixel position of the player sprite
func (p *Player) Position() (x, y float64) {
	return float64(p.GridX * p.TileSize), float64(p.GridY * p.TileSize)
}

// Center returns the pixel centre of the rendered sprite
func (p *Player) Center() (x, y float64) {
	px, py := p.Position()
	w, h := imageSize(p.Image)
	return px + float64(w)/2, py + float64(h)/2
}

// Update is a no-op; the game loop moves the player from input.
func (p *Player) Update() {}

// Draw renders the player, mirrored horizontally when facing left.
func (p *Player) Draw(dst render.Image) {
	if p.Image == nil {
		return
	}
	x, y := p.Position()
	if p.Facing != Left {
		drawAt(dst, p.Image, x, y)
		return
	}

	w, _ := p.Image.Size()
	opts := &render.DrawImageOptions{}
	opts.GeoM = render.NewGeoM()
	opts.GeoM.Scale(-1, 1)
	opts.GeoM.Translate(x+float64(w), y)
	dst.DrawImage(p.Image, opts)
}

// Alive always reports true.
func (p *Player) Alive() bool { return true }
