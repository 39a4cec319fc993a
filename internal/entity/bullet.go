package entity

import (
	"chosenoffset.com/gridshot/internal/render"
)

// Bullet is a projectile travelling horizontally at a fixed speed.
// X and Y are the top-left pixel position of its image.
type Bullet struct {
	X, Y        float64
	Direction   Direction
	Speed       float64 // Pixels per tick
	ScreenWidth int     // Bullet dies once X leaves [0, ScreenWidth]
	Image       render.Image

	dead bool
}

// NewBullet creates a bullet whose image is centred on (centerX, centerY)
func NewBullet(centerX, centerY float64, dir Direction, speed float64, screenWidth int, img render.Image) *Bullet {
	w, h := imageSize(img)
	return &Bullet{
		X:           centerX - float64(w)/2,
		Y:           centerY - float64(h)/2,
		Direction:   dir,
		Speed:       speed,
		ScreenWidth: screenWidth,
		Image:       img,
	}
}

// Update moves the bullet and kills it once it leaves the screen.
func (b *Bullet) Update() {
	if b.dead {
		return
	}
	b.X += b.Direction.Sign() * b.Speed
	if b.X < 0 || b.X > float64(b.ScreenWidth) {
		b.dead = true
	}
}

// Draw renders the bullet.
func (b *Bullet) Draw(dst render.Image) {
	drawAt(dst, b.Image, b.X, b.Y)
}

// Alive reports whether the bullet is still on screen.
func (b *Bullet) Alive() bool { return !b.dead }
