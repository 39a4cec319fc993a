// Package entity provides the sprites that make up a level: static tiles,
// the player and the projectiles it fires. All of them satisfy Sprite so the
// game can update and draw them as one collection.
package entity

import (
	"chosenoffset.com/gridshot/internal/render"
)

// Sprite is anything the game loop advances and draws each frame
type Sprite interface {
	// Update advances the sprite by one tick
	Update()

	// Draw renders the sprite onto dst
	Draw(dst render.Image)

	// Alive reports whether the sprite should stay in its group
	Alive() bool
}

// Direction is the horizontal facing of the player and its bullets
type Direction int

const (
	Right Direction = iota
	Left
)

// Sign returns +1 for Right and -1 for Left
func (d Direction) Sign() float64 {
	if d == Left {
		return -1
	}
	return 1
}

// String returns the direction name
func (d Direction) String() string {
	if d == Left {
		return "LEFT"
	}
	return "RIGHT"
}

// drawAt draws img with its top-left corner at (x, y)
func drawAt(dst, img render.Image, x, y float64) {
	if img == nil {
		return
	}
	opts := &render.DrawImageOptions{}
	opts.GeoM = render.NewGeoM()
	opts.GeoM.Translate(x, y)
	dst.DrawImage(img, opts)
}

// imageSize returns the size of img, or zero for a missing image
func imageSize(img render.Image) (int, int) {
	if img == nil {
		return 0, 0
	}
	return img.Size()
}
