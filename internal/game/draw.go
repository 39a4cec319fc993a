package game

import (
	"image/color"

	"chosenoffset.com/gridshot/internal/render"
)

// Draw renders the game to the screen: tiles, then the player, then bullets.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	g.Tiles.Draw(screen)
	g.Player.Draw(screen)
	g.Bullets.Draw(screen)
}
