package game

import (
	"chosenoffset.com/gridshot/internal/entity"
	"chosenoffset.com/gridshot/internal/render"
)

// movement binds a key to a one-cell step. Horizontal steps also turn the
// player.
type movement struct {
	key    render.Key
	dx, dy int
	turn   bool
	facing entity.Direction
}

// movementKeys are checked in this order every tick
var movementKeys = []movement{
	{key: render.KeyW, dy: -1},
	{key: render.KeyS, dy: 1},
	{key: render.KeyA, dx: -1, turn: true, facing: entity.Left},
	{key: render.KeyD, dx: 1, turn: true, facing: entity.Right},
}
