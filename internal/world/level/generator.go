package level

import (
	"errors"
	"fmt"

	"chosenoffset.com/gridshot/internal/entity"
	"chosenoffset.com/gridshot/internal/render"
)

var (
	// ErrNoPlayerStart is returned when a grid has no '@' cell.
	ErrNoPlayerStart = errors.New("level has no player start")

	// ErrMultiplePlayerStarts is returned when a grid has more than one '@' cell.
	ErrMultiplePlayerStarts = errors.New("level has more than one player start")
)

// Sprites holds the images used to build a level
type Sprites struct {
	Floor    render.Image
	Wall     render.Image
	Player   render.Image
	TileSize int
}

// Level is a generated level: its grid, every tile, and the player
type Level struct {
	Grid   Grid
	Tiles  []*entity.Tile
	Player *entity.Player
}

// Generate walks the grid row by row and creates one tile per cell.
// The player start cell gets a floor tile, spawns the player, and is
// rewritten to Floor in the grid. The grid is left untouched on error.
func Generate(grid Grid, sprites Sprites) (*Level, error) {
	lvl := &Level{
		Grid:  grid,
		Tiles: make([]*entity.Tile, 0, grid.Width()*grid.Height()),
	}

	for y, row := range grid {
		for x, cell := range row {
			switch cell {
			case Wall:
				lvl.Tiles = append(lvl.Tiles, entity.NewTile(entity.TileWall, x, y, sprites.TileSize, sprites.Wall))
			case PlayerStart:
				if lvl.Player != nil {
					return nil, fmt.Errorf("%w: (%d, %d) and (%d, %d)",
						ErrMultiplePlayerStarts, lvl.Player.GridX, lvl.Player.GridY, x, y)
				}
				lvl.Tiles = append(lvl.Tiles, entity.NewTile(entity.TileEmpty, x, y, sprites.TileSize, sprites.Floor))
				lvl.Player = entity.NewPlayer(x, y, sprites.TileSize, sprites.Player)
			default:
				lvl.Tiles = append(lvl.Tiles, entity.NewTile(entity.TileEmpty, x, y, sprites.TileSize, sprites.Floor))
			}
		}
	}

	if lvl.Player == nil {
		return nil, ErrNoPlayerStart
	}
	grid.Set(lvl.Player.GridX, lvl.Player.GridY, Floor)
	return lvl, nil
}
