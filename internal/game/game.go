package game

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"chosenoffset.com/gridshot/internal/assets"
	"chosenoffset.com/gridshot/internal/config"
	"chosenoffset.com/gridshot/internal/entity"
	"chosenoffset.com/gridshot/internal/render"
	"chosenoffset.com/gridshot/internal/world/level"
)

// Game holds the state of a level being played.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	BulletSpeed  float64
	Level        *level.Level
	Player       *entity.Player
	Tiles        *entity.Group
	Bullets      *entity.Group
	BulletImg    render.Image
	InputMgr     render.InputManager

	// Tick counts Update calls since the level started
	Tick int

	// shots tracks live bullets by their handle in Bullets
	shots map[uuid.UUID]shot
}

// shot is a bullet in flight and the tick it was fired on
type shot struct {
	bullet  *entity.Bullet
	firedAt int
}

// NewGame builds the tiles and player for grid and returns a game ready
// for its first tick.
func NewGame(cfg *config.Config, lib *assets.Library, grid level.Grid, input render.InputManager) (*Game, error) {
	lvl, err := level.Generate(grid, level.Sprites{
		Floor:    lib.Floor,
		Wall:     lib.Wall,
		Player:   lib.Player,
		TileSize: cfg.TileSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate level: %w", err)
	}

	tiles := entity.NewGroup()
	for _, tile := range lvl.Tiles {
		tiles.Add(tile)
	}

	log.Printf("Generated level %dx%d with %d tiles, player at (%d, %d)",
		grid.Width(), grid.Height(), tiles.Len(), lvl.Player.GridX, lvl.Player.GridY)

	return &Game{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		BulletSpeed:  cfg.Bullet.Speed,
		Level:        lvl,
		Player:       lvl.Player,
		Tiles:        tiles,
		Bullets:      entity.NewGroup(),
		BulletImg:    lib.Bullet,
		InputMgr:     input,
		shots:        make(map[uuid.UUID]shot),
	}, nil
}

// Update handles one tick of play: movement, the shoot-ready gate,
// firing, then sprite updates.
func (g *Game) Update() error {
	g.Tick++

	moving := false
	for _, mv := range movementKeys {
		if !g.InputMgr.IsKeyPressed(mv.key) {
			continue
		}
		moving = true
		if mv.turn {
			g.Player.Facing = mv.facing
		}
		g.Player.Move(g.Player.GridX+mv.dx, g.Player.GridY+mv.dy)
	}

	// Standing still re-arms the gun
	if !moving {
		g.Player.CanShoot = true
	}

	if g.Player.CanShoot && g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		g.Fire()
	}

	g.Tiles.Update()
	g.Player.Update()
	for _, id := range g.Bullets.Update() {
		if s, ok := g.shots[id]; ok {
			log.Printf("Bullet %s left the screen at x=%.0f after %d ticks", id, s.bullet.X, g.Tick-s.firedAt)
			delete(g.shots, id)
		}
	}

	return nil
}

// Fire spawns a bullet at the player's centre travelling the way the
// player faces, and clears the shoot-ready flag. It returns the bullet's
// handle in Bullets.
func (g *Game) Fire() uuid.UUID {
	cx, cy := g.Player.Center()
	bullet := entity.NewBullet(cx, cy, g.Player.Facing, g.BulletSpeed, g.ScreenWidth, g.BulletImg)
	id := g.Bullets.Add(bullet)
	g.shots[id] = shot{bullet: bullet, firedAt: g.Tick}
	g.Player.CanShoot = false
	log.Printf("Bullet %s fired %s from (%.0f, %.0f)", id, bullet.Direction, bullet.X, bullet.Y)
	return id
}
