package menu

import (
	"image/color"

	"chosenoffset.com/gridshot/internal/render"
)

// GameState represents the current state of the game.
type GameState int

const (
	StateMainMenu GameState = iota
	StatePlaying
	StateQuit
)

// String returns the state name
func (s GameState) String() string {
	switch s {
	case StateMainMenu:
		return "MENU"
	case StatePlaying:
		return "PLAYING"
	case StateQuit:
		return "QUIT"
	default:
		return "UNKNOWN"
	}
}

// Action is what a menu click asks for.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionQuit
)

// Labels are offset from the screen centre; the hit boxes extend
// 100px either side of centre horizontally.
const (
	labelOffsetX = 100
	startOffsetY = -50
	exitOffsetY  = 10
	buttonWidth  = 200
	buttonHeight = 50
)

// Options configures the menu text.
type Options struct {
	StartLabel string
	ExitLabel  string
	FontScale  float64
}

// MainMenu represents the start screen.
type MainMenu struct {
	renderer       render.Renderer
	input          render.InputManager
	background     render.Image
	opts           Options
	screenWidth    int
	screenHeight   int
	lastMouseClick bool
}

// NewMainMenu creates a new main menu. background may be nil.
func NewMainMenu(r render.Renderer, input render.InputManager, background render.Image, opts Options, width, height int) *MainMenu {
	return &MainMenu{
		renderer:     r,
		input:        input,
		background:   background,
		opts:         opts,
		screenWidth:  width,
		screenHeight: height,
	}
}

// SetSize updates the screen dimensions the layout is computed from.
func (m *MainMenu) SetSize(width, height int) {
	m.screenWidth = width
	m.screenHeight = height
}

// Update polls the mouse and returns the action for a click this tick.
func (m *MainMenu) Update() Action {
	mousePressed := m.input.IsMouseButtonPressed(render.MouseButtonLeft)

	// Detect mouse click (button pressed this frame but not last frame)
	mouseClicked := mousePressed && !m.lastMouseClick
	m.lastMouseClick = mousePressed

	if !mouseClicked {
		return ActionNone
	}

	mouseX, mouseY := m.input.GetCursorPosition()
	return m.HitTest(mouseX, mouseY)
}

// HitTest maps a screen position to a menu action.
func (m *MainMenu) HitTest(x, y int) Action {
	switch {
	case pointInRect(x, y, m.startRect()):
		return ActionStart
	case pointInRect(x, y, m.exitRect()):
		return ActionQuit
	default:
		return ActionNone
	}
}

// Draw renders the menu to the screen.
func (m *MainMenu) Draw(screen render.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	if m.background != nil {
		bw, bh := m.background.Size()
		opts := &render.DrawImageOptions{}
		opts.GeoM = render.NewGeoM()
		if bw > 0 && bh > 0 {
			opts.GeoM.Scale(float64(m.screenWidth)/float64(bw), float64(m.screenHeight)/float64(bh))
		}
		screen.DrawImage(m.background, opts)
	}

	white := color.RGBA{255, 255, 255, 255}
	start := m.startRect()
	exit := m.exitRect()
	m.renderer.DrawText(screen, m.opts.StartLabel, start.x, start.y, white, m.opts.FontScale)
	m.renderer.DrawText(screen, m.opts.ExitLabel, exit.x, exit.y, white, m.opts.FontScale)
}

func (m *MainMenu) startRect() rect {
	return rect{
		x: m.screenWidth/2 - labelOffsetX,
		y: m.screenHeight/2 + startOffsetY,
		w: buttonWidth,
		h: buttonHeight,
	}
}

func (m *MainMenu) exitRect() rect {
	return rect{
		x: m.screenWidth/2 - labelOffsetX,
		y: m.screenHeight/2 + exitOffsetY,
		w: buttonWidth,
		h: buttonHeight,
	}
}

// Helper types and functions

type rect struct {
	x, y, w, h int
}

// pointInRect excludes the edges
func pointInRect(px, py int, r rect) bool {
	return px > r.x && px < r.x+r.w && py > r.y && py < r.y+r.h
}
