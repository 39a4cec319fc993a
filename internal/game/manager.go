package game

import (
	"fmt"
	"log"

	"chosenoffset.com/gridshot/internal/assets"
	"chosenoffset.com/gridshot/internal/config"
	"chosenoffset.com/gridshot/internal/render"
	"chosenoffset.com/gridshot/internal/ui/menu"
	"chosenoffset.com/gridshot/internal/world/level"
)

// Manager handles the overall game state: menu, play, and quit.
type Manager struct {
	Config    *config.Config
	State     menu.GameState
	MainMenu  *menu.MainMenu
	Game      *Game
	Renderer  render.Renderer
	InputMgr  render.InputManager
	Assets    *assets.Library
	LevelPath string
}

// NewManager creates a new game manager in the menu state.
func NewManager(cfg *config.Config, r render.Renderer, input render.InputManager, lib *assets.Library) *Manager {
	return &Manager{
		Config:    cfg,
		State:     menu.StateMainMenu,
		Renderer:  r,
		InputMgr:  input,
		Assets:    lib,
		LevelPath: cfg.LevelPath(),
	}
}

// SetMainMenu sets the main menu.
func (m *Manager) SetMainMenu(mainMenu *menu.MainMenu) {
	m.MainMenu = mainMenu
}

// Update updates the game state. It returns render.ErrQuit once the
// game has reached the quit state.
func (m *Manager) Update() error {
	if m.State != menu.StateQuit && m.InputMgr.IsCloseRequested() {
		m.setState(menu.StateQuit)
	}

	switch m.State {
	case menu.StateMainMenu:
		switch m.MainMenu.Update() {
		case menu.ActionStart:
			if err := m.StartLevel(); err != nil {
				return err
			}
		case menu.ActionQuit:
			m.setState(menu.StateQuit)
		}
	case menu.StatePlaying:
		if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
			m.Game = nil
			m.setState(menu.StateMainMenu)
			return nil
		}
		if m.Game != nil {
			return m.Game.Update()
		}
	}

	if m.State == menu.StateQuit {
		return render.ErrQuit
	}
	return nil
}

// StartLevel loads the configured level and switches to play.
func (m *Manager) StartLevel() error {
	log.Printf("Loading level: %s", m.LevelPath)
	grid, err := level.Load(m.LevelPath)
	if err != nil {
		return err
	}

	g, err := NewGame(m.Config, m.Assets, grid, m.InputMgr)
	if err != nil {
		return fmt.Errorf("failed to start %s: %w", m.LevelPath, err)
	}

	m.Game = g
	m.setState(menu.StatePlaying)
	return nil
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	switch m.State {
	case menu.StateMainMenu:
		m.MainMenu.Draw(screen)
	case menu.StatePlaying:
		if m.Game != nil {
			m.Game.Draw(screen)
		}
	}
}

// Layout keeps the logical screen at the configured resolution.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.Config.Window.Width, m.Config.Window.Height
}

func (m *Manager) setState(state menu.GameState) {
	if m.State == state {
		return
	}
	log.Printf("State %s -> %s", m.State, state)
	m.State = state
}
