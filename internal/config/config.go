// Package config holds the tunable settings of the game: screen, frame rate,
// grid scale, projectile speed and where assets live. Values are loaded from
// a JSON file layered over built-in defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all settings for a run of the game
type Config struct {
	// Window settings
	Window WindowConfig `json:"window"`

	// Update rate in ticks per second
	FPS int `json:"fps"`

	// Edge length of a grid cell in pixels
	TileSize int `json:"tile_size"`

	// Projectile rules
	Bullet BulletConfig `json:"bullet"`

	// Asset locations
	Assets AssetsConfig `json:"assets"`

	// Start screen labels
	Menu MenuConfig `json:"menu"`
}

// WindowConfig defines the output surface
type WindowConfig struct {
	Width      int    `json:"width"`      // Logical screen width in pixels
	Height     int    `json:"height"`     // Logical screen height in pixels
	Fullscreen bool   `json:"fullscreen"` // Run fullscreen instead of windowed
	Title      string `json:"title"`      // Window title
}

// BulletConfig defines projectile mechanics
type BulletConfig struct {
	Speed float64 `json:"speed"` // Pixels per tick
}

// AssetsConfig defines where images and levels are read from
type AssetsConfig struct {
	DataDir string `json:"data_dir"` // Directory holding images and level files
	Level   string `json:"level"`    // Level file name inside DataDir
}

// MenuConfig defines the start screen text
type MenuConfig struct {
	StartLabel string  `json:"start_label"`
	ExitLabel  string  `json:"exit_label"`
	FontScale  float64 `json:"font_scale"`
}

// DefaultConfig returns the stock settings
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1440, // 16 * 90
			Height:     810,  // 9 * 90
			Fullscreen: true,
			Title:      "Gridshot",
		},
		FPS:      60,
		TileSize: 50,
		Bullet: BulletConfig{
			Speed: 10,
		},
		Assets: AssetsConfig{
			DataDir: "data",
			Level:   "level.txt",
		},
		Menu: MenuConfig{
			StartLabel: "Start game",
			ExitLabel:  "Exit",
			FontScale:  2.5,
		},
	}
}

// LoadConfig loads settings from a JSON file over the defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks that every size and rate is usable
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("invalid fps: %d", c.FPS)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("invalid tile size: %d", c.TileSize)
	}
	if c.Bullet.Speed <= 0 {
		return fmt.Errorf("invalid bullet speed: %v", c.Bullet.Speed)
	}
	if c.Assets.DataDir == "" {
		return fmt.Errorf("assets data_dir is required")
	}
	return nil
}

// LevelPath returns the full path of the configured level file
func (c *Config) LevelPath() string {
	return filepath.Join(c.Assets.DataDir, c.Assets.Level)
}
