// Package assets loads the fixed set of images the game draws.
package assets

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"chosenoffset.com/gridshot/internal/render"
)

// Image file names inside the data directory
const (
	PlayerFile     = "player.png"
	BulletFile     = "bullet.png"
	FloorFile      = "grass.png"
	WallFile       = "box1.png"
	BackgroundFile = "bg.png"
)

// PlayerColorKey is the background colour of player.png that is made transparent
var PlayerColorKey = color.RGBA{255, 255, 255, 255}

// Files lists every image the game needs
var Files = []string{PlayerFile, BulletFile, FloorFile, WallFile, BackgroundFile}

// Library holds the loaded images
type Library struct {
	Dir        string
	Player     render.Image
	Bullet     render.Image
	Floor      render.Image
	Wall       render.Image
	Background render.Image
}

// Load reads every image from dir. The first missing or unreadable file
// aborts loading.
func Load(loader render.ResourceLoader, dir string) (*Library, error) {
	lib := &Library{Dir: dir}

	var err error
	if lib.Player, err = loadImage(loader, dir, PlayerFile, PlayerColorKey); err != nil {
		return nil, err
	}
	if lib.Bullet, err = loadImage(loader, dir, BulletFile, nil); err != nil {
		return nil, err
	}
	if lib.Floor, err = loadImage(loader, dir, FloorFile, nil); err != nil {
		return nil, err
	}
	if lib.Wall, err = loadImage(loader, dir, WallFile, nil); err != nil {
		return nil, err
	}
	if lib.Background, err = loadImage(loader, dir, BackgroundFile, nil); err != nil {
		return nil, err
	}

	return lib, nil
}

func loadImage(loader render.ResourceLoader, dir, name string, key color.Color) (render.Image, error) {
	path := filepath.Join(dir, name)
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return nil, fmt.Errorf("image file '%s' not found", path)
	}

	var (
		img render.Image
		err error
	)
	if key != nil {
		img, err = loader.LoadImageWithColorKey(path, key)
	} else {
		img, err = loader.LoadImage(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return img, nil
}
