package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"chosenoffset.com/gridshot/internal/assets"
)

// TileSize is the standard size for placeholder tiles
const TileSize = 50

// Sprite sizes for the non-tile images
const (
	PlayerSize       = 40
	BulletWidth      = 12
	BulletHeight     = 4
	BackgroundWidth  = 1440
	BackgroundHeight = 810
)

// ColorPalette defines colors for the placeholder art
var ColorPalette = struct {
	Grass      color.RGBA
	GrassBlade color.RGBA
	Crate      color.RGBA
	CrateEdge  color.RGBA
	Player     color.RGBA
	PlayerEye  color.RGBA
	Bullet     color.RGBA
	SkyTop     color.RGBA
	SkyBottom  color.RGBA
	ColorKey   color.RGBA
}{
	Grass:      color.RGBA{70, 140, 60, 255},  // Mid green
	GrassBlade: color.RGBA{90, 170, 75, 255},  // Lighter blades
	Crate:      color.RGBA{150, 105, 55, 255}, // Wood brown
	CrateEdge:  color.RGBA{95, 65, 30, 255},   // Dark wood
	Player:     color.RGBA{40, 90, 200, 255},  // Blue
	PlayerEye:  color.RGBA{250, 230, 80, 255}, // Yellow, marks the facing side
	Bullet:     color.RGBA{255, 200, 40, 255}, // Brass
	SkyTop:     color.RGBA{20, 24, 48, 255},
	SkyBottom:  color.RGBA{70, 40, 90, 255},
	ColorKey:   color.RGBA{255, 255, 255, 255}, // Must match assets.PlayerColorKey
}

// SampleLevel is written next to the images
const SampleLevel = `$$$$$$$$$$$$$$$$$$$$$$$$$$$$$
$...........................$
$....$$$............$$$.....$
$...........@...............$
$.........$$$$$.............$
$...........................$
$....$..............$.......$
$$$$$$$$$$$$$$$$$$$$$$$$$$$$$`

// CreateSolidTile creates a simple solid-colored image
func CreateSolidTile(w, h int, col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateGrassTile creates a floor tile with scattered blades
func CreateGrassTile() *image.RGBA {
	img := CreateSolidTile(TileSize, TileSize, ColorPalette.Grass)
	for i := 0; i < TileSize; i += 7 {
		x := (i * 3) % TileSize
		y := (i * 5) % TileSize
		for dy := 0; dy < 3 && y+dy < TileSize; dy++ {
			img.Set(x, y+dy, ColorPalette.GrassBlade)
		}
	}
	return img
}

// CreateCrateTile creates a wall tile: a bordered box with a diagonal brace
func CreateCrateTile() *image.RGBA {
	img := CreateSolidTile(TileSize, TileSize, ColorPalette.Crate)

	// Draw borders
	const borderWidth = 3
	for i := 0; i < borderWidth; i++ {
		for x := 0; x < TileSize; x++ {
			img.Set(x, i, ColorPalette.CrateEdge)
			img.Set(x, TileSize-1-i, ColorPalette.CrateEdge)
		}
		for y := 0; y < TileSize; y++ {
			img.Set(i, y, ColorPalette.CrateEdge)
			img.Set(TileSize-1-i, y, ColorPalette.CrateEdge)
		}
	}

	// Draw diagonal brace
	for i := borderWidth; i < TileSize-borderWidth; i++ {
		img.Set(i, i, ColorPalette.CrateEdge)
		img.Set(i, TileSize-1-i, ColorPalette.CrateEdge)
	}

	return img
}

// CreatePlayer creates a round player sprite on a colour-key background.
// The eye sits on the right so a mirrored sprite shows the facing.
func CreatePlayer() *image.RGBA {
	img := CreateSolidTile(PlayerSize, PlayerSize, ColorPalette.ColorKey)

	center := PlayerSize / 2
	radius := PlayerSize/2 - 2

	// Draw filled circle
	for y := 0; y < PlayerSize; y++ {
		for x := 0; x < PlayerSize; x++ {
			dx := x - center
			dy := y - center
			if dx*dx+dy*dy <= radius*radius {
				img.Set(x, y, ColorPalette.Player)
			}
		}
	}

	// Draw eye
	eyeX, eyeY := center+radius/2, center-radius/3
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			img.Set(eyeX+dx, eyeY+dy, ColorPalette.PlayerEye)
		}
	}

	return img
}

// CreateBullet creates a bullet sprite
func CreateBullet() *image.RGBA {
	return CreateSolidTile(BulletWidth, BulletHeight, ColorPalette.Bullet)
}

// CreateBackground creates a vertical gradient for the start screen
func CreateBackground() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, BackgroundWidth, BackgroundHeight))
	top, bottom := ColorPalette.SkyTop, ColorPalette.SkyBottom
	for y := 0; y < BackgroundHeight; y++ {
		t := float64(y) / float64(BackgroundHeight-1)
		row := color.RGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: 255,
		}
		draw.Draw(img, image.Rect(0, y, BackgroundWidth, y+1), &image.Uniform{row}, image.Point{}, draw.Src)
	}
	return img
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// GenerateAndSave writes every placeholder image and the sample level into
// dir. An existing level file is left alone.
func GenerateAndSave(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	images := map[string]image.Image{
		assets.PlayerFile:     CreatePlayer(),
		assets.BulletFile:     CreateBullet(),
		assets.FloorFile:      CreateGrassTile(),
		assets.WallFile:       CreateCrateTile(),
		assets.BackgroundFile: CreateBackground(),
	}

	for _, name := range assets.Files {
		path := filepath.Join(dir, name)
		if err := SavePNG(images[name], path); err != nil {
			return fmt.Errorf("failed to save %s: %w", path, err)
		}
		fmt.Printf("  wrote %s\n", path)
	}

	levelPath := filepath.Join(dir, "level.txt")
	if _, err := os.Stat(levelPath); err == nil {
		fmt.Printf("  kept existing %s\n", levelPath)
		return nil
	}
	if err := os.WriteFile(levelPath, []byte(SampleLevel+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", levelPath, err)
	}
	fmt.Printf("  wrote %s\n", levelPath)

	return nil
}
