package assets

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chosenoffset.com/gridshot/internal/render"
)

type stubImage struct {
	path string
	key  color.Color
}

func (s *stubImage) Size() (int, int) { return 1, 1 }
func (s *stubImage) Fill(color.Color) {}
func (s *stubImage) DrawImage(render.Image, *render.DrawImageOptions) {}

type stubLoader struct {
	loaded []string
}

func (l *stubLoader) LoadImage(path string) (render.Image, error) {
	l.loaded = append(l.loaded, filepath.Base(path))
	return &stubImage{path: path}, nil
}

func (l *stubLoader) LoadImageWithColorKey(path string, key color.Color) (render.Image, error) {
	l.loaded = append(l.loaded, filepath.Base(path))
	return &stubImage{path: path, key: key}, nil
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("png"), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
}

func TestLoadAllImages(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, Files...)
	loader := &stubLoader{}

	lib, err := Load(loader, dir)
	if err != nil {
		t.Fatalf("Failed to load assets: %v", err)
	}

	if len(loader.loaded) != len(Files) {
		t.Errorf("Expected %d images loaded, got %d", len(Files), len(loader.loaded))
	}

	player := lib.Player.(*stubImage)
	if player.key != PlayerColorKey {
		t.Errorf("Expected player to be loaded with the white colour key, got %v", player.key)
	}
	if lib.Wall.(*stubImage).key != nil {
		t.Error("Expected wall to be loaded without a colour key")
	}
	if filepath.Base(lib.Floor.(*stubImage).path) != FloorFile {
		t.Errorf("Expected floor from %s, got %s", FloorFile, lib.Floor.(*stubImage).path)
	}
}

func TestLoadMissingImage(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, PlayerFile, BulletFile, FloorFile, BackgroundFile)

	_, err := Load(&stubLoader{}, dir)
	if err == nil {
		t.Fatal("Expected error for missing wall image")
	}
	if !strings.Contains(err.Error(), WallFile) {
		t.Errorf("Expected error to name %s, got %v", WallFile, err)
	}
}
