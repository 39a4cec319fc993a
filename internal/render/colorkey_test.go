package render

import (
	"image"
	"image/color"
	"testing"
)

func TestApplyColorKey(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	white := color.RGBA{255, 255, 255, 255}
	green := color.RGBA{0, 200, 0, 255}
	src.Set(0, 0, white)
	src.Set(1, 0, green)
	src.Set(0, 1, green)
	src.Set(1, 1, white)

	out := ApplyColorKey(src, white)

	if a := out.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("Expected keyed pixel (0,0) to be transparent, got alpha %d", a)
	}
	if a := out.NRGBAAt(1, 1).A; a != 0 {
		t.Errorf("Expected keyed pixel (1,1) to be transparent, got alpha %d", a)
	}
	if got := out.NRGBAAt(1, 0); got != (color.NRGBA{0, 200, 0, 255}) {
		t.Errorf("Expected unkeyed pixel to be preserved, got %v", got)
	}
}

func TestApplyColorKeyOffsetBounds(t *testing.T) {
	// Sub-images keep their original bounds; the result is rebased to 0,0
	base := image.NewRGBA(image.Rect(0, 0, 4, 4))
	base.Set(2, 2, color.RGBA{10, 20, 30, 255})
	sub := base.SubImage(image.Rect(2, 2, 4, 4))

	out := ApplyColorKey(sub, color.White)

	if out.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("Expected bounds 0,0-2,2, got %v", out.Bounds())
	}
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("Expected copied pixel at origin, got %v", got)
	}
}

func TestApplyColorKeyIgnoresPixelAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 128})
	src.SetNRGBA(1, 0, color.NRGBA{255, 255, 254, 128})

	out := ApplyColorKey(src, color.White)

	if a := out.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("Expected translucent keyed pixel to be cleared, got alpha %d", a)
	}
	if got := out.NRGBAAt(1, 0); got != (color.NRGBA{255, 255, 254, 128}) {
		t.Errorf("Expected near-white pixel to be preserved, got %v", got)
	}
}
