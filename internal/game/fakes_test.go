package game

import (
	"image/color"

	"chosenoffset.com/gridshot/internal/assets"
	"chosenoffset.com/gridshot/internal/render"
)

type fakeInput struct {
	keys          map[render.Key]bool
	justKeys      map[render.Key]bool
	mouseX        int
	mouseY        int
	mouseDown     bool
	mouseJustDown bool
	closing       bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{keys: map[render.Key]bool{}, justKeys: map[render.Key]bool{}}
}

func (f *fakeInput) IsKeyPressed(k render.Key) bool { return f.keys[k] }
func (f *fakeInput) IsKeyJustPressed(k render.Key) bool { return f.justKeys[k] }
func (f *fakeInput) GetCursorPosition() (int, int) { return f.mouseX, f.mouseY }
func (f *fakeInput) IsMouseButtonPressed(render.MouseButton) bool { return f.mouseDown }
func (f *fakeInput) IsMouseButtonJustPressed(render.MouseButton) bool { return f.mouseJustDown }
func (f *fakeInput) IsCloseRequested() bool { return f.closing }

// release clears every key and button
func (f *fakeInput) release() {
	f.keys = map[render.Key]bool{}
	f.justKeys = map[render.Key]bool{}
	f.mouseDown = false
	f.mouseJustDown = false
}

type fakeImage struct {
	w, h  int
	fills int
	draws int
}

func (f *fakeImage) Size() (int, int) { return f.w, f.h }
func (f *fakeImage) Fill(color.Color) { f.fills++ }
func (f *fakeImage) DrawImage(render.Image, *render.DrawImageOptions) { f.draws++ }

type fakeGeoM struct{}

func (fakeGeoM) Translate(float64, float64) {}
func (fakeGeoM) Scale(float64, float64) {}

type fakeRenderer struct{}

func (fakeRenderer) DrawText(render.Image, string, int, int, color.Color, float64) {}

func init() {
	render.NewGeoM = func() render.GeoM { return fakeGeoM{} }
}

// testAssets returns a library whose images have the given sizes
func testAssets() *assets.Library {
	return &assets.Library{
		Player:     &fakeImage{w: 40, h: 40},
		Bullet:     &fakeImage{w: 10, h: 4},
		Floor:      &fakeImage{w: 50, h: 50},
		Wall:       &fakeImage{w: 50, h: 50},
		Background: &fakeImage{w: 1440, h: 810},
	}
}
