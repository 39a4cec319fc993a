package entity

import (
	"fmt"
	"image/color"

	"chosenoffset.com/gridshot/internal/render"
)

// fakeImage records draw calls so tests can check what was rendered where.
type fakeImage struct {
	w, h  int
	draws []string
}

func (f *fakeImage) Size() (int, int) { return f.w, f.h }
func (f *fakeImage) Fill(clr color.Color) { f.draws = append(f.draws, "fill") }
func (f *fakeImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	desc := "nil"
	if opts != nil && opts.GeoM != nil {
		desc = opts.GeoM.(*fakeGeoM).String()
	}
	f.draws = append(f.draws, desc)
}

type fakeGeoM struct {
	sx, sy float64
	tx, ty float64
}

func newFakeGeoM() render.GeoM { return &fakeGeoM{sx: 1, sy: 1} }

func (g *fakeGeoM) Translate(tx, ty float64) { g.tx += tx; g.ty += ty }
func (g *fakeGeoM) Scale(sx, sy float64) {
	g.sx *= sx
	g.sy *= sy
	g.tx *= sx
	g.ty *= sy
}
func (g *fakeGeoM) String() string { return fmt.Sprintf("s(%g,%g) t(%g,%g)", g.sx, g.sy, g.tx, g.ty) }

func init() {
	render.NewGeoM = newFakeGeoM
}
