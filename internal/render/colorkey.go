package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ApplyColorKey returns a copy of src in which every pixel whose RGB
// matches key is fully transparent, whatever its alpha. The alpha of key
// is ignored.
func ApplyColorKey(src image.Image, key color.Color) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)

	k := color.NRGBAModel.Convert(key).(color.NRGBA)
	for i := 0; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] == k.R && dst.Pix[i+1] == k.G && dst.Pix[i+2] == k.B {
			dst.Pix[i+3] = 0
		}
	}
	return dst
}
