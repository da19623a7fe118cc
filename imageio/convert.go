package imageio

import (
	"image"

	"golang.org/x/image/draw"
)

// ToGray converts an arbitrary image.Image to *image.Gray, reusing img
// unchanged if it already is one. Uses golang.org/x/image/draw's Draw
// (rather than a hand-rolled At/Set pixel loop) to perform the
// color-model conversion, matching the draw.Image/draw.Drawer contract
// the rest of the x/image ecosystem (scalers, codecs) is built around.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}

	b := img.Bounds()
	gray := image.NewGray(b)
	draw.Draw(gray, b, img, b.Min, draw.Src)
	return gray
}
