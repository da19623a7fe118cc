package imageio

import (
	"image"

	"github.com/zgsxwsdxg/vigra/morph"
)

// GrayAdapter wraps a *image.Gray as both a morph.Read2D and a
// morph.Write2D, walking pixels through Pix/Stride the same way
// Fepozopo-timp's stdimg package walks an *image.NRGBA buffer.
type GrayAdapter struct {
	img *image.Gray
}

// NewGrayAdapter wraps img. img must not be nil.
func NewGrayAdapter(img *image.Gray) *GrayAdapter {
	return &GrayAdapter{img: img}
}

// Image returns the wrapped *image.Gray.
func (a *GrayAdapter) Image() *image.Gray { return a.img }

func (a *GrayAdapter) Get(x, y int) uint8 {
	b := a.img.Bounds()
	i := a.img.PixOffset(x+b.Min.X, y+b.Min.Y)
	return a.img.Pix[i]
}

func (a *GrayAdapter) Set(x, y int, v uint8) {
	b := a.img.Bounds()
	i := a.img.PixOffset(x+b.Min.X, y+b.Min.Y)
	a.img.Pix[i] = v
}

func (a *GrayAdapter) Width() int  { return a.img.Bounds().Dx() }
func (a *GrayAdapter) Height() int { return a.img.Bounds().Dy() }

// NewGray allocates a fresh *image.Gray of the given extent, suitable
// as the destination of a morph filter run via GrayAdapter.
func NewGray(width, height int) *image.Gray {
	return image.NewGray(image.Rect(0, 0, width, height))
}

// NRGBAReader adapts a *image.NRGBA into a luma-only morph.Read2D,
// using the standard Rec. 601 luma weights. It implements Read2D only:
// writing back requires picking a color, which is outside morph's
// contract, so callers needing a destination should pair this with a
// separate GrayAdapter.
type NRGBAReader struct {
	img *image.NRGBA
}

// NewNRGBAReader wraps img. img must not be nil.
func NewNRGBAReader(img *image.NRGBA) *NRGBAReader {
	return &NRGBAReader{img: img}
}

func (a *NRGBAReader) Get(x, y int) uint8 {
	b := a.img.Bounds()
	i := a.img.PixOffset(x+b.Min.X, y+b.Min.Y)
	r, g, bl := a.img.Pix[i+0], a.img.Pix[i+1], a.img.Pix[i+2]
	return luma601(r, g, bl)
}

func (a *NRGBAReader) Width() int  { return a.img.Bounds().Dx() }
func (a *NRGBAReader) Height() int { return a.img.Bounds().Dy() }

func luma601(r, g, b uint8) uint8 {
	y := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if y < 0 {
		return 0
	}
	if y > 255 {
		return 255
	}
	return uint8(y + 0.5)
}

// AlphaThresholdMask adapts a *image.Alpha into a morph.MaskRead2D: a
// pixel counts toward the disc window when its alpha meets or exceeds
// Threshold. It backs morph.RankOrderMasked for callers whose mask
// comes from an image's own alpha channel rather than a hand-built
// boolean grid.
type AlphaThresholdMask struct {
	img       *image.Alpha
	Threshold uint8
}

// NewAlphaThresholdMask wraps img with the given inclusion threshold.
// img must not be nil.
func NewAlphaThresholdMask(img *image.Alpha, threshold uint8) *AlphaThresholdMask {
	return &AlphaThresholdMask{img: img, Threshold: threshold}
}

func (m *AlphaThresholdMask) Get(x, y int) bool {
	b := m.img.Bounds()
	i := m.img.PixOffset(x+b.Min.X, y+b.Min.Y)
	return m.img.Pix[i] >= m.Threshold
}

func (m *AlphaThresholdMask) Width() int  { return m.img.Bounds().Dx() }
func (m *AlphaThresholdMask) Height() int { return m.img.Bounds().Dy() }

var (
	_ morph.Read2D     = (*GrayAdapter)(nil)
	_ morph.Write2D    = (*GrayAdapter)(nil)
	_ morph.Read2D     = (*NRGBAReader)(nil)
	_ morph.MaskRead2D = (*AlphaThresholdMask)(nil)
)
