package paint

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is the drawing surface: a rectangular buffer of non-premultiplied
// RGBA pixels, four bytes per pixel, row-major.
//
// Every write primitive clips silently. Shapes may hand it any integer
// coordinate, including negative ones, and pixels outside the buffer are
// dropped.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a transparent pixmap. Negative dimensions are treated
// as zero.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int { return p.height }

// Data returns the raw pixel data.
func (p *Pixmap) Data() []uint8 { return p.data }

func (p *Pixmap) inside(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// SetPixel writes c at (x, y). Out-of-bounds writes are no-ops.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if !p.inside(x, y) {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the pixel at (x, y), or Transparent outside the buffer.
func (p *Pixmap) GetPixel(x, y int) Color {
	if !p.inside(x, y) {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return Color{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// FillSpan writes c to every pixel of row y between x0 and x1 inclusive.
// The endpoints may be given in either order.
func (p *Pixmap) FillSpan(x0, x1, y int, c Color) {
	if y < 0 || y >= p.height {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	x0, x1 = max(x0, 0), min(x1, p.width-1)
	for i := (y*p.width + x0) * 4; x0 <= x1; x0, i = x0+1, i+4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// FillRect writes c to every pixel of r, clipped to the buffer.
func (p *Pixmap) FillRect(r image.Rectangle, c Color) {
	r = r.Intersect(p.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		p.FillSpan(r.Min.X, r.Max.X-1, y, c)
	}
}

// Clear fills the whole pixmap with c.
func (p *Pixmap) Clear(c Color) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// CopyFrom copies src into p. Both pixmaps must have the same size.
func (p *Pixmap) CopyFrom(src *Pixmap) {
	copy(p.data, src.data)
}

// ToImage returns a copy of the pixmap as an *image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG encodes the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("paint: create %s: %w", path, err)
	}
	if err := png.Encode(f, p.ToImage()); err != nil {
		_ = f.Close()
		return fmt.Errorf("paint: encode %s: %w", path, err)
	}
	return f.Close()
}

// At implements image.Image.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Bounds implements image.Image.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements image.Image.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// Set implements draw.Image, so x/image/draw can scale image stamps
// straight onto the surface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, FromColor(c))
}
